package obs

import "main/internal/service"

// Counted wraps a listener so every notification through it is
// counted, and every failure increments the listener-error counter.
// The wrapped error still propagates to the dispatching stage.
func Counted[V any](m *Metrics, stage Stage, next service.Listener[V]) service.Listener[V] {
	return service.ListenerFunc[V](func(v V) error {
		m.IncEvent(stage)
		err := next.OnAdd(v)
		if err != nil {
			m.IncListenerError()
		}
		return err
	})
}
