// Package risk turns position updates into PV01 exposures and answers
// read-side sector aggregation queries.
package risk

import (
	"errors"

	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/service"
)

// Sector is a named subset of products risk can be summed over.
type Sector struct {
	Name     string
	Products []model.Bond
}

// Service accumulates PV01 exposures keyed by product id. Alongside
// the primary listeners it keeps a separate historical listener set
// that receives the entire exposure table after every update.
type Service struct {
	store      *service.Store[string, PV01]
	order      []string
	historical []service.Listener[[]PV01]
	table      Table
}

// New creates a risk service over the given sensitivity table.
func New(table Table) *Service {
	if table == nil {
		table = DefaultTable()
	}
	return &Service{
		store: service.NewStore[string, PV01](),
		table: table,
	}
}

// ApplyPosition folds a position update into the product's exposure:
// the position's aggregate quantity is added to the running quantity
// and the stored record replaced. The changed record goes to the
// primary listeners, the full exposure set to the historical ones.
func (s *Service) ApplyPosition(pos *model.Position) error {
	id := pos.Product().ID
	pv, err := s.store.Get(id)
	if err != nil {
		pv = PV01{
			Product:     pos.Product(),
			Sensitivity: s.table.Sensitivity(id),
		}
		s.order = append(s.order, id)
	}
	pv.Quantity += pos.Aggregate()
	s.store.Put(id, pv)

	errs := []error{s.store.Dispatch(pv)}
	snapshot := s.Exposures()
	for _, l := range s.historical {
		errs = append(errs, l.OnAdd(snapshot))
	}
	return errors.Join(errs...)
}

// Exposure returns the current PV01 record for a product id.
func (s *Service) Exposure(productID string) (PV01, error) {
	return s.store.Get(productID)
}

// Exposures returns every exposure in first-seen order.
func (s *Service) Exposures() []PV01 {
	out := make([]PV01, 0, len(s.order))
	for _, id := range s.order {
		pv, err := s.store.Get(id)
		if err != nil {
			continue
		}
		out = append(out, pv)
	}
	return out
}

// BucketedRisk sums sensitivity times quantity over exactly the
// sector's products. Products with no exposure on record contribute
// zero. Pure read, no fan-out.
func (s *Service) BucketedRisk(sector Sector) decimal.Decimal {
	total := decimal.Zero
	for _, product := range sector.Products {
		pv, err := s.store.Get(product.ID)
		if err != nil {
			continue
		}
		total = total.Add(pv.Risk())
	}
	return total
}

// AddListener registers a primary listener for changed exposures.
func (s *Service) AddListener(l service.Listener[PV01]) {
	s.store.AddListener(l)
}

// AddHistoricalListener registers a listener that receives the whole
// exposure set after every update.
func (s *Service) AddHistoricalListener(l service.Listener[[]PV01]) {
	s.historical = append(s.historical, l)
}

// OnAdd lets the service sit directly behind the position stage.
func (s *Service) OnAdd(pos *model.Position) error {
	return s.ApplyPosition(pos)
}
