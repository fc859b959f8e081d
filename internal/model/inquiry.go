package model

// InquiryState is the lifecycle state of a customer inquiry. The
// lifecycle is monotonic: RECEIVED -> QUOTED/DONE -> terminal.
type InquiryState uint8

const (
	InquiryReceived InquiryState = iota
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	default:
		return "CUSTOMER_REJECTED"
	}
}

// Terminal reports whether no further transition is allowed.
func (s InquiryState) Terminal() bool {
	switch s {
	case InquiryDone, InquiryRejected, InquiryCustomerRejected:
		return true
	default:
		return false
	}
}

// Inquiry is a customer inquiry. The stored copy is replaced wholesale
// on each state transition.
type Inquiry struct {
	InquiryID string
	Product   Bond
	Side      Side
	Quantity  Quantity
	Price     Price
	State     InquiryState
}
