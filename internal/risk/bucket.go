package risk

// Bucket classifies a product by where it sits on the maturity curve.
// The classification is a static table keyed by product id, not a
// computation from the maturity date.
type Bucket uint8

const (
	Other Bucket = iota
	FrontEnd
	Belly
	LongEnd
)

func (b Bucket) String() string {
	switch b {
	case FrontEnd:
		return "FrontEnd"
	case Belly:
		return "Belly"
	case LongEnd:
		return "LongEnd"
	default:
		return "Other"
	}
}

var buckets = map[string]Bucket{
	"912828M72": FrontEnd,
	"912828N22": FrontEnd,
	"912828M98": FrontEnd,
	"912828M80": Belly,
	"912828M56": Belly,
	"912810RP5": LongEnd,
}

// BucketOf returns the maturity bucket for a product id, Other for
// products outside the static table.
func BucketOf(productID string) Bucket {
	return buckets[productID]
}
