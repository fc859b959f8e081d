package model

import (
	"errors"
	"strconv"
	"strings"
)

// PriceScale is the number of decimal places carried by a Price.
// Scale 9 keeps half a 1/256th tick exact.
const PriceScale = 9

const priceUnit = int64(1_000_000_000)

var ErrBadPrice = errors.New("model: malformed price")

// Price is a scaled integer with PriceScale decimal places.
type Price int64

// PriceFromInt converts a whole number of price points.
func PriceFromInt(v int64) Price {
	return Price(v * priceUnit)
}

// Add returns p + other.
func (p Price) Add(other Price) Price { return p + other }

// Sub returns p - other.
func (p Price) Sub(other Price) Price { return p - other }

// Half returns p / 2.
func (p Price) Half() Price { return p / 2 }

// Float64 returns the price as a float, for display only.
func (p Price) Float64() float64 {
	return float64(p) / float64(priceUnit)
}

func (p Price) String() string {
	return string(p.AppendString(nil))
}

// AppendString appends the decimal rendering of p to buf.
func (p Price) AppendString(buf []byte) []byte {
	return appendScaledInt(buf, int64(p), PriceScale)
}

// ParsePrice parses a plain decimal price such as "99.75".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadPrice
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if len(frac) > PriceScale {
		return 0, ErrBadPrice
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrBadPrice
		}
		for i := len(frac); i < PriceScale; i++ {
			f *= 10
		}
	}
	v := w*priceUnit + f
	if neg {
		v = -v
	}
	return Price(v), nil
}

// ParseTreasuryPrice parses the fractional US treasury quote format
// "100-25+", meaning 100 + 25/32 + 4/256. The final character is a
// 256ths digit 0-7, or '+' for 4.
func ParseTreasuryPrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexByte(s, '-')
	if idx <= 0 || len(s) != idx+4 {
		return 0, ErrBadPrice
	}
	whole, err := strconv.ParseInt(s[:idx], 10, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	xy, err := strconv.ParseInt(s[idx+1:idx+3], 10, 64)
	if err != nil || xy > 31 {
		return 0, ErrBadPrice
	}
	var z int64
	switch c := s[idx+3]; {
	case c == '+':
		z = 4
	case c >= '0' && c <= '7':
		z = int64(c - '0')
	default:
		return 0, ErrBadPrice
	}
	// priceUnit is divisible by 256, so both fractions stay exact.
	return Price(whole*priceUnit + xy*(priceUnit/32) + z*(priceUnit/256)), nil
}

// Quantity is a signed number of notional units.
type Quantity int64

func (q Quantity) String() string {
	return strconv.FormatInt(int64(q), 10)
}

func appendScaledInt(buf []byte, value int64, scale int) []byte {
	if scale <= 0 {
		return strconv.AppendInt(buf, value, 10)
	}

	neg := value < 0
	u := uint64(value)
	if neg {
		u = uint64(^value) + 1
	}

	var tmp [32]byte
	digits := strconv.AppendUint(tmp[:0], u, 10)

	if neg {
		buf = append(buf, '-')
	}

	if len(digits) <= scale {
		buf = append(buf, '0', '.')
		for i := 0; i < scale-len(digits); i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
		return buf
	}

	idx := len(digits) - scale
	buf = append(buf, digits[:idx]...)
	buf = append(buf, '.')
	buf = append(buf, digits[idx:]...)
	return buf
}
