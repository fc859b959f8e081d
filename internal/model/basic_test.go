package model

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100.000000000"},
		{"99.75", "99.750000000"},
		{"0.5", "0.500000000"},
		{"-1.25", "-1.250000000"},
	}
	for _, c := range cases {
		p, err := ParsePrice(c.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", c.in, err)
		}
		if got := p.String(); got != c.want {
			t.Fatalf("ParsePrice(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "abc", "1.1234567891"} {
		if _, err := ParsePrice(bad); err == nil {
			t.Fatalf("ParsePrice(%q) should fail", bad)
		}
	}
}

func TestParseTreasuryPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100-000", 100},
		{"100-160", 100.5},
		{"100-25+", 100 + 25.0/32 + 4.0/256},
		{"99-312", 99 + 31.0/32 + 2.0/256},
		{"0-001", 1.0 / 256},
		{"0-002", 1.0 / 128},
	}
	for _, c := range cases {
		p, err := ParseTreasuryPrice(c.in)
		if err != nil {
			t.Fatalf("ParseTreasuryPrice(%q): %v", c.in, err)
		}
		if got := p.Float64(); got != c.want {
			t.Fatalf("ParseTreasuryPrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "100", "100-3", "100-329", "100-16x", "-100-160"} {
		if _, err := ParseTreasuryPrice(bad); err == nil {
			t.Fatalf("ParseTreasuryPrice(%q) should fail", bad)
		}
	}
}

func TestPriceHalfKeepsTicksExact(t *testing.T) {
	spread, err := ParseTreasuryPrice("0-001")
	if err != nil {
		t.Fatal(err)
	}
	half := spread.Half()
	if half*2 != spread {
		t.Fatalf("half a 1/256 tick should be exact, got %s", half)
	}
}
