package feed

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Books are the sub-ledgers trades are booked against.
var Books = []string{"TRSY1", "TRSY2", "TRSY3"}

// Generator writes deterministic pseudo-random input files for the
// trading universe, one record rotation per product.
type Generator struct {
	dir string
	rng *rand.Rand

	TradesPerProduct    int
	PricesPerProduct    int
	SnapshotsPerProduct int
	InquiriesPerProduct int
}

// NewGenerator creates a generator writing into dir with a fixed seed.
func NewGenerator(dir string, seed int64) *Generator {
	return &Generator{
		dir:                 dir,
		rng:                 rand.New(rand.NewSource(seed)),
		TradesPerProduct:    10,
		PricesPerProduct:    60,
		SnapshotsPerProduct: 100,
		InquiriesPerProduct: 10,
	}
}

// WriteAll generates the four input files.
func (g *Generator) WriteAll() error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return errors.Wrap(err, "create input dir")
	}
	steps := []struct {
		name string
		fn   func(*bufio.Writer) error
	}{
		{"trades.txt", g.writeTrades},
		{"prices.txt", g.writePrices},
		{"marketdata.txt", g.writeMarketData},
		{"inquiries.txt", g.writeInquiries},
	}
	for _, step := range steps {
		if err := g.writeFile(step.name, step.fn); err != nil {
			return err
		}
		logs.Infof("generated %s", filepath.Join(g.dir, step.name))
	}
	return nil
}

func (g *Generator) writeFile(name string, fn func(*bufio.Writer) error) error {
	f, err := os.Create(filepath.Join(g.dir, name))
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return errors.Wrapf(w.Flush(), "flush %s", name)
}

func (g *Generator) writeTrades(w *bufio.Writer) error {
	fmt.Fprintln(w, "cusip,tradeid,book,quantity,side")
	n := 0
	for i := 0; i < g.TradesPerProduct; i++ {
		for _, cusip := range Cusips() {
			n++
			qty := (g.rng.Int63n(5) + 1) * 1_000_000
			side := "BUY"
			if n%2 == 0 {
				side = "SELL"
			}
			fmt.Fprintf(w, "%s,TR%d,%s,%d,%s\n", cusip, n, Books[n%len(Books)], qty, side)
		}
	}
	return nil
}

func (g *Generator) writePrices(w *bufio.Writer) error {
	fmt.Fprintln(w, "cusip,mid,spread")
	for i := 0; i < g.PricesPerProduct; i++ {
		for _, cusip := range Cusips() {
			// Mid oscillates inside 99 to 101, spread between
			// 2/256 and 4/256.
			xy := g.rng.Int63n(32)
			z := g.rng.Int63n(8)
			spread := 2 + 2*g.rng.Int63n(2)
			fmt.Fprintf(w, "%s,%d-%02d%d,0-00%d\n", cusip, 99+g.rng.Int63n(2), xy, z, spread)
		}
	}
	return nil
}

func (g *Generator) writeMarketData(w *bufio.Writer) error {
	fmt.Fprintln(w, "cusip,mid")
	for i := 0; i < g.SnapshotsPerProduct; i++ {
		for _, cusip := range Cusips() {
			xy := g.rng.Int63n(32)
			z := g.rng.Int63n(8)
			fmt.Fprintf(w, "%s,%d-%02d%d\n", cusip, 99+g.rng.Int63n(2), xy, z)
		}
	}
	return nil
}

func (g *Generator) writeInquiries(w *bufio.Writer) error {
	fmt.Fprintln(w, "inquiryid,cusip,side,quantity,price")
	n := 0
	for i := 0; i < g.InquiriesPerProduct; i++ {
		for _, cusip := range Cusips() {
			n++
			qty := (g.rng.Int63n(5) + 1) * 1_000_000
			side := "BUY"
			if n%2 == 0 {
				side = "SELL"
			}
			fmt.Fprintf(w, "INQ%d,%s,%s,%d,%d\n", n, cusip, side, qty, 99+g.rng.Int63n(3))
		}
	}
	return nil
}
