// Package feed flows flat-file records into the pipeline entry
// points. Each reader parses one of the desk's CSV inputs, builds the
// domain entity and submits it; listener failures surface through the
// returned error but do not stop the feed.
package feed

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/yanun0323/errors"

	"main/internal/model"
)

// Universe returns the six on-the-run treasuries the simulator
// trades, keyed by CUSIP.
func Universe() map[string]model.Bond {
	return map[string]model.Bond{
		"912828M72": {ID: "912828M72", Coupon: 0.875, Maturity: "2017-11-30"},
		"912828N22": {ID: "912828N22", Coupon: 1.25, Maturity: "2018-12-15"},
		"912828M98": {ID: "912828M98", Coupon: 1.375, Maturity: "2020-12-31"},
		"912828M80": {ID: "912828M80", Coupon: 1.75, Maturity: "2022-12-31"},
		"912828M56": {ID: "912828M56", Coupon: 2.25, Maturity: "2025-11-15"},
		"912810RP5": {ID: "912810RP5", Coupon: 3.0, Maturity: "2045-11-15"},
	}
}

// Cusips returns the trading universe in curve order.
func Cusips() []string {
	return []string{"912828M72", "912828N22", "912828M98", "912828M80", "912828M56", "912810RP5"}
}

func bondFor(cusip string) model.Bond {
	if b, ok := Universe()[cusip]; ok {
		return b
	}
	return model.Bond{ID: cusip}
}

// eachRecord opens path and calls fn for every data row, skipping the
// header line. fn errors abort the scan.
func eachRecord(path string, fields int, fn func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	r.TrimLeadingSpace = true

	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		if header {
			header = false
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
