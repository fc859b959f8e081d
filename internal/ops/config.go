// Package ops loads the desk configuration.
package ops

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/internal/risk"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	InputDir   string            `json:"inputDir"`
	OutputDir  string            `json:"outputDir"`
	Books      []string          `json:"books"`
	QuoteQty   int64             `json:"quoteQty"`
	QuotePrice string            `json:"quotePrice"`
	PV01       map[string]string `json:"pv01"`
	Sectors    []SectorConfig    `json:"sectors"`
	Archive    ArchiveConfig     `json:"archive"`
	Profiling  ProfilingConfig   `json:"profiling"`
}

// SectorConfig names a subset of products for bucketed-risk queries.
type SectorConfig struct {
	Name   string   `json:"name"`
	Cusips []string `json:"cusips"`
}

// ArchiveConfig enables the database archive when a DSN is set.
type ArchiveConfig struct {
	DSN string `json:"dsn"`
}

// ProfilingConfig enables pyroscope profiling.
type ProfilingConfig struct {
	Enabled       bool   `json:"enabled"`
	ServerAddress string `json:"serverAddress"`
	AppName       string `json:"appName"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	InputDir   string
	OutputDir  string
	Books      []string
	QuoteQty   model.Quantity
	QuotePrice model.Price
	PV01       risk.Table
	Sectors    []SectorConfig
	Archive    ArchiveConfig
	Profiling  ProfilingConfig
}

// InputPath resolves an input file name.
func (l Loaded) InputPath(name string) string {
	return filepath.Join(l.InputDir, name)
}

// OutputPath resolves an output file name.
func (l Loaded) OutputPath(name string) string {
	return filepath.Join(l.OutputDir, name)
}

// Load reads a JSON config file and resolves it. An empty path yields
// the defaults.
func Load(path string) (Loaded, error) {
	var cfg FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Loaded{}, errors.Wrap(err, "read config")
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Loaded{}, errors.Wrap(err, "parse config")
		}
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Loaded{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Books:      cfg.Books,
		QuoteQty:   model.Quantity(cfg.QuoteQty),
		Sectors:    cfg.Sectors,
		Archive:    cfg.Archive,
		Profiling:  cfg.Profiling,
		PV01:       risk.DefaultTable(),
		QuotePrice: model.PriceFromInt(100),
	}
	if loaded.InputDir == "" {
		loaded.InputDir = "data"
	}
	if loaded.OutputDir == "" {
		loaded.OutputDir = "out"
	}
	if len(loaded.Books) == 0 {
		loaded.Books = []string{"TRSY1", "TRSY2", "TRSY3"}
	}
	if loaded.QuoteQty <= 0 {
		loaded.QuoteQty = 10_000_000
	}
	if cfg.QuotePrice != "" {
		p, err := model.ParsePrice(cfg.QuotePrice)
		if err != nil {
			return Loaded{}, errors.Wrapf(err, "quote price %q", cfg.QuotePrice)
		}
		loaded.QuotePrice = p
	}
	for cusip, raw := range cfg.PV01 {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Loaded{}, errors.Wrapf(err, "pv01 for %s", cusip)
		}
		loaded.PV01[cusip] = d
	}
	if loaded.Profiling.AppName == "" {
		loaded.Profiling.AppName = "bonddesk"
	}
	return loaded, nil
}
