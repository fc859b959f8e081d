package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.InputDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, []string{"TRSY1", "TRSY2", "TRSY3"}, cfg.Books)
	assert.Equal(t, model.Quantity(10_000_000), cfg.QuoteQty)
	assert.Equal(t, model.PriceFromInt(100), cfg.QuotePrice)
	assert.Equal(t, "0.01974732", cfg.PV01["912828M72"].String())
	assert.Equal(t, "bonddesk", cfg.Profiling.AppName)
	assert.Equal(t, filepath.Join("data", "trades.txt"), cfg.InputPath("trades.txt"))
	assert.Equal(t, filepath.Join("out", "positions.txt"), cfg.OutputPath("positions.txt"))
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"inputDir": "feeds",
		"quoteQty": 5000000,
		"quotePrice": "99.5",
		"pv01": {"912828M72": "0.02"},
		"sectors": [{"name": "FrontEnd", "cusips": ["912828M72"]}],
		"archive": {"dsn": "postgres://desk@localhost/backoffice"}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "feeds", cfg.InputDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, model.Quantity(5_000_000), cfg.QuoteQty)
	assert.Equal(t, 99.5, cfg.QuotePrice.Float64())
	assert.Equal(t, "0.02", cfg.PV01["912828M72"].String())
	assert.Equal(t, "0.198018642", cfg.PV01["912810RP5"].String())
	require.Len(t, cfg.Sectors, 1)
	assert.Equal(t, "FrontEnd", cfg.Sectors[0].Name)
	assert.Equal(t, "postgres://desk@localhost/backoffice", cfg.Archive.DSN)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "badprice.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"quotePrice": "abc"}`), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	badPV := filepath.Join(dir, "badpv01.json")
	require.NoError(t, os.WriteFile(badPV, []byte(`{"pv01": {"912828M72": "x"}}`), 0o644))
	_, err = Load(badPV)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
