package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"main/internal/model"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "archive.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	a, err := New(db)
	require.NoError(t, err)
	return a
}

func TestArchiveSavesExecutions(t *testing.T) {
	a := openTestArchive(t)

	err := a.SaveExecution(model.ExecutionOrder{
		Product:    model.Bond{ID: "912828M72"},
		Side:       model.Bid,
		OrderID:    "T1",
		Type:       model.Market,
		Price:      model.PriceFromInt(100),
		VisibleQty: 1_000_000,
	})
	require.NoError(t, err)

	count, err := a.Executions()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Duplicate order ids violate the unique index.
	err = a.SaveExecution(model.ExecutionOrder{
		Product: model.Bond{ID: "912828N22"},
		OrderID: "T1",
	})
	assert.Error(t, err)
}

func TestArchiveSavesInquiries(t *testing.T) {
	a := openTestArchive(t)

	err := a.SaveInquiry(model.Inquiry{
		InquiryID: "INQ1",
		Product:   model.Bond{ID: "912810RP5"},
		Side:      model.SideBuy,
		Quantity:  2_000_000,
		Price:     model.PriceFromInt(99),
		State:     model.InquiryDone,
	})
	require.NoError(t, err)

	count, err := a.Inquiries()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var rec InquiryRecord
	require.NoError(t, a.db.First(&rec, "inquiry_id = ?", "INQ1").Error)
	assert.Equal(t, "DONE", rec.State)
	assert.Equal(t, "99.000000000", rec.Price)
}

func TestPostgresDSN(t *testing.T) {
	opt := Option{
		User:     "desk",
		Password: "secret",
		Database: "backoffice",
	}
	dsn, err := opt.dsn()
	require.NoError(t, err)
	assert.Contains(t, dsn, "desk:secret@localhost:5432/backoffice")
	assert.Contains(t, dsn, "sslmode=disable")
}
