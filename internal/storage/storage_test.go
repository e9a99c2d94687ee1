package storage

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mockcheck/internal/config"
	"mockcheck/internal/domain"
)

func sampleSummary() *domain.RunSummary {
	s := &domain.RunSummary{}
	s.Record(domain.TestResult{
		Name:     "List contacts",
		Passed:   true,
		Method:   "GET",
		URL:      "http://localhost:4010/v1/contacts",
		Expected: `status 200 with "data", "pagination"`,
		Actual:   "status 200",
		Status:   200,
		Curl:     "curl -s -X GET 'http://localhost:4010/v1/contacts'",
		Duration: 12 * time.Millisecond,
	})
	s.Record(domain.TestResult{
		Name:     "Create contact without email",
		Method:   "POST",
		URL:      "http://localhost:4010/v1/contacts",
		Expected: "status 400",
		Actual:   "status 201",
		Status:   201,
	})
	s.Duration = 1500 * time.Millisecond
	return s
}

func TestBuildOutput(t *testing.T) {
	finished := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	output := BuildOutput("http://localhost:4010", sampleSummary(), finished)

	_, err := uuid.Parse(output.Meta.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:4010", output.Meta.BaseURL)
	assert.Equal(t, 2, output.Meta.Total)
	assert.Equal(t, 1, output.Meta.Passed)
	assert.Equal(t, 1, output.Meta.Failed)
	assert.Equal(t, "1.5s", output.Meta.Duration)
	assert.InDelta(t, 1.5, output.Meta.DurationSeconds, 1e-9)
	assert.Equal(t, "2026-10-17T09:30:00Z", output.Meta.Timestamp)
	assert.Len(t, output.Failures(), 1)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "nested", "storage")
	st := NewJSONStorage(cfg)

	output := BuildOutput("http://localhost:4010", sampleSummary(), time.Now())
	require.NoError(t, st.Save(output))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, output.Meta, loaded.Meta)
	require.Len(t, loaded.Results, 2)
	assert.Equal(t, output.Results[0].Duration, loaded.Results[0].Duration)
	assert.Equal(t, "Create contact without email", loaded.Failures()[0].Name)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()
	_, err := NewJSONStorage(cfg).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestExcelExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.xlsx")
	output := BuildOutput("http://localhost:4010", sampleSummary(), time.Now())

	require.NoError(t, NewExcelExporter().Export(output, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, excelHeaders, rows[0])
	assert.Equal(t, "List contacts", rows[1][1])
	assert.Equal(t, "PASS", rows[1][7])
	assert.Equal(t, "Create contact without email", rows[2][1])
	assert.Equal(t, "status 400", rows[2][4])
	assert.Equal(t, "status 201", rows[2][5])
	assert.Equal(t, "FAIL", rows[2][7])

	failed, err := f.GetCellValue(resultsSheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "1", failed)
}
