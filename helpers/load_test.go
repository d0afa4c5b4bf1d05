package helpers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/schema"
)

// writeSurveyXLSX writes the rows of surveyCSV to a workbook.
func writeSurveyXLSX(t *testing.T, path string) {
	t.Helper()
	headers, rows, err := ReadCSV(bytes.NewBufferString(surveyCSV))
	require.NoError(t, err)

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range append([][]string{headers}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(surveyCSV), 0o644))

	ds, err := Load(context.Background(), path, schema.Columns{})
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, []string{"Habits", "Career"}, ds.Sections())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), schema.Columns{})
	assert.Error(t, err)
}

func TestLoadXLSXMatchesCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "survey.csv")
	xlsxPath := filepath.Join(dir, "survey.xlsx")
	require.NoError(t, os.WriteFile(csvPath, []byte(surveyCSV), 0o644))
	writeSurveyXLSX(t, xlsxPath)

	fromCSV, err := Load(context.Background(), csvPath, schema.Columns{})
	require.NoError(t, err)
	fromXLSX, err := Load(context.Background(), xlsxPath, schema.Columns{})
	require.NoError(t, err)

	assert.Equal(t, engine.Materialize(fromCSV), engine.Materialize(fromXLSX))
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/survey_db.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(surveyCSV))
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), srv.URL+"/data/survey_db.csv", schema.Columns{})
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())

	_, err = Load(context.Background(), srv.URL+"/missing.csv", schema.Columns{})
	assert.ErrorContains(t, err, "404")
}

func TestLoadURLCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(surveyCSV))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, srv.URL+"/survey.csv", schema.Columns{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsXLSX(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"survey.xlsx", true},
		{"data/Survey.XLSX", true},
		{"survey.csv", false},
		{"https://example.com/export.xlsx?raw=1", true},
		{"https://example.com/export.csv?name=a.xlsx", false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, isXLSX(tt.source))
		})
	}
}
