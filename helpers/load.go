package helpers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/schema"
)

// DefaultSource is the published survey export.
const DefaultSource = "https://raw.githubusercontent.com/DS4Ag/agr333s/refs/heads/main/data/survey_db.csv"

// httpClient fetches remote sources.
var httpClient = &http.Client{Timeout: 60 * time.Second}

// Load reads a survey table from a file path or http(s) URL and builds the
// dataset. ".xlsx" sources are read as workbooks; anything else as CSV.
func Load(ctx context.Context, source string, cols schema.Columns) (*engine.Dataset, error) {
	start := time.Now()
	headers, rows, err := ReadTable(ctx, source)
	if err != nil {
		return nil, err
	}
	responses, err := BuildResponses(headers, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	ds := engine.NewDataset(responses)
	slog.Info("dataset loaded",
		"source", source,
		"responses", ds.Len(),
		"sections", len(ds.Sections()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return ds, nil
}

// ReadTable reads the raw header + rows table of a source.
func ReadTable(ctx context.Context, source string) ([]string, [][]string, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	if isXLSX(source) {
		return ReadXLSX(rc)
	}
	return ReadCSV(rc)
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open source: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	slog.Debug("fetching source", "url", source)
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch source: %s returned %s", source, resp.Status)
	}
	return resp.Body, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isXLSX(source string) bool {
	p := source
	if isURL(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}
