package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spektr-org/surveydash/engine"
)

func testDataset() *engine.Dataset {
	return engine.NewDataset([]engine.Response{
		engine.Answered("A", "Q1", "Yes", "Freshman", "Bio"),
		engine.Answered("A", "Q1", "No", "Senior", "Chem"),
		engine.Answered("A", "Q1", "Yes", "Freshman", "Chem"),
		engine.Answered("A", "Q2", "Maybe", "Senior", "Bio"),
		engine.Unanswered("A", "Q2", "Freshman", "Bio"),
		engine.Answered("B Section", "Q3", "Often", "Junior", "Math"),
	})
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(testDataset(), Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var body healthResponse
	status := getJSON(t, ts.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 6, body.Responses)
}

func TestOptions(t *testing.T) {
	ts := newTestServer(t)

	var body Options
	status := getJSON(t, ts.URL+"/api/options", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "A", body.DefaultSection)
	assert.Equal(t, []string{"A", "B Section"}, body.Sections)
	assert.Equal(t, []string{"All", "Freshman", "Senior", "Junior"}, body.GradeLevels)
	assert.Equal(t, []string{"All", "Bio", "Chem", "Math"}, body.Majors)
}

func TestQuestions(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/api/sections/A/questions", []string{"Q1", "Q2"}},
		{"/api/sections/B%20Section/questions", []string{"Q3"}},
		{"/api/sections/Nope/questions", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got []string
			status := getJSON(t, ts.URL+tt.path, &got)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDashboardMatchesExecute(t *testing.T) {
	ts := newTestServer(t)

	var got engine.Result
	status := getJSON(t, ts.URL+"/api/dashboard?section=A&question=Q1&grade=All&major=All", &got)
	require.Equal(t, http.StatusOK, status)

	q := "Q1"
	want, err := engine.Execute(testDataset(), engine.FilterSpec{Section: "A", Question: &q, GradeLevel: "All", Major: "All"})
	require.NoError(t, err)

	assert.Equal(t, engine.Selected, got.State)
	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, want.AnswerOrder, got.AnswerOrder)
	assert.Equal(t, want.Tables, got.Tables)
	assert.Equal(t, engine.SummaryResult{TotalResponses: 3, MostCommonAnswer: "Yes", UniqueAnswerCount: 2}, got.Summary)
	require.NotNil(t, got.Charts)
	assert.Equal(t, "Distribution of Answers: Q1", got.Charts.Pie.Title)
}

func TestDashboardQuestionIndex(t *testing.T) {
	ts := newTestServer(t)

	var got engine.Result
	status := getJSON(t, ts.URL+"/api/dashboard?section=A&question_index=1&grade=Freshman", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Q2", got.Question)
	assert.Equal(t, engine.SummaryResult{TotalResponses: 1, MostCommonAnswer: "N/A", UnansweredCount: 1}, got.Summary)
	assert.Empty(t, got.Tables.AnswerCounts)
}

func TestDashboardAwaitingSelection(t *testing.T) {
	ts := newTestServer(t)

	var got engine.Result
	status := getJSON(t, ts.URL+"/api/dashboard?section=A", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, engine.AwaitingSelection, got.State)
	assert.Equal(t, engine.DefaultPlaceholder, got.Placeholder)
	assert.Nil(t, got.Charts)
	assert.Equal(t, engine.EmptySummary(), got.Summary)
}

func TestDashboardForeignQuestion(t *testing.T) {
	ts := newTestServer(t)

	var got engine.Result
	status := getJSON(t, ts.URL+"/api/dashboard?section=A&question=Q3", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, engine.Selected, got.State)
	assert.Equal(t, 0, got.Summary.TotalResponses)
	assert.Equal(t, "N/A", got.Summary.MostCommonAnswer)
}

func TestDashboardErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing section", "?question=Q1", http.StatusBadRequest},
		{"index out of range", "?section=A&question_index=5", http.StatusUnprocessableEntity},
		{"negative index", "?section=A&question_index=-1", http.StatusUnprocessableEntity},
		{"malformed index", "?section=A&question_index=two", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorResponse
			status := getJSON(t, ts.URL+"/api/dashboard"+tt.query, &body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestReportJSON(t *testing.T) {
	ts := newTestServer(t)

	var got engine.SectionReport
	status := getJSON(t, ts.URL+"/api/report?section=A&major=Bio", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "A", got.Section)
	assert.Equal(t, "All", got.GradeLevel)
	assert.Equal(t, "Bio", got.Major)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "Q1", got.Questions[0].Question)
	assert.Equal(t, "Q2", got.Questions[1].Question)
	assert.Equal(t, 1, got.Questions[0].Summary.TotalResponses)

	status = getJSON(t, ts.URL+"/api/report", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestReportXLSX(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/report?section=A&format=xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Answers", "By Grade Level", "By Major"}, f.GetSheetList())
}

func TestReportXLSXExportFailure(t *testing.T) {
	orig := writeReportXLSX
	writeReportXLSX = func(io.Writer, *engine.SectionReport) error { return errors.New("disk full") }
	t.Cleanup(func() { writeReportXLSX = orig })
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/report?section=A&format=xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Empty(t, resp.Header.Get("Content-Disposition"))

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "disk full", body.Error)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.test")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := New(testDataset(), Config{Logger: slog.New(slog.NewTextHandler(&buf, nil))})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "path=/healthz")
	assert.Contains(t, buf.String(), "status=200")
}

func TestRunShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := New(testDataset(), Config{
		Addr:   addr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
