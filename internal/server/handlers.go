package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/helpers"
)

// Options lists the values the selectors offer. GradeLevels and Majors start
// with engine.All. DefaultSection is the first section, preselected on load.
type Options struct {
	DefaultSection string   `json:"defaultSection"`
	Sections       []string `json:"sections"`
	GradeLevels    []string `json:"gradeLevels"`
	Majors         []string `json:"majors"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Responses int    `json:"responses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Health
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Responses: s.ds.Len()})
}

// ============================================================================
// Selector options
// ============================================================================

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts := Options{
		Sections:    s.ds.Sections(),
		GradeLevels: append([]string{engine.All}, s.ds.GradeLevels()...),
		Majors:      append([]string{engine.All}, s.ds.Majors()...),
	}
	if len(opts.Sections) > 0 {
		opts.DefaultSection = opts.Sections[0]
	}
	writeJSON(w, http.StatusOK, opts)
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(section); err == nil {
			section = v
		}
	}
	writeJSON(w, http.StatusOK, engine.QuestionsForSection(s.ds, section))
}

// ============================================================================
// Dashboard
// ============================================================================

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilterSpec(r.URL.Query())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	res, err := engine.Execute(s.ds, spec, s.cfg.EngineOptions...)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	section := q.Get("section")
	if section == "" {
		writeError(w, http.StatusBadRequest, errMissingSection)
		return
	}

	report, err := engine.Report(r.Context(), s.ds, section, q.Get("grade"), q.Get("major"), s.cfg.EngineOptions...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if strings.EqualFold(q.Get("format"), "xlsx") {
		var buf bytes.Buffer
		if err := writeReportXLSX(&buf, report); err != nil {
			s.logger.Error("report export failed", "section", section, "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report.xlsx"))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// writeReportXLSX is swapped in tests to exercise a failed export.
var writeReportXLSX = helpers.WriteReportXLSX

var (
	errMissingSection = errors.New("section is required")
	errBadIndex       = errors.New("question_index must be an integer")
)

// parseFilterSpec reads section, question, question_index, grade and major.
// question wins over question_index when both are given.
func parseFilterSpec(q url.Values) (engine.FilterSpec, error) {
	spec := engine.FilterSpec{
		Section:    q.Get("section"),
		GradeLevel: q.Get("grade"),
		Major:      q.Get("major"),
	}
	if spec.Section == "" {
		return spec, errMissingSection
	}

	if question := q.Get("question"); question != "" {
		spec.Question = &question
		return spec, nil
	}
	if raw := q.Get("question_index"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return spec, fmt.Errorf("%w: %q", errBadIndex, raw)
		}
		spec.QuestionIndex = &idx
	}
	return spec, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingSection):
		return http.StatusBadRequest
	case errors.Is(err, errBadIndex), errors.Is(err, engine.ErrQuestionIndexOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ============================================================================
// JSON helpers
// ============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // headers already sent
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
