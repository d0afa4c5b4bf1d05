package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SectionReport is the dashboard result for every question of a section.
type SectionReport struct {
	Section    string    `json:"section"`
	GradeLevel string    `json:"gradeLevel"`
	Major      string    `json:"major"`
	Questions  []*Result `json:"questions"`
}

// Report executes every question of a section under the same demographic
// filters. Questions run concurrently; results keep QuestionsForSection
// order. An unknown section yields an empty report.
func Report(ctx context.Context, view View, section, grade, major string, opts ...Option) (*SectionReport, error) {
	cfg := applyOptions(opts)
	questions := QuestionsForSection(view, section)

	report := &SectionReport{
		Section:    section,
		GradeLevel: filterLabel(grade),
		Major:      filterLabel(major),
		Questions:  make([]*Result, len(questions)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.ReportWorkers)
	for i, q := range questions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Execute(view, FilterSpec{
				Section:    section,
				Question:   &q,
				GradeLevel: grade,
				Major:      major,
			}, opts...)
			if err != nil {
				return err
			}
			report.Questions[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("section report built", "section", section, "questions", len(questions))
	return report, nil
}
