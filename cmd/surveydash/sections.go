package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spektr-org/surveydash/engine"
)

var (
	listFormat       string
	questionsSection string
)

// sectionsCmd lists the selector options: sections, grade levels, majors.
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List sections, grade levels and majors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkFormat(listFormat, "text", "json", "pretty"); err != nil {
			return err
		}
		ds, err := holder.Dataset(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		opts := struct {
			Sections    []string `json:"sections"`
			GradeLevels []string `json:"gradeLevels"`
			Majors      []string `json:"majors"`
		}{ds.Sections(), ds.GradeLevels(), ds.Majors()}
		if listFormat != "text" {
			return writeJSON(w, opts, listFormat)
		}

		bold := color.New(color.Bold)
		for _, group := range []struct {
			title  string
			values []string
		}{
			{"Sections", opts.Sections},
			{"Grade Levels", opts.GradeLevels},
			{"Majors", opts.Majors},
		} {
			bold.Fprintf(w, "%s (%d)\n", group.title, len(group.values))
			for _, v := range group.values {
				fmt.Fprintf(w, "  %s\n", v)
			}
		}
		return nil
	},
}

// questionsCmd lists a section's questions in selector order.
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions of a section with their selector index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkFormat(listFormat, "text", "json", "pretty"); err != nil {
			return err
		}
		if err := checkSection(questionsSection); err != nil {
			return err
		}
		ds, err := holder.Dataset(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		questions := engine.QuestionsForSection(ds, questionsSection)
		if listFormat != "text" {
			return writeJSON(w, questions, listFormat)
		}
		if len(questions) == 0 {
			fmt.Fprintf(w, "No questions in section %q.\n", questionsSection)
			return nil
		}
		dim := color.New(color.Faint)
		for i, q := range questions {
			dim.Fprintf(w, "%3d  ", i)
			fmt.Fprintln(w, q)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{sectionsCmd, questionsCmd} {
		c.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text, json, pretty")
	}
	questionsCmd.Flags().StringVar(&questionsSection, "section", "", "survey section (required)")
	_ = questionsCmd.MarkFlagRequired("section")
}
