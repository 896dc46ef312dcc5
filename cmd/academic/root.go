package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tetrahub/academic-records/config"
	"github.com/tetrahub/academic-records/internal/application/service"
	"github.com/tetrahub/academic-records/internal/domain/catalog"
	"github.com/tetrahub/academic-records/internal/domain/evaluation"
	"github.com/tetrahub/academic-records/internal/domain/student"
	"github.com/tetrahub/academic-records/internal/interface/console"
	"github.com/tetrahub/academic-records/pkg/logger"
)

type rootOptions struct {
	envFiles []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "academic",
		Short:         "Academic record keeper for the nine-term program",
		Long:          "Registers a student, opens a term from the subject catalog, records a weighted evaluation and prints the academic report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading the environment")

	root.AddCommand(
		newCatalogCommand(),
		newGradeCommand(),
		newAssignCommand(opts),
	)
	return root
}

func runSession(ctx context.Context, opts *rootOptions, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, errOut)
	if err != nil {
		return err
	}
	defer app.Close()

	session := console.NewSession(console.SessionConfig{
		In:       in,
		Out:      out,
		Academic: app.academic,
		Students: app.students,
		Record:   app.record,
		Report:   app.report,
		Profile:  profileFromConfig(cfg.Session),
		Language: cfg.Language(),
		Logger:   app.log,
	})

	err = session.Run(logger.WithContext(ctx, app.log))
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.New("input ended before the session finished")
	}
	return err
}

func profileFromConfig(c config.SessionConfig) student.NewStudentParams {
	return student.NewStudentParams{
		FirstName:      c.FirstName,
		MiddleName:     c.MiddleName,
		LastName:       c.LastName,
		MotherLastName: c.MotherLastName,
		Age:            c.Age,
		Gender:         c.Gender,
		Nationality:    c.Nationality,
		Address:        c.Address,
		HomePhone:      c.HomePhone,
		MobilePhone:    c.MobilePhone,
	}
}

func newCatalogCommand() *cobra.Command {
	var term int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog subjects, optionally for one term",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			c := catalog.Default()

			terms := catalog.Terms()
			if term != 0 {
				t, err := catalog.ValidateTerm(term)
				if err != nil {
					return err
				}
				terms = []catalog.Term{t}
			}

			for _, t := range terms {
				fmt.Fprintf(out, "Tetramestre %d (%d créditos)\n", t, c.TotalCredits(t.Int()))
				for i, s := range c.SubjectsByTerm(t.Int()) {
					fmt.Fprintf(out, "  %d. %s [%d Créditos]\n", i+1, s.Name(), s.Credits())
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&term, "term", 0, "term number 1-9 (all terms when omitted)")
	return cmd
}

func newGradeCommand() *cobra.Command {
	var scores evaluation.Scores
	var passing float64

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Compute the weighted final grade of six component scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := evaluation.New(scores)
			if err != nil {
				return err
			}
			grade := ev.FinalGrade()
			status := "REPROBADO"
			if evaluation.Passed(grade, passing) {
				status = "APROBADO"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", grade, status)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&scores.Projects, "projects", 0, "projects score (20%)")
	f.Float64Var(&scores.Homework, "homework", 0, "homework score (20%)")
	f.Float64Var(&scores.Activities, "activities", 0, "activities score (10%)")
	f.Float64Var(&scores.Partial1, "partial1", 0, "partial exam 1 score (10%)")
	f.Float64Var(&scores.Partial2, "partial2", 0, "partial exam 2 score (10%)")
	f.Float64Var(&scores.FinalExam, "final", 0, "final exam score (30%)")
	f.Float64Var(&passing, "passing", evaluation.DefaultPassingGrade, "passing threshold")
	return cmd
}

func newAssignCommand(opts *rootOptions) *cobra.Command {
	var teacherName string
	var subjectNames []string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign catalog subjects to a teacher (at most three are kept)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.envFiles...)
			if err != nil {
				return err
			}
			app, err := newApplication(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			t, err := app.teachers.RegisterTeacher(teacherName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range subjectNames {
				subject, ok := app.academic.Catalog().Lookup(name)
				if !ok {
					fmt.Fprintf(out, "%q: not in catalog\n", name)
					continue
				}
				if app.teachers.AssignSubject(t, subject) {
					fmt.Fprintf(out, "%s: assigned\n", subject.Name())
				} else {
					fmt.Fprintf(out, "%s: dropped, load limit reached\n", subject.Name())
				}
			}
			fmt.Fprintf(out, "%s teaches: %s\n", t.Name(), service.SubjectSummary(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&teacherName, "teacher", "", "teacher name")
	cmd.Flags().StringArrayVar(&subjectNames, "subject", nil, "subject name, repeatable")
	_ = cmd.MarkFlagRequired("teacher")
	return cmd
}
