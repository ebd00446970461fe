package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/wage-report/internal/config"
	"github.com/jonathan/wage-report/internal/logger"
	"github.com/jonathan/wage-report/internal/pipeline"
)

func newRootCmd() *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "wage_report",
		Short: "Report the best-paid job title per first name",
		Long: "Processes a wage file CSV and returns a JSON object mapping each unique first name " +
			"to the department and job title with the highest average hourly rate.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputPath, "inputfile", "i", config.DefaultInputPath,
		"Location of file to be read, defaults to City_of_Seattle_Wage_Data.csv in the current working directory")
	cmd.Flags().StringVarP(&opts.OutputPath, "outputfile", "o", "",
		"Optional location for an output file. If omitted, output will go to standard out")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false,
		"Strip seniority and grade markers anywhere in a job title, not only at the end")

	return cmd
}

func runReport(cmd *cobra.Command, opts config.Options) error {
	log := logger.NewLogger(&logger.Config{
		Level:      logger.WarnLevel,
		Output:     cmd.ErrOrStderr(),
		TimeFormat: "15:04:05",
	})
	ctx := logger.ContextWithLogger(cmd.Context(), log)

	_, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Options: opts,
		Stdout:  cmd.OutOrStdout(),
		OnProgress: func(event pipeline.ProgressEvent) {
			log.Debug(event.Message, "step", event.Step)
		},
	})
	return err
}
