package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textprep/internal/batch"
	"textprep/internal/pdftext"
	"textprep/internal/subtitles"
)

func newPDFCommand(ctx *commandContext) *cobra.Command {
	var inputDir string
	var outputDir string
	var pattern string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Extract text from every PDF in the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg := *cfg
			if v := strings.TrimSpace(inputDir); v != "" {
				runCfg.PDF.InputDir = v
			}
			if v := strings.TrimSpace(outputDir); v != "" {
				runCfg.PDF.OutputDir = v
			}
			if v := strings.TrimSpace(pattern); v != "" {
				runCfg.PDF.Pattern = v
			}
			if err := applyOverrides(&runCfg); err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			summary, runErr := pdftext.NewProcessor(runCfg.PDF, runCfg.LockDir(), logger).Run(cmd.Context())
			printBatchResult(cmd, "PDF batch", summary, runErr)
			return runErr
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "Folder containing PDF files")
	cmd.Flags().StringVar(&outputDir, "output", "", "Folder receiving the .txt files")
	cmd.Flags().StringVar(&pattern, "pattern", "", "File name pattern matched inside the input folder")
	return cmd
}

func newSRTCommand(ctx *commandContext) *cobra.Command {
	var pattern string
	var outputDir string
	var suffix string
	var encoding string
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "srt",
		Short: "Clean every subtitle file matching the pattern into flat text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg := *cfg
			if v := strings.TrimSpace(pattern); v != "" {
				runCfg.Subtitles.Pattern = v
			}
			if v := strings.TrimSpace(outputDir); v != "" {
				runCfg.Subtitles.OutputDir = v
			}
			if v := strings.TrimSpace(suffix); v != "" {
				runCfg.Subtitles.Suffix = v
			}
			if v := strings.TrimSpace(encoding); v != "" {
				runCfg.Subtitles.Encoding = v
			}
			if cmd.Flags().Changed("continue-on-error") {
				runCfg.Subtitles.ContinueOnError = continueOnError
			}
			if err := applyOverrides(&runCfg); err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			summary, runErr := subtitles.NewProcessor(runCfg.Subtitles, runCfg.LockDir(), logger).Run(cmd.Context())
			printBatchResult(cmd, "Subtitle batch", summary, runErr)
			return runErr
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob selecting subtitle files")
	cmd.Flags().StringVar(&outputDir, "output", "", "Folder receiving the cleaned .txt files")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Suffix appended to output base names")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Subtitle charset (WHATWG label)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Record failing files and keep going")
	return cmd
}

// printBatchResult writes the per-file table and a status line. Nothing is
// printed when the batch failed before touching any file.
func printBatchResult(cmd *cobra.Command, label string, summary batch.Summary, runErr error) {
	if runErr != nil && summary.Processed() == 0 {
		return
	}
	out := cmd.OutOrStdout()
	if summary.Found > 0 {
		fmt.Fprint(out, renderSummary(summary))
	}
	fmt.Fprintln(out, batchStatusLine(label, summary, shouldColorize(out)))
}
