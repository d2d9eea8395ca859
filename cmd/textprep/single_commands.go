package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"textprep/internal/pdftext"
	"textprep/internal/subtitles"
	"textprep/internal/textutil"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Print the text of a single PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			extractor := pdftext.NewExtractor(pdftext.Options{
				PageSeparator:   cfg.PDF.PageSeparator,
				KeepPartialText: cfg.PDF.KeepPartialText,
			}, logger)

			text, err := extractor.ExtractFile(args[0])
			if text = textutil.TrimSpace(text); text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return err
		},
	}
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "clean [file|-]",
		Short: "Print the cleaned text of a single subtitle file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showTable {
				fmt.Fprintln(out, renderRepairTable(subtitles.RepairTable()))
				return nil
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode := subtitles.DecodeMode(cfg.Subtitles.DecodeErrors)

			var text string
			if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text, err = subtitles.Decode(raw, cfg.Subtitles.Encoding, mode)
				if err != nil {
					return err
				}
			} else {
				text, err = subtitles.DecodeFile(args[0], cfg.Subtitles.Encoding, mode)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(out, subtitles.Clean(text))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTable, "show-table", false, "Print the ordered character repair table and exit")
	return cmd
}
