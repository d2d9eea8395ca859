package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"textprep/internal/batch"
	"textprep/internal/subtitles"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderSummary lists every processed file followed by the batch totals.
func renderSummary(summary batch.Summary) string {
	var b strings.Builder
	if len(summary.Results) > 0 {
		rows := make([][]string, 0, len(summary.Results))
		for _, r := range summary.Results {
			detail := ""
			if r.Err != nil {
				detail = r.Err.Error()
			}
			rows = append(rows, []string{
				filepath.Base(r.Input),
				filepath.Base(r.Output),
				string(r.Status),
				strconv.Itoa(r.Chars),
				formatDuration(r.Duration),
				detail,
			})
		}
		b.WriteString(renderTable(
			[]string{"Input", "Output", "Status", "Chars", "Time", "Error"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Found %d, written %d, empty %d, failed %d in %s\n",
		summary.Found, summary.Written, summary.Empty, summary.Failed, formatDuration(summary.Elapsed))
	if summary.RunID != "" {
		fmt.Fprintf(&b, "Run %s\n", summary.RunID)
	}
	return b.String()
}

// renderRepairTable lists the character repairs in the order they apply.
func renderRepairTable(repairs []subtitles.Repair) string {
	rows := make([][]string, 0, len(repairs))
	for i, r := range repairs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Quote(r.From),
			strconv.Quote(r.To),
		})
	}
	return renderTable([]string{"#", "Corrupted", "Replacement"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
