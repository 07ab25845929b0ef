// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-saforia/models"
)

const unboundLabel = "(unbound)"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, helpStyle.Render("nothing to show"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

func renderEntries(w io.Writer, entries []models.Entry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			fitText(e.Label, 32),
			fitText(e.Postfix, 32),
			e.MethodID,
			fingerprintOrUnbound(e.FingerprintValue()),
			formatCreatedAt(e.CreatedAt),
		})
	}
	renderTable(w, []string{"ID", "LABEL", "POSTFIX", "METHOD", "VAULT", "CREATED"}, rows)
}

func renderCounts(w io.Writer, counts []models.FingerprintCount) {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{fingerprintOrUnbound(c.Fingerprint), strconv.Itoa(c.Count)})
	}
	renderTable(w, []string{"FINGERPRINT", "ENTRIES"}, rows)
}

func renderBuildInfo(w io.Writer, info models.AppBuildInfo) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("saforia"))
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	fmt.Fprintln(w, b.String())
}

func fingerprintOrUnbound(fp string) string {
	if fp == "" {
		return unboundLabel
	}
	return fp
}

func formatCreatedAt(unix int64) string {
	if unix <= 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format(time.DateTime)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, width int) string {
	r := []rune(v)
	if width <= 0 || len(r) <= width {
		return v
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
