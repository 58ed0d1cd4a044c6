// Package report renders grouping results for humans: the flat
// "Group N (Score: S)" text listing, CSV, and an XLSX workbook with the
// retained pair scores on a second sheet.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"namedup-service/internal/dedup/model"
)

// NameIndex maps record IDs back to their raw names for display.
func NameIndex(recs []model.Record) map[string]string {
	m := make(map[string]string, len(recs))
	for _, r := range recs {
		m[r.ID] = r.Name
	}
	return m
}

func Text(res model.Result, names map[string]string) string {
	var b strings.Builder
	if len(res.Groups) == 0 {
		b.WriteString("No duplicate or misspelled names detected.\n")
	}
	for i, g := range res.Groups {
		fmt.Fprintf(&b, "Group %d (Score: %d)\n", i+1, g.Score)
		for _, id := range g.Members {
			fmt.Fprintf(&b, "  %s: %s\n", id, names[id])
		}
		b.WriteString("\n")
	}
	if n := len(res.Skipped); n > 0 {
		fmt.Fprintf(&b, "Skipped %d record(s) with empty names: %s\n", n, strings.Join(res.Skipped, ", "))
	}
	return b.String()
}

func WriteCSV(w io.Writer, res model.Result, names map[string]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"group", "score", "id", "name"}); err != nil {
		return err
	}
	for i, g := range res.Groups {
		for _, id := range g.Members {
			rec := []string{strconv.Itoa(i + 1), strconv.Itoa(g.Score), id, names[id]}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, res model.Result, names map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const groupSheet = "Groups"
	if err := f.SetSheetName("Sheet1", groupSheet); err != nil {
		return err
	}
	head := []any{"Group", "Score", "ID", "Name"}
	if err := f.SetSheetRow(groupSheet, "A1", &head); err != nil {
		return err
	}
	row := 2
	for i, g := range res.Groups {
		for _, id := range g.Members {
			cells := []any{i + 1, g.Score, id, names[id]}
			if err := f.SetSheetRow(groupSheet, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
	}

	const pairSheet = "Pairs"
	if _, err := f.NewSheet(pairSheet); err != nil {
		return err
	}
	pairHead := []any{"A", "B", "Score"}
	if err := f.SetSheetRow(pairSheet, "A1", &pairHead); err != nil {
		return err
	}
	for i, p := range res.Pairs {
		cells := []any{p.A, p.B, p.Score}
		if err := f.SetSheetRow(pairSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}

	return f.Write(w)
}
