// Package fileio parses uploaded tabular files (CSV, XLSX, legacy XLS) into
// rows keyed by header name. Encoding quirks are handled here so the rest of
// the service only ever sees UTF-8.
package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadTable picks a parser by file extension and returns data rows as maps
// keyed by header. headerRow is 1-based.
func ReadTable(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r, headerRow)
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}

// header returns the header row with empty cells replaced by "Column N".
func header(rows [][]string, headerRow int) []string {
	if len(rows) == 0 {
		return nil
	}
	idx := headerRow - 1
	if idx >= len(rows) {
		idx = 0
	}
	h := make([]string, len(rows[idx]))
	for i, v := range rows[idx] {
		v = cleanCell(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		h[i] = v
	}
	return h
}

// toMaps converts the rows after the header into maps, dropping rows where
// every cell is blank.
func toMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			v := ""
			if c < len(rows[r]) {
				v = cleanCell(rows[r][c])
			}
			if v != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// cleanCell trims and turns non-breaking spaces into plain ones.
func cleanCell(s string) string {
	s = strings.NewReplacer("\u00a0", " ", "\u202f", " ", "\u2009", " ").Replace(s)
	return strings.TrimSpace(s)
}
