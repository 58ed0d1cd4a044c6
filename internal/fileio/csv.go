package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV parses CSV, sniffing the encoding from the first few KB.
// UTF-8 is assumed unless the detector is confident about a single-byte
// Windows codepage (exports from old spreadsheet tools are the usual source).
func readCSV(r io.Reader, headerRow int) ([]map[string]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(4096)
	charset := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			charset = strings.ToLower(det.Charset)
		}
	}

	var in io.Reader = br
	switch charset {
	case "windows-1251", "cp1251":
		in = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	case "windows-1252", "cp1252", "iso-8859-1":
		in = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := header(rows, headerRow)
	return toMaps(rows, h, headerRow), nil
}
