package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

// Legacy .xls. The library's per-row LastCol is unreliable on sparse sheets,
// so the sheet width is probed up front and every row is read to that width.
func readXLS(r io.Reader, headerRow int) ([]map[string]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, charset := range []string{"utf-8", "windows-1251"} {
		wb, lastErr = xls.OpenReader(bytes.NewReader(b), charset)
		if lastErr == nil && wb != nil {
			break
		}
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	width := sheetWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, width)
		if row := sheet.Row(i); row != nil {
			for j := 0; j < width; j++ {
				cols[j] = cleanCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}

	h := header(rows, headerRow)
	return toMaps(rows, h, headerRow), nil
}

func sheetWidth(sheet *xls.WorkSheet) int {
	const probe = 256
	width := 1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probe; j++ {
			if cleanCell(row.Col(j)) != "" && j+1 > width {
				width = j + 1
			}
		}
	}
	return width
}
