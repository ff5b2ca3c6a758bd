package listings

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// expectedColumns is the canonical header set, in spreadsheet order.
var expectedColumns = []string{
	"Job Title",
	"Company Name",
	"Work City",
	"Salary",
	"Application Deadline",
	"Job Description",
}

// LoadXLSX reads job listings from a spreadsheet sheet. When the header row
// has exactly the expected column count the canonical names are assumed
// positionally; otherwise the file's own header names are used and matched
// against the canonical set, leaving unmatched fields empty.
func LoadXLSX(path, sheet string) ([]Listing, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open listings file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	index := columnIndex(header)

	listings := make([]Listing, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		listings = append(listings, Listing{
			Title:       cell(row, index["Job Title"]),
			Company:     cell(row, index["Company Name"]),
			City:        cell(row, index["Work City"]),
			Salary:      cell(row, index["Salary"]),
			Deadline:    cell(row, index["Application Deadline"]),
			Description: cell(row, index["Job Description"]),
		})
	}
	return listings, nil
}

// columnIndex maps canonical column names to positions in the file.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(expectedColumns))
	if len(header) == len(expectedColumns) {
		for i, name := range expectedColumns {
			index[name] = i
		}
		return index
	}
	for _, name := range expectedColumns {
		index[name] = -1
	}
	for pos, raw := range header {
		name := strings.TrimSpace(raw)
		if _, ok := index[name]; ok {
			index[name] = pos
		}
	}
	return index
}

func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
