package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one parsed row of a progress import sheet.
type Record struct {
	BrandName string
	Platform  string // code from the fixed enumeration
	Committed int
	Drafted   int
	Published int
	Notes     string
}

// RowError reports a rejected input row with its 1-based line number.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// ImportRows parses tabular rows of the shape
// (brand, platform, committed, drafted, published[, notes]).
// The mapping translates sheet-specific platform labels to codes; labels not
// in the mapping fall back to the canonical display names and finally to the
// raw code itself. Parsing is pure; persistence is the caller's problem.
// Bad rows are collected, not fatal, so one typo does not sink a sheet.
func ImportRows(rows [][]string, mapping map[string]string) ([]Record, []RowError) {
	var (
		records []Record
		errs    []RowError
	)
	for i, row := range rows {
		line := i + 1
		rec, err := parseRow(row, mapping)
		if err != nil {
			errs = append(errs, RowError{Line: line, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

func parseRow(row []string, mapping map[string]string) (Record, error) {
	if len(row) < 5 {
		return Record{}, fmt.Errorf("want at least 5 columns (brand, platform, committed, drafted, published), got %d", len(row))
	}
	brand := strings.TrimSpace(row[0])
	if brand == "" {
		return Record{}, fmt.Errorf("empty brand name")
	}
	code, err := resolvePlatform(strings.TrimSpace(row[1]), mapping)
	if err != nil {
		return Record{}, err
	}
	nums := make([]int, 3)
	for j, col := range row[2:5] {
		n, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return Record{}, fmt.Errorf("column %d: %q is not a number", j+3, col)
		}
		if n < 0 {
			return Record{}, fmt.Errorf("column %d: negative count %d", j+3, n)
		}
		nums[j] = n
	}
	rec := Record{
		BrandName: brand,
		Platform:  code,
		Committed: nums[0],
		Drafted:   nums[1],
		Published: nums[2],
	}
	if len(row) > 5 {
		rec.Notes = strings.TrimSpace(row[5])
	}
	return rec, nil
}

func resolvePlatform(label string, mapping map[string]string) (string, error) {
	if label == "" {
		return "", fmt.Errorf("empty platform")
	}
	if code, ok := mapping[label]; ok {
		if !KnownPlatform(code) {
			return "", fmt.Errorf("mapping for %q points at unknown code %q", label, code)
		}
		return code, nil
	}
	if code, ok := CodeForName(label); ok {
		return code, nil
	}
	if KnownPlatform(label) {
		return label, nil
	}
	return "", fmt.Errorf("unknown platform %q", label)
}
