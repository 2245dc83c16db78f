package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// classify assigns the explicit role and raw-to-cooked ratio for an item
// name. This is the ONLY place name substrings are interpreted; every
// consumer reads the resulting tags. If the catalog naming convention
// changes, this table is the single point to update.
func classify(item string) (Role, float64) {
	lower := strings.ToLower(item)

	switch {
	case strings.Contains(lower, "crème"), strings.Contains(lower, "creme"),
		strings.Contains(lower, "œufs"), strings.Contains(lower, "oeufs"):
		return RoleGarnish, 0
	case strings.Contains(lower, "riz") && strings.Contains(lower, "cru"):
		return RoleStaple, 3
	case strings.Contains(lower, "pâtes") && strings.Contains(lower, "cru"),
		strings.Contains(lower, "pates") && strings.Contains(lower, "cru"):
		return RoleStaple, 2.5
	case strings.Contains(lower, "pst") && strings.Contains(lower, "cru"):
		return RoleStaple, 2.5
	}
	return RoleFixed, 0
}

// Parse reads roadmap rows from CSV with the header
// Type,Section,Item,Axel,Prisca,Note. Empty lines are skipped. Roles and
// cooked ratios are attached here, once.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Type", "Section", "Item", "Axel", "Prisca"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		item := field(record, "Item")
		if item == "" {
			continue
		}

		row := Row{
			Category:   field(record, "Type"),
			Section:    field(record, "Section"),
			Item:       item,
			AxelSpec:   field(record, "Axel"),
			PriscaSpec: field(record, "Prisca"),
			Note:       field(record, "Note"),
		}
		row.Role, row.CookedRatio = classify(item)
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadFile parses the catalog CSV at path.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
