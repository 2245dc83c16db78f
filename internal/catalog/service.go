package catalog

// Service holds the loaded catalog in memory. Rows are read-only after
// load; a reload replaces the whole slice.
type Service struct {
	rows []Row
}

func NewService(rows []Row) *Service {
	return &Service{rows: rows}
}

// Rows returns every catalog row in file order.
func (s *Service) Rows() []Row {
	return s.rows
}

// FindDiet returns the diet row with the exact item name, if any. Only
// rows whose category marks them as dietary participate in aggregation;
// supplement and info rows are never matched.
func (s *Service) FindDiet(item string) (Row, bool) {
	for _, row := range s.rows {
		if row.Category == CategoryDiet && row.Item == item {
			return row, true
		}
	}
	return Row{}, false
}

// Grouped organizes rows of one category by section label, preserving file
// order inside each section. Used by the dashboard and the PDF export.
func (s *Service) Grouped(category string) (sections []string, bySection map[string][]Row) {
	bySection = make(map[string][]Row)
	for _, row := range s.rows {
		if row.Category != category {
			continue
		}
		if _, seen := bySection[row.Section]; !seen {
			sections = append(sections, row.Section)
		}
		bySection[row.Section] = append(bySection[row.Section], row)
	}
	return sections, bySection
}
