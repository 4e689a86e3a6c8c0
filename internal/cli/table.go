package cli

// Table holds tabular report data for a Printer to render.
type Table struct {
	headers []string
	rows    [][]any
}

// NewTable returns an empty table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row of values. Values are rendered with fmt.Sprint.
func (t *Table) AddRow(values ...any) {
	t.rows = append(t.rows, values)
}
