package manifest

// Field is one cell of a manifest row.
type Field struct {
	Column string
	Value  string
}

// Row is an ordered list of fields matching a mapper's Columns. Rows are built per export and
// never stored.
type Row []Field

// newRow lays values out in column order. Columns without a value are empty.
func newRow(columns []string, values map[string]string) Row {
	row := make(Row, len(columns))
	for i, column := range columns {
		row[i] = Field{Column: column, Value: values[column]}
	}
	return row
}

// Values returns the cell values in column order.
func (r Row) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// Value returns the value of column.
func (r Row) Value(column string) (string, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return "", false
}
