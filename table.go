package bench

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var errNoColumns = errors.New("no columns to parse")

// Table is a parsed CSV file. All columns are loaded as strings, values are
// interpreted only when requested.
type Table struct {
	df dataframe.DataFrame
}

// NewTable creates a table from string cells. Rows shorter than columns are
// padded with empty cells, longer rows are an error.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errNoColumns
	}
	cols := make([]series.Series, len(columns))
	for j, name := range columns {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = row[j]
			}
		}
		cols[j] = series.New(cells, series.String, name)
	}
	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", i+1, len(columns), len(row))
		}
	}
	t := &Table{df: dataframe.New(cols...)}
	return t, t.df.Err
}

// ReadCSV parses r as comma-separated data. The first record names the columns.
// Short rows are padded, repeated column names get a ".N" suffix.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errNoColumns
	} else if err != nil {
		return nil, err
	}
	if len(header) == 1 && strings.TrimSpace(header[0]) == "" {
		return nil, errNoColumns
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(rec))
		}
		rows = append(rows, rec)
	}
	return NewTable(uniqueColumns(header), rows)
}

// uniqueColumns trims column names and renames repeated ones to name.1, name.2, ...
func uniqueColumns(header []string) []string {
	cols := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		unique := name
		for n := 1; seen[unique]; n++ {
			unique = fmt.Sprintf("%s.%d", name, n)
		}
		seen[unique] = true
		cols[i] = unique
	}
	return cols
}

// WithColumn sets column name to value in every row, appending the column
// if the table doesn't have it yet.
func (t *Table) WithColumn(name, value string) *Table {
	cells := make([]string, t.Len())
	for i := range cells {
		cells[i] = value
	}
	t.df = t.df.Mutate(series.New(cells, series.String, name))
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.df.Names()
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, c := range t.df.Names() {
		if c == name {
			return i
		}
	}
	return -1
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.df.Nrow()
}

// Value returns the cell of the named column in row i.
// Missing columns and missing cells yield the empty string.
func (t *Table) Value(i int, name string) string {
	col := t.Column(name)
	if col < 0 {
		return ""
	}
	e := t.df.Elem(i, col)
	if e.IsNA() {
		return ""
	}
	return e.String()
}

// Float parses the cell of the named column in row i.
// Anything that isn't a number is NaN.
func (t *Table) Float(i int, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(t.Value(i, name)), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Concat stacks tables in the given order. The result has the union of all
// columns, ordered by first appearance. Cells of columns a table lacks are missing.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, errNoColumns
	}
	df := tables[0].df
	for _, t := range tables[1:] {
		df = df.Concat(t.df)
	}
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df}, nil
}

// WriteCSV writes the table, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	return t.df.WriteCSV(w)
}
