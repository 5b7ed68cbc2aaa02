package bench

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

func mustTable(t *testing.T, columns []string, rows ...[]string) *Table {
	t.Helper()
	tab, err := NewTable(columns, rows)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

// cells returns all values of tab row by row.
func cells(tab *Table) [][]string {
	var out [][]string
	for i := 0; i < tab.Len(); i++ {
		var row []string
		for _, c := range tab.Columns() {
			row = append(row, tab.Value(i, c))
		}
		out = append(out, row)
	}
	return out
}

func TestReadCSV(t *testing.T) {
	in := "\xef\xbb\xbfВерсия,Среднее_нс\nOriginal,12.5\nV1_EarlyReturn,9\n"
	tab, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{VersionColumn, MeanColumn}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns: got %q, want %q", tab.Columns(), want)
	}
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}
	if v := tab.Value(1, VersionColumn); v != "V1_EarlyReturn" {
		t.Errorf("version of row 1: got %q", v)
	}
	if v := tab.Float(0, MeanColumn); v != 12.5 {
		t.Errorf("mean of row 0: got %v", v)
	}
	if v := tab.Float(0, P99Column); !math.IsNaN(v) {
		t.Errorf("missing column: got %v, want NaN", v)
	}
}

func TestReadCSVShortRows(t *testing.T) {
	in := "Версия,Среднее_нс,Медиана_нс\nOriginal,10,9\nV1_EarlyReturn,8\nV2_BitOps_\n"
	tab, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Original", "10", "9"},
		{"V1_EarlyReturn", "8", ""},
		{"V2_BitOps_", "", ""},
	}
	if got := cells(tab); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if v := tab.Float(1, MedianColumn); !math.IsNaN(v) {
		t.Errorf("padded cell: got %v, want NaN", v)
	}
}

func TestReadCSVDuplicateColumns(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("a,b,a,a\n1,2,3,4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "a.1", "a.2"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns: got %q, want %q", tab.Columns(), want)
	}
	if v := tab.Value(0, "a.1"); v != "3" {
		t.Errorf("a.1: got %q, want 3", v)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(testHeader))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 0 {
		t.Errorf("got %d rows, want 0", tab.Len())
	}
	if tab.Column(PeakRSSColumn) < 0 {
		t.Errorf("columns not loaded: %q", tab.Columns())
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"empty":    "",
		"blank":    "\n\n",
		"long row": "a,b\n1,2\n3,4,5\n",
		"quote":    "a,b\n\"1,2\n",
	}
	for name, in := range tests {
		if _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestWithColumn(t *testing.T) {
	tab := mustTable(t, []string{"a"}, []string{"1"}, []string{"2"})
	tab.WithColumn("src", "x")
	tab.WithColumn("src", "y")
	if want := []string{"a", "src"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns: got %q, want %q", tab.Columns(), want)
	}
	for i := 0; i < tab.Len(); i++ {
		if v := tab.Value(i, "src"); v != "y" {
			t.Errorf("row %d: got %q, want %q", i, v, "y")
		}
	}
}

func TestConcat(t *testing.T) {
	a := mustTable(t, []string{"v", "m"}, []string{"a1", "1"}, []string{"a2", "2"})
	b := mustTable(t, []string{"m", "x"}, []string{"3", "b1"})
	got, err := Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v", "m", "x"}; !reflect.DeepEqual(got.Columns(), want) {
		t.Errorf("columns: got %q, want %q", got.Columns(), want)
	}
	want := [][]string{{"a1", "1", ""}, {"a2", "2", ""}, {"", "3", "b1"}}
	if !reflect.DeepEqual(cells(got), want) {
		t.Errorf("got %q, want %q", cells(got), want)
	}
}

func TestWriteCSV(t *testing.T) {
	tab := mustTable(t, []string{"v", "label"}, []string{"Original", "MinGW (Win, batch)"})
	var buf bytes.Buffer
	if err := tab.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "v,label\nOriginal,\"MinGW (Win, batch)\"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cells(back), cells(tab)) {
		t.Errorf("re-read table differs: %q", cells(back))
	}
}
