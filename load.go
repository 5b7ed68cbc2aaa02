package bench

import (
	"os"
	"path/filepath"
)

// LabelColumn is the column holding the source label in merged tables.
const LabelColumn = "Источник"

// LoadResult is the outcome of loading a single source.
// Exactly one of Table and Err is set.
type LoadResult struct {
	Source
	Table *Table
	Err   error
}

// LoadFile reads the file of src relative to dir and tags every row with src.Label.
func LoadFile(dir string, src Source) LoadResult {
	fd, err := os.Open(filepath.Join(dir, src.File))
	if err != nil {
		return LoadResult{Source: src, Err: err}
	}
	defer fd.Close()
	t, err := ReadCSV(fd)
	if err != nil {
		return LoadResult{Source: src, Err: err}
	}
	return LoadResult{Source: src, Table: t.WithColumn(LabelColumn, src.Label)}
}

// LoadAll loads all sources in order. It doesn't stop at failed files.
func LoadAll(dir string, srcs Sources) []LoadResult {
	results := make([]LoadResult, 0, len(srcs))
	for _, src := range srcs {
		results = append(results, LoadFile(dir, src))
	}
	return results
}

// Merge concatenates the tables of all successful results and returns the
// failed ones. The merged table is nil if nothing loaded.
func Merge(results []LoadResult) (*Table, []LoadResult, error) {
	var (
		tables []*Table
		failed []LoadResult
	)
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		tables = append(tables, r.Table)
	}
	if len(tables) == 0 {
		return nil, failed, nil
	}
	all, err := Concat(tables...)
	return all, failed, err
}
