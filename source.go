package bench

import (
	"fmt"
	"strings"
)

// Source is one input file and the label its rows are tagged with.
type Source struct {
	File  string
	Label string
}

// Sources is an ordered list of inputs. The order determines the
// order of rows in the merged table.
type Sources []Source

// DefaultSources are the analysis files written by the week-date benchmark
// for each compiler and measurement mode.
var DefaultSources = Sources{
	{"clang_linux_benchmark_analysis.csv", "Clang (Linux)"},
	{"g++_linux_benchmark_analysis.csv", "G++ (Linux)"},
	{"mingw_win_benchmark_analysis.csv", "MinGW (Win, per-call)"},
	{"msvc_win_benchmark_analysis.csv", "MSVC (Win, per-call)"},
	{"time_mingw_win_benchmark_analysis.csv", "MinGW (Win, batch)"},
	{"time_msvc_win_benchmark_analysis.csv", "MSVC (Win, batch)"},
}

// Validate checks that files and labels are unique.
func (s Sources) Validate() error {
	files := make(map[string]bool, len(s))
	labels := make(map[string]bool, len(s))
	for _, src := range s {
		if src.File == "" {
			return fmt.Errorf("empty file name for label %q", src.Label)
		}
		if files[src.File] {
			return fmt.Errorf("duplicate file %q", src.File)
		}
		if labels[src.Label] {
			return fmt.Errorf("duplicate label %q", src.Label)
		}
		files[src.File], labels[src.Label] = true, true
	}
	return nil
}

// ParseSources parses a list of the form "file=label;file=label".
// Entries without a label are labeled with the file name.
func ParseSources(s string) (Sources, error) {
	var srcs Sources
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		file, label := entry, entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			file, label = strings.TrimSpace(entry[:i]), strings.TrimSpace(entry[i+1:])
		}
		srcs = append(srcs, Source{File: file, Label: label})
	}
	if len(srcs) == 0 {
		return nil, fmt.Errorf("no sources in %q", s)
	}
	return srcs, srcs.Validate()
}
