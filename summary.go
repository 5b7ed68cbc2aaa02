package bench

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

// DefaultOutput is the image written by Run unless configured otherwise.
const DefaultOutput = "benchmark_summary_charts.png"

// ErrNoData is returned by Run when no rows could be loaded.
var ErrNoData = errors.New("no data loaded")

// Config selects the inputs, the sort order of facets and the output of Run.
type Config struct {
	Dir          string // directory containing the source files
	Out          string // output image path
	Sources      Sources
	VersionOrder []string
	Chart        ChartOptions
	Verbose      bool
}

// DefaultConfig reads the default sources from the working directory.
func DefaultConfig() Config {
	return Config{
		Dir:          ".",
		Out:          DefaultOutput,
		Sources:      DefaultSources,
		VersionOrder: DefaultVersionOrder,
		Chart:        DefaultChartOptions,
	}
}

// Run loads all sources, merges them and saves the summary chart.
// Diagnostics go to logger, the final confirmation to stdout.
func Run(cfg Config, stdout io.Writer, logger *log.Logger) error {
	if err := cfg.Sources.Validate(); err != nil {
		return err
	}
	start := mononow()
	all, failed, err := Merge(LoadAll(cfg.Dir, cfg.Sources))
	for _, r := range failed {
		logger.Printf("can't load %s: %v", filepath.Join(cfg.Dir, r.File), r.Err)
	}
	if err != nil {
		return fmt.Errorf("can't merge tables: %w", err)
	}
	if all.Len() == 0 {
		logger.Print(ErrNoData)
		return ErrNoData
	}
	pp := Points(all)
	if cfg.Verbose {
		logger.Printf("loaded %d rows from %d files in %v", len(pp), len(cfg.Sources)-len(failed), mononow()-start)
		for _, p := range pp {
			logger.Print(p.Describe())
		}
	}

	start = mononow()
	ch, err := BuildChart(pp, cfg.VersionOrder, cfg.Chart)
	if err != nil {
		return fmt.Errorf("can't build chart: %w", err)
	}
	if err := ch.Save(cfg.Out); err != nil {
		return fmt.Errorf("can't save chart: %w", err)
	}
	if cfg.Verbose {
		logger.Printf("rendered %d panels, %d facets in %v", len(ch.Panels), len(ch.Versions), mononow()-start)
	}
	fmt.Fprintf(stdout, "charts saved to %s\n", cfg.Out)
	return nil
}

func mononow() time.Duration {
	return time.Duration(monotime.Now())
}
