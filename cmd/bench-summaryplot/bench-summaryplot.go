package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	bench "github.com/fjl/weekdate-bench"
)

func main() {
	var (
		dir      = flag.String("dir", ".", "directory containing the analysis files")
		out      = flag.String("out", bench.DefaultOutput, "output image (png, jpg, tiff)")
		sources  = flag.String("sources", "", `input files as "file=label;file=label" (default: the six compiler analyses)`)
		versions = flag.String("versions", strings.Join(bench.DefaultVersionOrder, ","), "facet order of benchmark versions")
		width    = flag.String("width", "120pt", "width of a single facet")
		height   = flag.String("height", "200pt", "height of one panel")
		dpi      = flag.Int("dpi", bench.DefaultChartOptions.DPI, "image resolution")
		verbose  = flag.Bool("v", false, "log loaded rows and timings")

		cfg = bench.DefaultConfig()
		err error
	)
	flag.Parse()
	log.SetFlags(0)

	cfg.Dir, cfg.Out, cfg.Verbose = *dir, *out, *verbose
	cfg.Chart.DPI = *dpi
	if *sources != "" {
		if cfg.Sources, err = bench.ParseSources(*sources); err != nil {
			log.Fatal("-sources: ", err)
		}
	}
	cfg.VersionOrder = nil
	for _, v := range strings.Split(*versions, ",") {
		if v = strings.TrimSpace(v); v != "" {
			cfg.VersionOrder = append(cfg.VersionOrder, v)
		}
	}
	if cfg.Chart.FacetWidth, err = bench.ParseLength(*width); err != nil {
		log.Fatal("-width: ", err)
	}
	if cfg.Chart.RowHeight, err = bench.ParseLength(*height); err != nil {
		log.Fatal("-height: ", err)
	}

	err = bench.Run(cfg, os.Stdout, log.Default())
	if err != nil && !errors.Is(err, bench.ErrNoData) {
		log.Fatal(err)
	}
}
