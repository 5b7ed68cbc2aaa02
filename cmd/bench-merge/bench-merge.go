package main

import (
	"flag"
	"log"
	"os"

	bench "github.com/fjl/weekdate-bench"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "directory containing the analysis files")
		sources = flag.String("sources", "", `input files as "file=label;file=label" (default: the six compiler analyses)`)

		srcs = bench.DefaultSources
		err  error
	)
	flag.Parse()
	log.SetFlags(0)

	if *sources != "" {
		if srcs, err = bench.ParseSources(*sources); err != nil {
			log.Fatal("-sources: ", err)
		}
	}
	all, failed, err := bench.Merge(bench.LoadAll(*dir, srcs))
	for _, r := range failed {
		log.Printf("can't load %s: %v", r.File, r.Err)
	}
	if err != nil {
		log.Fatal(err)
	}
	if all.Len() == 0 {
		log.Print(bench.ErrNoData)
		return
	}
	if err := all.WriteCSV(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
