package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/LangOneOrg/langone-releases/bench"
	"github.com/LangOneOrg/langone-releases/pprof"
)

func main() {
	if pprof.ToggleProfiler() == "" {
		log.Fatal("could not start profiler")
	}

	var results = bench.Run(bench.DefaultConfig())
	var path = pprof.ToggleProfiler()

	if err := bench.Report(os.Stdout, results); err != nil {
		log.WithField("err", err).Fatal("failed to write report")
	}
	log.WithField("path", path).Info("wrote CPU profile")
}
