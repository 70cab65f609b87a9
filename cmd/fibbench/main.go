// fibbench times F(35) by naive recursion and F(1000) by iteration, and
// prints one line for each. F(1000) exceeds int64 and the printed value is
// the wrapped result.
package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/LangOneOrg/langone-releases/bench"
	"github.com/LangOneOrg/langone-releases/pprof"
)

func main() {
	pprof.RegisterSignalHandlers()

	if err := run(os.Stdout); err != nil {
		log.WithField("err", err).Fatal("failed to write report")
	}
}

func run(w io.Writer) error {
	return bench.Report(w, bench.Run(bench.DefaultConfig()))
}
