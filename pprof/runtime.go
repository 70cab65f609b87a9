// Package pprof exposes runtime profiling of the benchmark through signals.
package pprof

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ProfileDir is where CPU profiles are written.
var ProfileDir = "/var/tmp"

// dump writes the heap and goroutine trace to |w|.
func dump(w io.Writer) {
	pprof.Lookup("heap").WriteTo(w, 1)
	pprof.Lookup("goroutine").WriteTo(w, 1)
}

// Global state for profiling.
var (
	profileMu     sync.Mutex
	profileWriter *bufio.Writer
	profileFile   *os.File
)

// ToggleProfiler starts and stops a long-running CPU profile using pprof. The
// profile is written to ${ProfileDir}/profile_${PID}_${TIMESTAMP}.pprof where
// TIMESTAMP represents the epoch time when the profiling session began. The
// path of the profile is returned, or "" if it could not be started.
func ToggleProfiler() string {
	profileMu.Lock()
	defer profileMu.Unlock()

	if profileWriter != nil {
		var name = profileFile.Name()

		pprof.StopCPUProfile()
		if err := profileWriter.Flush(); err != nil {
			log.WithFields(log.Fields{"err": err, "path": name}).Error("could not flush CPU profile")
		}
		profileFile.Close()
		profileWriter, profileFile = nil, nil

		log.WithField("path", name).Info("stopped CPU profiling")
		return name
	}

	var filename = filepath.Join(ProfileDir,
		fmt.Sprintf("profile_%d_%d.pprof", os.Getpid(), time.Now().Unix()))

	var f, err = os.Create(filename)
	if err != nil {
		log.WithField("err", err).Error("could not begin CPU profiling")
		return ""
	}
	var w = bufio.NewWriter(f)

	if err = pprof.StartCPUProfile(w); err != nil {
		log.WithField("err", err).Error("could not begin CPU profiling")
		f.Close()
		os.Remove(filename)
		return ""
	}
	profileWriter, profileFile = w, f

	log.WithField("path", filename).Info("started CPU profiling")
	return filename
}
