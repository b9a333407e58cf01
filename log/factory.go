package log

import (
	"fmt"
	"io"
	"io/ioutil"
	stdlog "log"
	"os"

	"github.com/bketelsen/logr"
	"github.com/corvus-ch/amqp-header-mapper/config"
	log "github.com/corvus-ch/logr/std"
)

// NewFromConfig crates a logger according to the given config.
// In verbose mode, both the info and the error log are also written to out and
// the V(1) level is enabled.
func NewFromConfig(cfg *config.Config, out io.Writer) (logr.Logger, error) {
	errW, err := newWriter(cfg.Logs.Error, cfg.IsVerbose(), out)
	if err != nil {
		return nil, fmt.Errorf("failed creating error log: %s", err)
	}

	outW, err := newWriter(cfg.Logs.Info, cfg.IsVerbose(), out)
	if err != nil {
		return nil, fmt.Errorf("failed creating info log: %s", err)
	}

	infL := stdlog.New(outW, "", flag(cfg.WithDateTime()))
	errL := stdlog.New(errW, "", flag(cfg.WithDateTime()))

	return log.New(verbosity(cfg.IsVerbose()), errL, infL), nil
}

// newWriter creates a new writer for the given file.
// If verbose is set to true, in addition to the file, the logger will also write to writer passed as the out argument.
// Without file and verbose mode, everything gets discarded.
func newWriter(filename string, verbose bool, out io.Writer) (io.Writer, error) {
	writers := make([]io.Writer, 0)
	if len(filename) > 0 {
		file, err := os.OpenFile(filename, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0660)

		if err != nil {
			return nil, err
		}

		writers = append(writers, file)
	}

	if verbose {
		writers = append(writers, out)
	}

	if len(writers) == 0 {
		return ioutil.Discard, nil
	}

	return io.MultiWriter(writers...), nil
}

func flag(dateTime bool) int {
	if dateTime {
		return stdlog.LstdFlags
	}

	return 0
}

func verbosity(verbose bool) int {
	if verbose {
		return 1
	}

	return 0
}
