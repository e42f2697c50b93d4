// Package logger configures the process-wide go-logging backend used by the
// huffenc driver.
package logger

import (
	"io"
	"strings"

	"github.com/op/go-logging"
)

// Format is the record layout written by every module.
const Format = "%{level:8s} %{module:-16s} | %{message}"

// Setup installs a leveled backend writing to w.  The level name is one of
// CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG, in any case.
func Setup(w io.Writer, prefix string, level string) (logging.LeveledBackend, error) {
	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		return nil, err
	}

	backend := logging.NewLogBackend(w, prefix, 0)
	formatter := logging.MustStringFormatter(Format)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return leveled, nil
}
