// Package logging sets up the zerolog logger. The wizard owns the terminal,
// so output goes to a file instead of stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDirName  = "syncwizard"
	logFileName = "syncwizard.log"
	timeFormat  = "15:04:05.000"
)

var osUserCacheDir = os.UserCacheDir

// DefaultPath is <user cache dir>/syncwizard/syncwizard.log.
func DefaultPath() (string, error) {
	base, err := osUserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, logDirName, logFileName), nil
}

// Open creates a logger appending to path. The returned closer releases the file.
func Open(path string, debug bool) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, debug), file, nil
}

func New(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timeFormat,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
