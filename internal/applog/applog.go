// Package applog routes the standard logger to a rotating file when debug
// logging is requested.
package applog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Dir      = "logs"
	FileName = "portfoliofx.log"
	MaxSize  = 10 * 1024 * 1024
)

// Setup sends log output to Dir/FileName when debug is set, rotating the
// previous file aside once it exceeds MaxSize. Without debug the logger is
// left on stderr and nil is returned.
func Setup(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(os.Stderr)
		return nil, nil
	}
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(Dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(Dir, fmt.Sprintf("portfoliofx-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotating log file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
