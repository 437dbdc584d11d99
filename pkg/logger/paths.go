// pkg/logger/paths.go

package logger

import (
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// FindWritableLogPath returns the per-user log file path, creating the state
// directory with owner-only permissions.
func FindWritableLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerr.Wrap(err, "resolve home directory")
	}
	dir := filepath.Join(home, ".genpass")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", cerr.Wrap(err, "create state directory")
	}
	return filepath.Join(dir, "genpass.log"), nil
}

// GetLogFileWriter opens the log file for appending with 0600 permissions.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, cerr.Wrap(err, "open log file")
	}
	return zapcore.AddSync(f), nil
}
