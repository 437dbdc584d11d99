// pkg/fileops/append.go

package fileops

import (
	"os"

	cerr "github.com/cockroachdb/errors"
)

// AppendLine appends line plus a trailing newline to the file at path,
// creating it with 0600 permissions if absent. The handle is closed on every
// exit path; a close error is only surfaced when the write itself succeeded.
func AppendLine(path, line string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return cerr.Wrapf(err, "open %s for append", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = cerr.Wrapf(closeErr, "close %s", path)
		}
	}()

	if _, err = f.WriteString(line + "\n"); err != nil {
		return cerr.Wrapf(err, "write to %s", path)
	}
	return nil
}
