// pkg/shared/version.go

package shared

import (
	"go.uber.org/zap"
)

// Version is stamped at build time via -ldflags; the default marks dev builds.
var Version = "0.1.0-dev"

// SafeSync flushes the global logger. Sync fails with EINVAL when stderr is
// a terminal; nothing actionable, so the error is dropped.
func SafeSync() {
	_ = zap.L().Sync()
}
