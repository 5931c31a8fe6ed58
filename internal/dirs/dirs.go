// Package dirs resolves where mnfnss keeps its ephemeral runtime files.
package dirs

import (
	"os"
	"os/user"
	"path/filepath"
)

// RuntimeDir returns the default directory for launch descriptors.
// Priority: $XDG_RUNTIME_DIR/mnfnss > /run/user/$UID/mnfnss >
// $TMPDIR/mnfnss-$USER. The configuration layer may override the whole
// resolution with an explicit directory.
func RuntimeDir() string {
	if base := os.Getenv("XDG_RUNTIME_DIR"); base != "" {
		return filepath.Join(base, "mnfnss")
	}

	if u, err := user.Current(); err == nil {
		run := filepath.Join("/run/user", u.Uid)
		if info, err := os.Stat(run); err == nil && info.IsDir() {
			return filepath.Join(run, "mnfnss")
		}
	}

	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	return filepath.Join(os.TempDir(), "mnfnss-"+username)
}

// Ensure creates dir with owner-only permissions if needed and returns it.
// An empty dir selects RuntimeDir.
func Ensure(dir string) (string, error) {
	if dir == "" {
		dir = RuntimeDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
