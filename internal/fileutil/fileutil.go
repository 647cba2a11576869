// Package fileutil holds small file helpers shared by configuration lookup,
// the CLI and tests.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for files idstyle writes
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// IsRegular reports whether path names an existing regular file. Symbolic
// links are followed.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
