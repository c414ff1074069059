//go:build !linux && !darwin

package browser

import (
	"fmt"
	"runtime"
)

const safeStorageIterations = 1

// safeStoragePassword reports that Chrome cookie decryption is not
// supported on this platform. Windows stores use DPAPI-bound keys that a
// cross-platform library cannot unwrap; plaintext rows still import.
func safeStoragePassword(version string) (string, error) {
	return "", fmt.Errorf("chrome cookie decryption is not supported on %s", runtime.GOOS)
}
