//go:build darwin

package browser

import "github.com/zalando/go-keyring"

// safeStorageIterations is Chromium's PBKDF2 iteration count on macOS.
const safeStorageIterations = 1003

// safeStoragePassword returns the Chrome Safe Storage secret from the
// macOS Keychain. Both v10 and v11 values are keyed from it.
func safeStoragePassword(version string) (string, error) {
	return keyring.Get("Chrome Safe Storage", "Chrome")
}
