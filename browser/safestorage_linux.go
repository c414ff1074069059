//go:build linux

package browser

import "github.com/zalando/go-keyring"

// safeStorageIterations is Chromium's PBKDF2 iteration count on Linux.
const safeStorageIterations = 1

// safeStoragePassword returns the Chrome Safe Storage secret for the
// given value version. v10 values use the hardcoded fallback secret
// Chromium applies when no keyring is available; v11 values use the
// password stored in the desktop keyring.
func safeStoragePassword(version string) (string, error) {
	if version == "v10" {
		return "peanuts", nil
	}
	return keyring.Get("Chrome Safe Storage", "Chrome")
}
