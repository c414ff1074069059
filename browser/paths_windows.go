//go:build windows

package browser

import (
	"os"
	"path/filepath"
)

// chromiumSpec builds a Chromium-family spec with the conventional
// Network/Cookies and legacy Cookies locations under base.
func chromiumSpec(name, base string) browserSpec {
	return browserSpec{
		Name: name,
		CookiePaths: []string{
			filepath.Join(base, "Network", "Cookies"),
			filepath.Join(base, "Cookies"),
		},
	}
}

// browserSpecsForEnv returns browser specs built from the given
// %LOCALAPPDATA% and %APPDATA% values. This is the testable variant;
// browserSpecs calls it with the real environment.
func browserSpecsForEnv(localAppData, appData string) []browserSpec {
	return []browserSpec{
		{Name: "Firefox", ProfilesIniPaths: []string{
			filepath.Join(appData, "Mozilla", "Firefox", "profiles.ini"),
		}},
		{Name: "LibreWolf", ProfilesIniPaths: []string{
			filepath.Join(appData, "LibreWolf", "profiles.ini"),
		}},
		chromiumSpec("Chrome", filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default")),
		chromiumSpec("Chromium", filepath.Join(localAppData, "Chromium", "User Data", "Default")),
		chromiumSpec("Edge", filepath.Join(localAppData, "Microsoft", "Edge", "User Data", "Default")),
		chromiumSpec("Brave", filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data", "Default")),
	}
}

// browserSpecs returns browser specs from the real Windows environment.
func browserSpecs() []browserSpec {
	return browserSpecsForEnv(os.Getenv("LOCALAPPDATA"), os.Getenv("APPDATA"))
}
