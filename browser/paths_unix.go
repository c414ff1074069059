//go:build unix

package browser

import (
	"os"
	"path/filepath"
	"runtime"
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

// browserSpecsForHome returns browser specs rooted at the given home
// directory. This is the testable variant; browserSpecs calls it with the
// real home.
func browserSpecsForHome(homeDir string) []browserSpec {
	if runtime.GOOS == "darwin" {
		appSupport := filepath.Join(homeDir, "Library", "Application Support")
		return []browserSpec{
			{Name: "Firefox", ProfilesIniPaths: []string{
				filepath.Join(appSupport, "Firefox", "profiles.ini"),
			}},
			{Name: "LibreWolf", ProfilesIniPaths: []string{
				filepath.Join(appSupport, "librewolf", "profiles.ini"),
			}},
			chromiumSpec("Chrome", filepath.Join(appSupport, "Google", "Chrome", "Default")),
			chromiumSpec("Chromium", filepath.Join(appSupport, "Chromium", "Default")),
			chromiumSpec("Edge", filepath.Join(appSupport, "Microsoft Edge", "Default")),
			chromiumSpec("Brave", filepath.Join(appSupport, "BraveSoftware", "Brave-Browser", "Default")),
		}
	}

	config := filepath.Join(homeDir, ".config")
	return []browserSpec{
		{Name: "Firefox", ProfilesIniPaths: []string{
			filepath.Join(homeDir, ".mozilla", "firefox", "profiles.ini"),
			filepath.Join(homeDir, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini"),
		}},
		{Name: "LibreWolf", ProfilesIniPaths: []string{
			filepath.Join(homeDir, ".librewolf", "profiles.ini"),
		}},
		chromiumSpec("Chrome", filepath.Join(config, "google-chrome", "Default")),
		chromiumSpec("Chromium", filepath.Join(config, "chromium", "Default")),
		chromiumSpec("Edge", filepath.Join(config, "microsoft-edge", "Default")),
		chromiumSpec("Brave", filepath.Join(config, "BraveSoftware", "Brave-Browser", "Default")),
	}
}

// browserSpecs returns browser specs rooted at the real user home directory.
func browserSpecs() []browserSpec {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return browserSpecsForHome(homeDir)
}
