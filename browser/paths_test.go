package browser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfilesIni(t *testing.T, dir, content string) string {
	t.Helper()
	fpath := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(fpath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write profiles.ini: %v", err)
	}
	return fpath
}

func TestParseProfilesIni_InstallDefaultWins(t *testing.T) {
	dir := t.TempDir()
	ini := writeProfilesIni(t, dir, `[Install4F96D1932A9F858E]
Default=Profiles/abc.default-release
Locked=1

[Profile0]
Name=default
IsRelative=1
Path=Profiles/xyz.default
Default=1
`)

	got := parseProfilesIni(ini)
	want := filepath.Join(dir, "Profiles", "abc.default-release")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseProfilesIni_ProfileDefaultFallback(t *testing.T) {
	dir := t.TempDir()
	ini := writeProfilesIni(t, dir, `[Profile1]
Name=other
Path=Profiles/other

[Profile0]
Name=default
Path=Profiles/xyz.default
Default=1
`)

	got := parseProfilesIni(ini)
	want := filepath.Join(dir, "Profiles", "xyz.default")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseProfilesIni_NoDefault(t *testing.T) {
	dir := t.TempDir()
	ini := writeProfilesIni(t, dir, `[Profile0]
Name=default
Path=Profiles/xyz.default
`)

	if got := parseProfilesIni(ini); got != "" {
		t.Errorf("expected empty result without a default, got %q", got)
	}
}

func TestParseProfilesIni_MissingFile(t *testing.T) {
	if got := parseProfilesIni("/no/such/profiles.ini"); got != "" {
		t.Errorf("expected empty result for missing file, got %q", got)
	}
}

func TestFindStores_ResolvesExistingStoresInOrder(t *testing.T) {
	home := t.TempDir()

	// Firefox profile with a cookies.sqlite behind profiles.ini.
	ffDir := filepath.Join(home, "firefox")
	profileDir := filepath.Join(ffDir, "Profiles", "abc.default")
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeProfilesIni(t, ffDir, "[Profile0]\nPath=Profiles/abc.default\nDefault=1\n")
	writeFile(t, profileDir, "cookies.sqlite", "db")

	// Chromium-family store as a direct path.
	chromeDir := filepath.Join(home, "chrome", "Default", "Network")
	if err := os.MkdirAll(chromeDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, chromeDir, "Cookies", "db")

	specs := []browserSpec{
		{Name: "Firefox", ProfilesIniPaths: []string{filepath.Join(ffDir, "profiles.ini")}},
		{Name: "Ghost", CookiePaths: []string{filepath.Join(home, "missing", "Cookies")}},
		{Name: "Chrome", CookiePaths: []string{filepath.Join(chromeDir, "Cookies")}},
	}

	stores := findStores(specs)
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d: %v", len(stores), stores)
	}
	if stores[0].Browser != "Firefox" || stores[1].Browser != "Chrome" {
		t.Errorf("priority order not kept: %v", stores)
	}
	if filepath.Base(stores[0].Path) != "cookies.sqlite" {
		t.Errorf("unexpected firefox store path: %s", stores[0].Path)
	}
}

func TestFindStores_NoSpecs(t *testing.T) {
	if stores := findStores(nil); len(stores) != 0 {
		t.Errorf("expected no stores, got %v", stores)
	}
}
