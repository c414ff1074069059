package browser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fpath := filepath.Join(dir, name)
	if err := os.WriteFile(fpath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return fpath
}

func TestDetectFormat_NetscapeHeader(t *testing.T) {
	dir := t.TempDir()
	fpath := writeFile(t, dir, "cookies.txt", "# Netscape HTTP Cookie File\n.example.com\tTRUE\t/\tFALSE\t0\tsid\tabc\n")

	format, err := DetectFormat(fpath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatNetscape {
		t.Errorf("expected FormatNetscape, got %v", format)
	}
}

func TestDetectFormat_HeaderlessNetscape(t *testing.T) {
	dir := t.TempDir()
	fpath := writeFile(t, dir, "cookies.txt", ".example.com\tTRUE\t/\tFALSE\t0\tsid\tabc\n")

	format, err := DetectFormat(fpath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatNetscape {
		t.Errorf("expected FormatNetscape for a bare cookie line, got %v", format)
	}
}

func TestDetectFormat_Firefox(t *testing.T) {
	dir := t.TempDir()
	dbPath := createFirefoxFixture(t, dir, nil)

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatFirefox {
		t.Errorf("expected FormatFirefox, got %v", format)
	}
}

func TestDetectFormat_Chrome(t *testing.T) {
	dir := t.TempDir()
	dbPath := createChromeFixture(t, dir, nil)

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatChrome {
		t.Errorf("expected FormatChrome, got %v", format)
	}
}

func TestDetectFormat_UnknownBlob(t *testing.T) {
	dir := t.TempDir()
	fpath := writeFile(t, dir, "blob.bin", "\x7fELF not a cookie store at all")

	if _, err := DetectFormat(fpath); err == nil {
		t.Error("expected error for unknown blob")
	}
}

func TestDetectFormat_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	fpath := writeFile(t, dir, "empty", "")

	if _, err := DetectFormat(fpath); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestDetectFormat_Directory(t *testing.T) {
	if _, err := DetectFormat(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestDetectFormat_MissingFile(t *testing.T) {
	if _, err := DetectFormat("/no/such/store"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormat_String(t *testing.T) {
	cases := map[Format]string{
		FormatFirefox:  "Firefox",
		FormatChrome:   "Chrome",
		FormatNetscape: "Netscape",
		FormatUnknown:  "Unknown",
	}
	for format, want := range cases {
		if format.String() != want {
			t.Errorf("format %d: expected %q, got %q", int(format), want, format.String())
		}
	}
}
