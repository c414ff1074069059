package browser

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// netscapeHeaders are the header comments browsers and curl write at the
// top of exported cookie files.
var netscapeHeaders = []string{
	"# Netscape HTTP Cookie File",
	"# HTTP Cookie File",
}

// DetectFormat determines the format of the cookie store at path.
// SQLite files are probed for the Firefox or Chromium schema; anything
// else is accepted as Netscape text when it starts with a known header,
// a comment, or a 7-field cookie line.
func DetectFormat(path string) (Format, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cookie store not found: %s", path)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("%s is a directory, expected a cookie store file", path)
	}
	if info.Size() == 0 {
		return FormatUnknown, fmt.Errorf("cookie store at %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open cookie store: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot read cookie store: %w", err)
	}
	buf = buf[:n]

	if n >= len(sqliteMagic) && string(buf[:len(sqliteMagic)]) == string(sqliteMagic) {
		return detectSQLiteFormat(path)
	}

	if looksLikeNetscape(buf) {
		return FormatNetscape, nil
	}

	return FormatUnknown, fmt.Errorf("unsupported cookie store format at %s", path)
}

// looksLikeNetscape checks the first line of head for a Netscape header,
// a comment marker, or a tab-separated cookie line.
func looksLikeNetscape(head []byte) bool {
	firstLine := string(head)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	for _, h := range netscapeHeaders {
		if firstLine == h {
			return true
		}
	}
	if strings.HasPrefix(firstLine, "#") {
		return true
	}
	// A bare cookie line: 7 tab-separated fields.
	return strings.Count(firstLine, "\t") == 6
}

// detectSQLiteFormat opens the SQLite file read-only and checks which
// cookie table it carries.
func detectSQLiteFormat(path string) (Format, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open SQLite database: %w", err)
	}
	defer db.Close()

	var tableName string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='moz_cookies'`).Scan(&tableName)
	if err == nil {
		return FormatFirefox, nil
	}

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cookies'`).Scan(&tableName)
	if err == nil {
		return FormatChrome, nil
	}

	return FormatUnknown, fmt.Errorf("unsupported cookie database schema at %s", path)
}
