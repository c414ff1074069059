package browser

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/snylonue/nescookie"
	_ "modernc.org/sqlite"
)

// importFirefox reads every row of a Firefox cookies.sqlite database into
// the builder. dbPath should point at a safe copy, not an in-use store.
// Rows are read in insertion order so the jar mirrors the store.
func importFirefox(dbPath string, b *nescookie.CookieJarBuilder) (int, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return 0, fmt.Errorf("cannot open Firefox cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        ORDER BY id ASC
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to query Firefox cookies: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			name, value, host, path string
			expiry                  int64
			isSecure, isHttpOnly    int
		)
		if err := rows.Scan(&name, &value, &host, &path, &expiry, &isSecure, &isHttpOnly); err != nil {
			return count, fmt.Errorf("failed to scan Firefox cookie row: %w", err)
		}
		b.Add(nescookie.Cookie{
			Domain:            host,
			IncludeSubdomains: strings.HasPrefix(host, "."),
			Path:              path,
			Secure:            isSecure != 0,
			Expiry:            expiry,
			Name:              name,
			Value:             value,
			HttpOnly:          isHttpOnly != 0,
		})
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("failed to iterate Firefox cookie rows: %w", err)
	}

	return count, nil
}
