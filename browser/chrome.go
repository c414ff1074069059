package browser

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/snylonue/nescookie"
	"github.com/snylonue/nescookie/pkg/logger"
	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT
// epoch (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01). Chrome stores 0 for
// session cookies, which maps back to 0.
func chromeToUnix(chromeUSec int64) int64 {
	if chromeUSec == 0 {
		return 0
	}
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// importChrome reads every row of a Chromium Cookies database into the
// builder. Plaintext values are used as-is; encrypted values are decrypted
// through dec where the platform supports it, and rows that cannot be
// decrypted are skipped with a warning.
func importChrome(dbPath string, b *nescookie.CookieJarBuilder, dec *chromeDecryptor, log logger.Logger) (int, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return 0, fmt.Errorf("cannot open Chrome cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
        SELECT name, value, encrypted_value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        ORDER BY rowid ASC
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to query Chrome cookies: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			name, value, hostKey, path string
			encryptedValue             []byte
			expiresUTC                 int64
			isSecure, isHttpOnly       int
		)
		if err := rows.Scan(&name, &value, &encryptedValue, &hostKey, &path, &expiresUTC, &isSecure, &isHttpOnly); err != nil {
			return count, fmt.Errorf("failed to scan Chrome cookie row: %w", err)
		}

		if value == "" && len(encryptedValue) > 0 {
			plain, err := dec.decrypt(encryptedValue)
			if err != nil {
				log.Warning("skipping encrypted cookie %q for %s: %v", name, hostKey, err)
				continue
			}
			value = plain
		}

		b.Add(nescookie.Cookie{
			Domain:            hostKey,
			IncludeSubdomains: strings.HasPrefix(hostKey, "."),
			Path:              path,
			Secure:            isSecure != 0,
			Expiry:            chromeToUnix(expiresUTC),
			Name:              name,
			Value:             value,
			HttpOnly:          isHttpOnly != 0,
		})
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("failed to iterate Chrome cookie rows: %w", err)
	}

	return count, nil
}
