package nescookie

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// httpOnlyPrefix marks comment lines that curl and wget use to persist
// the HttpOnly attribute of a cookie.
const httpOnlyPrefix = "#HttpOnly_"

// Parse parses Netscape cookie file content into a new CookieJar.
// The first malformed line aborts the parse with a *ParseError carrying
// that line's 1-based number; no partial jar is returned.
func Parse(text string) (*CookieJar, error) {
	b := NewCookieJarBuilder()
	if err := b.Parse(text); err != nil {
		return nil, err
	}
	return b.Finish(), nil
}

// ParseReader reads r to completion and parses the content as a Netscape
// cookie file. Read failures surface as a *ParseError of KindIO.
func ParseReader(r io.Reader) (*CookieJar, error) {
	b := NewCookieJarBuilder()
	if err := b.ParseReader(r); err != nil {
		return nil, err
	}
	return b.Finish(), nil
}

// Open reads the Netscape cookie file at path and parses it. A missing or
// unreadable file surfaces as a *ParseError of KindIO.
func Open(path string) (*CookieJar, error) {
	return OpenFs(afero.NewOsFs(), path)
}

// OpenFs is Open against an arbitrary afero filesystem.
func OpenFs(fsys afero.Fs, path string) (*CookieJar, error) {
	b := NewCookieJarBuilder()
	if err := b.OpenFs(fsys, path); err != nil {
		return nil, err
	}
	return b.Finish(), nil
}

// parseLines runs the line algorithm over the whole input and returns the
// parsed cookies in file order. It never exposes partial results: callers
// append to a jar only after the entire input parsed cleanly.
func parseLines(text string) ([]Cookie, error) {
	if !utf8.ValidString(text) {
		return nil, decodeError()
	}

	var cookies []Cookie
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")

		// Blank and comment detection tolerates surrounding whitespace;
		// the fields of a cookie line are split verbatim, so an empty
		// trailing value survives.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		httpOnly := false
		if strings.HasPrefix(trimmed, httpOnlyPrefix) {
			// Strip only leading whitespace and the prefix, so the rest of
			// the line stays as verbatim as a plain cookie line.
			httpOnly = true
			line = strings.TrimLeftFunc(line, unicode.IsSpace)[len(httpOnlyPrefix):]
		} else if strings.HasPrefix(trimmed, "#") {
			continue
		}

		c, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		c.HttpOnly = httpOnly
		cookies = append(cookies, c)
	}
	return cookies, nil
}

// parseLine splits a single non-blank, non-comment line into the 7 fixed
// fields: domain, include-subdomains flag, path, secure flag, expiry,
// name, value. num is the 1-based line number for error reporting.
func parseLine(line string, num int) (Cookie, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 7 {
		return Cookie{}, lineError(KindMalformedLine, num, line)
	}

	includeSubdomains, ok := parseFlag(fields[1])
	if !ok {
		return Cookie{}, lineError(KindInvalidFlag, num, line)
	}
	secure, ok := parseFlag(fields[3])
	if !ok {
		return Cookie{}, lineError(KindInvalidFlag, num, line)
	}
	expiry, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Cookie{}, lineError(KindInvalidExpiry, num, line)
	}

	return Cookie{
		Domain:            fields[0],
		IncludeSubdomains: includeSubdomains,
		Path:              fields[2],
		Secure:            secure,
		Expiry:            expiry,
		Name:              fields[5],
		Value:             fields[6],
	}, nil
}

// parseFlag parses the case-sensitive literal TRUE or FALSE.
func parseFlag(s string) (value, ok bool) {
	switch s {
	case "TRUE":
		return true, true
	case "FALSE":
		return false, true
	}
	return false, false
}
