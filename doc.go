// Package nescookie parses Netscape/Mozilla-format cookie files — the
// tab-separated "cookies.txt" format produced by curl, wget, and browser
// export tools — into an in-memory CookieJar keyed by domain.
//
// Parsing is strict: the first malformed line aborts the whole parse and
// no partial jar is returned. Blank lines and lines starting with # are
// skipped, except for the #HttpOnly_ prefix, which marks a regular cookie
// line whose cookie carries the HttpOnly attribute.
//
// The browser subpackage builds on this package to import cookies from
// Firefox and Chrome SQLite stores.
package nescookie
