// Package browser imports cookies from browser cookie stores into a
// nescookie.CookieJar. It reads Firefox-family stores (moz_cookies
// SQLite), Chromium-family stores (cookies SQLite, with value decryption
// where the platform supports it), and Netscape text exports, which it
// hands to the core parser.
//
// Stores are imported structurally: every row becomes a cookie, with no
// expiration or domain filtering. SQLite files are copied to a temporary
// directory before opening so a running browser's locks are never
// contended. Cookie values are never logged.
package browser
