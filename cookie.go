package nescookie

// Cookie is a single record from a Netscape cookie file. Fields hold the
// file's values verbatim; no trimming, escaping, or validation is applied
// beyond what the line format requires. A Cookie is never modified after
// the parser constructs it.
type Cookie struct {
	// Domain is the cookie domain, possibly with a leading dot.
	Domain string
	// IncludeSubdomains reports whether the cookie applies to subdomains
	// of Domain rather than the exact host only.
	IncludeSubdomains bool
	// Path is the cookie path scope.
	Path string
	// Secure indicates the cookie should only be sent over HTTPS.
	Secure bool
	// Expiry is the expiration as a Unix timestamp. 0 means a session
	// cookie. The value is not evaluated against the clock.
	Expiry int64
	// Name is the cookie name.
	Name string
	// Value is the cookie value. SENSITIVE — never log.
	Value string
	// HttpOnly is set for cookies read from a #HttpOnly_ line or from a
	// browser store row with the HttpOnly attribute.
	HttpOnly bool
}
