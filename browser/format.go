package browser

// Format identifies the on-disk format of a cookie store.
type Format int

const (
	// FormatUnknown means the store format could not be detected.
	FormatUnknown Format = 0
	// FormatFirefox means the store uses the Firefox moz_cookies SQLite schema.
	FormatFirefox Format = 1
	// FormatChrome means the store uses the Chromium cookies SQLite schema.
	FormatChrome Format = 2
	// FormatNetscape means the store is a Netscape tab-separated text file.
	FormatNetscape Format = 3
)

// String returns the conventional name for the format.
func (f Format) String() string {
	switch f {
	case FormatFirefox:
		return "Firefox"
	case FormatChrome:
		return "Chrome"
	case FormatNetscape:
		return "Netscape"
	}
	return "Unknown"
}

// Source describes where a jar was imported from. Only the path and
// detected format are recorded, never cookie contents.
type Source struct {
	// Path is the filesystem path of the cookie store.
	Path string
	// Format is the detected store format.
	Format Format
	// Browser is the browser name when the store was found by discovery,
	// otherwise the format name.
	Browser string
}
