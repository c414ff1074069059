package browser

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/snylonue/nescookie"
	"github.com/snylonue/nescookie/pkg/logger"
)

// Importer reads browser cookie stores into nescookie jars. The zero
// value is not usable; construct with NewImporter.
type Importer struct {
	log logger.Logger
}

// NewImporter creates an importer that logs through l. A nil l disables
// logging.
func NewImporter(l logger.Logger) *Importer {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Importer{log: l}
}

// Import reads the cookie store at path into a fresh jar. The format is
// detected from the file itself.
func (im *Importer) Import(path string) (*nescookie.CookieJar, *Source, error) {
	b := nescookie.NewCookieJarBuilder()
	source, err := im.Into(b, path)
	if err != nil {
		return nil, nil, err
	}
	return b.Finish(), source, nil
}

// Into imports the cookie store at path into an existing builder,
// extending whatever the builder already holds. The import is atomic: a
// failed import appends nothing to b. Netscape text stores go through
// the core parser and keep its strict whole-parse failure semantics;
// SQLite stores are safe-copied before opening.
func (im *Importer) Into(b *nescookie.CookieJarBuilder, path string) (*Source, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	source := &Source{
		Path:    path,
		Format:  format,
		Browser: format.String(),
	}

	// Import into a scratch builder so a mid-store failure leaves the
	// caller's builder untouched.
	scratch := nescookie.NewCookieJarBuilder()
	switch format {
	case FormatFirefox:
		err = im.importCopied(path, scratch, importFirefox)
	case FormatChrome:
		dec := newChromeDecryptor()
		err = im.importCopied(path, scratch, func(copied string, b *nescookie.CookieJarBuilder) (int, error) {
			return importChrome(copied, b, dec, im.log)
		})
	case FormatNetscape:
		err = scratch.Open(path)
	default:
		err = fmt.Errorf("unsupported cookie store format at %s", path)
	}
	if err != nil {
		return nil, err
	}

	imported := scratch.Finish().All()
	for _, c := range imported {
		b.Add(c)
	}

	im.log.Info("imported %d cookies from %s store at %s", len(imported), source.Browser, path)
	return source, nil
}

// importCopied safe-copies a SQLite store and runs the given importer on
// the copy.
func (im *Importer) importCopied(path string, b *nescookie.CookieJarBuilder, f func(string, *nescookie.CookieJarBuilder) (int, error)) error {
	tempDir, cleanup, err := safeCopy(path)
	if err != nil {
		return err
	}
	defer cleanup()

	copied := filepath.Join(tempDir, filepath.Base(path))
	_, err = f(copied, b)
	return err
}

// Detect scans known browser cookie store locations in priority order and
// imports the first store that can be read.
func (im *Importer) Detect() (*nescookie.CookieJar, *Source, error) {
	for _, store := range FindStores() {
		jar, source, err := im.Import(store.Path)
		if err != nil {
			im.log.Warning("skipping %s store at %s: %v", store.Browser, store.Path, err)
			continue
		}
		source.Browser = store.Browser
		return jar, source, nil
	}
	return nil, nil, errors.New("no supported browser cookie store found (tried Firefox, LibreWolf, Chrome, Chromium, Edge, Brave)")
}
