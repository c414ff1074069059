package nescookie

import (
	"io"

	"github.com/spf13/afero"
)

// CookieJarBuilder accumulates parsed cookies into a jar — either a fresh
// one or an existing jar supplied via WithJar, which lets multiple parses
// merge into a single jar. The builder holds no state besides the jar;
// Finish hands the jar back.
//
// Each parse call is atomic: on error nothing is appended, so a seeded
// jar is never left with a partial parse in it.
type CookieJarBuilder struct {
	jar *CookieJar
}

// NewCookieJarBuilder returns a builder over a fresh empty jar.
func NewCookieJarBuilder() *CookieJarBuilder {
	return &CookieJarBuilder{jar: NewCookieJar()}
}

// WithJar returns a builder that appends parsed cookies into jar,
// extending its existing domain sequences.
func WithJar(jar *CookieJar) *CookieJarBuilder {
	return &CookieJarBuilder{jar: jar}
}

// Add appends a single cookie to the jar under its domain.
func (b *CookieJarBuilder) Add(c Cookie) {
	b.jar.add(c)
}

// Len returns the number of cookies accumulated so far.
func (b *CookieJarBuilder) Len() int {
	return b.jar.Len()
}

// Parse parses Netscape cookie file content and appends every cookie to
// the builder's jar. On error the jar is left untouched.
func (b *CookieJarBuilder) Parse(text string) error {
	cookies, err := parseLines(text)
	if err != nil {
		return err
	}
	for _, c := range cookies {
		b.jar.add(c)
	}
	return nil
}

// ParseReader reads r to completion and parses the content.
func (b *CookieJarBuilder) ParseReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return ioError(err)
	}
	return b.Parse(string(data))
}

// Open reads the file at path and parses it.
func (b *CookieJarBuilder) Open(path string) error {
	return b.OpenFs(afero.NewOsFs(), path)
}

// OpenFs is Open against an arbitrary afero filesystem. The file is read
// eagerly in one acquisition, so an I/O fault never surfaces mid-parse.
func (b *CookieJarBuilder) OpenFs(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return ioError(err)
	}
	return b.Parse(string(data))
}

// Finish returns the accumulated jar.
func (b *CookieJarBuilder) Finish() *CookieJar {
	return b.jar
}
