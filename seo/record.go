// Package seo keeps a document's search and social metadata in step with the
// page being shown.
//
// The work is split in two: Plan is a pure function from a path and the
// static tables to an ordered list of write instructions, and Head applies
// those instructions to a parsed HTML document.
package seo

import "strings"

// FallbackPath is the table key whose record serves every unmapped path.
const FallbackPath = "/"

const (
	DefaultSiteURL  = "https://vue-vs-react.netlify.app"
	DefaultSiteName = "Vue vs React - Interactive Comparison"

	// defaultImagePath is appended to the site URL when a record has no
	// social preview image.
	defaultImagePath = "/vite.svg"
	siteDescription  = "Interactive comparison of React and Vue frameworks"
)

// Record is the metadata advertised for one path.
type Record struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords" json:"keywords"`
	OGImage     string `yaml:"og_image,omitempty" json:"og_image,omitempty"`
}

// Table maps exact paths to records. It must contain FallbackPath.
type Table map[string]Record

// Lookup returns the record for path, or the fallback record.
func (t Table) Lookup(path string) Record {
	if r, ok := t[path]; ok {
		return r
	}
	return t[FallbackPath]
}

// Site identifies the deployed site.
type Site struct {
	URL  string
	Name string
}

// WithDefaults fills empty fields with the literal defaults.
func (s Site) WithDefaults() Site {
	if s.URL == "" {
		s.URL = DefaultSiteURL
	}
	if s.Name == "" {
		s.Name = DefaultSiteName
	}
	return s
}

// Abs returns the absolute URL of path on the site.
func (s Site) Abs(path string) string {
	return strings.TrimRight(s.URL, "/") + path
}
