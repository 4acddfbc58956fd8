package seo

import "fmt"

// Kind identifies what a Write touches.
type Kind int

const (
	KindTitle Kind = iota
	KindMeta
	KindLink
	KindStructuredData
)

var kindNames = [...]string{"title", "meta", "link", "structured-data"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes the kind by name so instruction lists read well as JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("seo: unknown write kind %q", b)
}

// Write is one metadata mutation. Meta and link writes are addressed by the
// (Attr, Key) pair, e.g. name="description" or rel="canonical".
type Write struct {
	Kind  Kind   `json:"kind"`
	Attr  string `json:"attr,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

// Selector returns the CSS selector addressing the element the write targets.
func (w Write) Selector() string {
	switch w.Kind {
	case KindTitle:
		return "title"
	case KindMeta:
		return fmt.Sprintf(`meta[%s="%s"]`, w.Attr, w.Key)
	case KindLink:
		return fmt.Sprintf(`link[%s="%s"]`, w.Attr, w.Key)
	case KindStructuredData:
		return structuredDataSelector
	}
	return ""
}

// Plan returns the ordered writes that bring a document's metadata in line
// with path. It never fails: unmapped paths use the fallback record.
func Plan(path string, site Site, table Table) []Write {
	site = site.WithDefaults()
	rec := table.Lookup(path)
	image := rec.OGImage
	if image == "" {
		image = site.Abs(defaultImagePath)
	}
	pageURL := site.Abs(path)

	return []Write{
		{Kind: KindTitle, Value: rec.Title},
		nameMeta("description", rec.Description),
		nameMeta("keywords", rec.Keywords),

		propertyMeta("og:title", rec.Title),
		propertyMeta("og:description", rec.Description),
		propertyMeta("og:image", image),
		propertyMeta("og:url", pageURL),
		propertyMeta("og:type", "website"),

		propertyMeta("twitter:card", "summary_large_image"),
		propertyMeta("twitter:title", rec.Title),
		propertyMeta("twitter:description", rec.Description),
		propertyMeta("twitter:image", image),

		{Kind: KindLink, Attr: "rel", Key: "canonical", Value: pageURL},
		{Kind: KindStructuredData, Value: JSON(StructuredData(path, site))},
	}
}

func nameMeta(key, value string) Write {
	return Write{Kind: KindMeta, Attr: "name", Key: key, Value: value}
}

func propertyMeta(key, value string) Write {
	return Write{Kind: KindMeta, Attr: "property", Key: key, Value: value}
}
