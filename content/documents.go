package content

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a Markdown page with YAML front matter.
type Document struct {
	Slug       string
	Title      string
	Summary    string
	Order      int
	Difficulty string
	Body       string
}

type frontMatter struct {
	Title      string `yaml:"title"`
	Summary    string `yaml:"summary"`
	Order      int    `yaml:"order"`
	Difficulty string `yaml:"difficulty"`
}

// readDocuments parses every .md file in dir, ordered by front matter order
// then slug.
func readDocuments(fsys fs.FS, dir string) ([]Document, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("content: list %s: %w", dir, err)
	}
	var docs []Document
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		name := path.Join(dir, e.Name())
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		doc, err := parseDocument(slugFromFilename(e.Name()), string(b))
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Order != docs[j].Order {
			return docs[i].Order < docs[j].Order
		}
		return docs[i].Slug < docs[j].Slug
	})
	return docs, nil
}

// slugFromFilename drops the extension and an optional numeric ordering
// prefix: "01-components.md" becomes "components".
func slugFromFilename(name string) string {
	slug := strings.TrimSuffix(name, path.Ext(name))
	prefix, rest, ok := strings.Cut(slug, "-")
	if !ok || rest == "" {
		return slug
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return slug
		}
	}
	return rest
}

func parseDocument(slug, src string) (Document, error) {
	fm, body := splitFrontMatter(src)
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Document{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	title := strings.TrimSpace(front.Title)
	if title == "" {
		title = slug
	}
	return Document{
		Slug:       slug,
		Title:      title,
		Summary:    strings.TrimSpace(front.Summary),
		Order:      front.Order,
		Difficulty: strings.TrimSpace(front.Difficulty),
		Body:       body,
	}, nil
}

// splitFrontMatter separates a leading "---" delimited block from the body.
func splitFrontMatter(src string) (string, string) {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if !strings.HasPrefix(src, "---\n") {
		return "", src
	}
	rest := src[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", src
	}
	fm := rest[:end]
	body := rest[end+len("\n---"):]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return fm, strings.TrimLeft(body, "\n")
}
