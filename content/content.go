// Package content holds the site's static tables: framework metrics, links,
// CDN URLs, animation timing, SEO records, sitemap entries, comparison
// topics, quiz questions, lessons and guides. Everything is embedded and
// parsed once; a Catalog is read-only after Load.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jezweb/vuevreact/quiz"
	"github.com/jezweb/vuevreact/seo"
)

//go:embed data/*.yaml lessons/*.md guides/*.md
var files embed.FS

// ErrNotFound is returned when a topic, lesson or guide does not exist.
var ErrNotFound = errors.New("content: not found")

// Frameworks compared by the site.
const (
	React = "react"
	Vue   = "vue"
)

// Metrics are the headline numbers shown for one framework.
type Metrics struct {
	Name               string `yaml:"name"`
	BundleSize         string `yaml:"bundle_size"`
	BundleSizeKB       int    `yaml:"bundle_size_kb"`
	GitHubStars        string `yaml:"github_stars"`
	GitHubStarsCount   int    `yaml:"github_stars_count"`
	InitialRenderMS    int    `yaml:"initial_render_ms"`
	MemoryUsage        string `yaml:"memory_usage"`
	NPMWeeklyDownloads string `yaml:"npm_weekly_downloads"`
	FirstRelease       int    `yaml:"first_release"`
	CurrentVersion     string `yaml:"current_version"`
}

// PerformanceTestConfig sizes the browser benchmarks on the performance page.
type PerformanceTestConfig struct {
	ListRenderingSize     int `yaml:"list_rendering_size"`
	RapidUpdatesPerSecond int `yaml:"rapid_updates_per_second"`
	RealDOMTestSize       int `yaml:"real_dom_test_size"`
	FPSTestDurationMS     int `yaml:"fps_test_duration_ms"`
	MemoryTestIterations  int `yaml:"memory_test_iterations"`
	StartupWarmupRuns     int `yaml:"startup_warmup_runs"`
	StartupRuns           int `yaml:"startup_runs"`
}

// LearningConfig configures the learning path.
type LearningConfig struct {
	MinutesPerLesson int               `yaml:"minutes_per_lesson"`
	DifficultyLevels map[string]string `yaml:"difficulty_levels"`
}

// Difficulty returns the display label for a difficulty key.
func (l LearningConfig) Difficulty(key string) string {
	if label, ok := l.DifficultyLevels[key]; ok {
		return label
	}
	return key
}

// Links are a framework's external references.
type Links struct {
	Official string `yaml:"official"`
	GitHub   string `yaml:"github"`
	NPM      string `yaml:"npm"`
	DevTools string `yaml:"devtools"`
}

// FeatureCardDelays staggers the feature cards.
type FeatureCardDelays struct {
	BaseMS      int `yaml:"base_ms"`
	IncrementMS int `yaml:"increment_ms"`
}

// AnimationDelays are entrance delays for the landing page.
type AnimationDelays struct {
	HeroTitleMS       int               `yaml:"hero_title_ms"`
	HeroSubtitleMS    int               `yaml:"hero_subtitle_ms"`
	HeroButtonsMS     int               `yaml:"hero_buttons_ms"`
	FeatureCards      FeatureCardDelays `yaml:"feature_cards"`
	ComparisonTableMS int               `yaml:"comparison_table_ms"`
}

// FeatureCard returns the delay for the i-th feature card.
func (a AnimationDelays) FeatureCard(i int) time.Duration {
	ms := a.FeatureCards.BaseMS + i*a.FeatureCards.IncrementMS
	return time.Duration(ms) * time.Millisecond
}

// ReactCDN lists the scripts a React playground document loads.
type ReactCDN struct {
	Production string `yaml:"production"`
	DOM        string `yaml:"dom"`
	Babel      string `yaml:"babel"`
}

// VueCDN lists the scripts a Vue playground document loads.
type VueCDN struct {
	Global string `yaml:"global"`
}

// CDNURLs are the playground script sources.
type CDNURLs struct {
	React ReactCDN `yaml:"react"`
	Vue   VueCDN   `yaml:"vue"`
}

// SitemapEntry is one statically listed sitemap path.
type SitemapEntry struct {
	Path       string `yaml:"path"`
	ChangeFreq string `yaml:"changefreq"`
	Priority   string `yaml:"priority"`
}

// Topic is one side-by-side code comparison.
type Topic struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	React   string `yaml:"react"`
	Vue     string `yaml:"vue"`
}

// Catalog is the parsed content set.
type Catalog struct {
	Metrics            map[string]Metrics
	Links              map[string]Links
	Performance        PerformanceTestConfig
	Learning           LearningConfig
	Animation          AnimationDelays
	CDN                CDNURLs
	SandboxPermissions []string
	PlaygroundSamples  map[string]string
	SEO                seo.Table
	Sitemap            []SitemapEntry
	Topics             []Topic
	Questions          []quiz.Question
	Lessons            []Document
	Guides             map[string]Document
}

// SandboxAttr returns the iframe sandbox attribute value.
func (c *Catalog) SandboxAttr() string {
	return strings.Join(c.SandboxPermissions, " ")
}

// Topic looks up a comparison topic by slug.
func (c *Catalog) Topic(slug string) (Topic, error) {
	for _, t := range c.Topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: topic %q", ErrNotFound, slug)
}

// Lesson looks up a lesson by slug.
func (c *Catalog) Lesson(slug string) (Document, error) {
	for _, l := range c.Lessons {
		if l.Slug == slug {
			return l, nil
		}
	}
	return Document{}, fmt.Errorf("%w: lesson %q", ErrNotFound, slug)
}

// Guide looks up a guide page by slug.
func (c *Catalog) Guide(slug string) (Document, error) {
	if g, ok := c.Guides[slug]; ok {
		return g, nil
	}
	return Document{}, fmt.Errorf("%w: guide %q", ErrNotFound, slug)
}

type frameworksFile struct {
	Metrics            map[string]Metrics    `yaml:"metrics"`
	Links              map[string]Links      `yaml:"links"`
	Performance        PerformanceTestConfig `yaml:"performance"`
	Learning           LearningConfig        `yaml:"learning"`
	Animation          AnimationDelays       `yaml:"animation"`
	CDN                CDNURLs               `yaml:"cdn"`
	SandboxPermissions []string              `yaml:"sandbox_permissions"`
	PlaygroundSamples  map[string]string     `yaml:"playground_samples"`
}

// Load parses the embedded content.
func Load() (*Catalog, error) {
	return LoadFS(files)
}

// LoadFS parses content laid out like the embedded tree from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var fw frameworksFile
	if err := decodeYAML(fsys, "data/frameworks.yaml", &fw); err != nil {
		return nil, err
	}
	c := &Catalog{
		Metrics:            fw.Metrics,
		Links:              fw.Links,
		Performance:        fw.Performance,
		Learning:           fw.Learning,
		Animation:          fw.Animation,
		CDN:                fw.CDN,
		SandboxPermissions: fw.SandboxPermissions,
		PlaygroundSamples:  fw.PlaygroundSamples,
	}
	if err := decodeYAML(fsys, "data/seo.yaml", &c.SEO); err != nil {
		return nil, err
	}
	if err := decodeYAML(fsys, "data/sitemap.yaml", &c.Sitemap); err != nil {
		return nil, err
	}
	if err := decodeYAML(fsys, "data/topics.yaml", &c.Topics); err != nil {
		return nil, err
	}
	if err := decodeYAML(fsys, "data/quiz.yaml", &c.Questions); err != nil {
		return nil, err
	}
	lessons, err := readDocuments(fsys, "lessons")
	if err != nil {
		return nil, err
	}
	c.Lessons = lessons
	guides, err := readDocuments(fsys, "guides")
	if err != nil {
		return nil, err
	}
	c.Guides = make(map[string]Document, len(guides))
	for _, g := range guides {
		c.Guides[g.Slug] = g
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeYAML(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("content: parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	if _, ok := c.SEO[seo.FallbackPath]; !ok {
		return fmt.Errorf("content: seo table has no %q record", seo.FallbackPath)
	}
	for _, fw := range []string{React, Vue} {
		if _, ok := c.Metrics[fw]; !ok {
			return fmt.Errorf("content: no metrics for %s", fw)
		}
	}
	seen := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if t.Slug == "" || seen[t.Slug] {
			return fmt.Errorf("content: bad or duplicate topic slug %q", t.Slug)
		}
		seen[t.Slug] = true
	}
	for _, q := range c.Questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("content: question %q has no options", q.ID)
		}
	}
	for _, e := range c.Sitemap {
		if !strings.HasPrefix(e.Path, "/") {
			return fmt.Errorf("content: sitemap path %q must start with /", e.Path)
		}
	}
	return nil
}
