// sitemap writes public/sitemap.xml for the site's listed paths. It takes no
// flags; SITE_URL overrides the base URL.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jezweb/vuevreact"
	"github.com/jezweb/vuevreact/content"
)

func main() {
	out := filepath.Join("public", "sitemap.xml")
	if err := generate(out, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "sitemap: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sitemap generated at %s\n", out)
}

func generate(out string, now time.Time) error {
	catalog, err := content.Load()
	if err != nil {
		return err
	}
	cfg := vuevreact.ConfigFromEnv()
	return vuevreact.GenerateSitemapFile(out, cfg.URL, catalog.Sitemap, now)
}
