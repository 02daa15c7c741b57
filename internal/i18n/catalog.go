// Package i18n holds the UI label catalogs and locale matching.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale supplies every label missing from another locale.
var BaseLocale = language.English

// Supported lists the UI locales. The first entry is the matcher default.
var Supported = []language.Tag{
	language.English,
	language.Turkish,
	language.German,
	language.Ukrainian,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

//go:embed locales/*.yaml
var localeFS embed.FS

var defaultCatalog = mustLoadAndRegister()

// Catalog maps a locale code ("en", "tr") to its flat label table.
type Catalog map[string]map[string]string

// Default returns the embedded catalog.
func Default() Catalog {
	return defaultCatalog
}

// LoadFromFS reads every locales/<code>.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	c := make(Catalog, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var labels map[string]string
		if err := yaml.Unmarshal(data, &labels); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		if len(labels) == 0 {
			return nil, fmt.Errorf("locale %s: no labels", p)
		}
		code := strings.TrimSuffix(path.Base(p), path.Ext(p))
		c[code] = labels
	}

	if _, ok := c[BaseLocale.String()]; !ok {
		return nil, fmt.Errorf("base locale %s is missing", BaseLocale)
	}
	return c, nil
}

// Missing returns the base-locale keys that locale does not define, sorted.
func (c Catalog) Missing(locale string) []string {
	var out []string
	labels := c[locale]
	for key := range c[BaseLocale.String()] {
		if _, ok := labels[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Register installs every label with x/text/message. Keys a locale leaves
// out are registered with their base-locale text.
func (c Catalog) Register() error {
	base := c[BaseLocale.String()]
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", code, err)
		}
		for key, text := range base {
			if local, ok := c[code][key]; ok {
				text = local
			}
			if err := message.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s/%s: %w", code, key, err)
			}
		}
	}
	return nil
}

func mustLoadAndRegister() Catalog {
	c, err := LoadFromFS(localeFS)
	if err != nil {
		panic(err)
	}
	if err := c.Register(); err != nil {
		panic(err)
	}
	return c
}
