// Package i18n resolves translatable label descriptors against locale bundles.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when a requested locale has no bundle
const DefaultLocale = "en"

// Descriptor is a translatable label: a message key plus optional
// placeholder values interpolated into the resolved text.
type Descriptor struct {
	Text  string
	Props map[string]string
}

// T builds a plain descriptor for a message key
func T(text string) Descriptor {
	return Descriptor{Text: text}
}

// TP builds a descriptor with placeholder props
func TP(text string, props map[string]string) Descriptor {
	return Descriptor{Text: text, Props: props}
}

// Translator resolves descriptors against the active locale bundle.
// Lookups that fail degrade to the raw descriptor key so rendering
// never becomes fatal.
type Translator struct {
	mu      sync.RWMutex
	locale  string
	bundles map[string]map[string]string
}

// NewTranslator loads the embedded locale bundles and selects the given
// locale, falling back to DefaultLocale when it has no bundle.
func NewTranslator(locale string) *Translator {
	t := &Translator{
		locale:  DefaultLocale,
		bundles: loadEmbeddedBundles(),
	}
	if _, ok := t.bundles[locale]; ok {
		t.locale = locale
	} else if locale != "" && locale != DefaultLocale {
		log.Printf("i18n: no bundle for locale %q, using %q", locale, DefaultLocale)
	}
	return t
}

// Locale returns the active locale
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// Locales returns the available locales, sorted
func (t *Translator) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	locales := make([]string, 0, len(t.bundles))
	for name := range t.bundles {
		locales = append(locales, name)
	}
	sort.Strings(locales)
	return locales
}

// SetLocale switches the active bundle
func (t *Translator) SetLocale(locale string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.bundles[locale]; !ok {
		return fmt.Errorf("i18n: unknown locale %q", locale)
	}
	t.locale = locale
	return nil
}

// Translate resolves a descriptor to display text. Unknown keys resolve
// to the key itself; props are interpolated as {name} placeholders.
func (t *Translator) Translate(d Descriptor) string {
	t.mu.RLock()
	bundle := t.bundles[t.locale]
	t.mu.RUnlock()

	text, ok := bundle[d.Text]
	if !ok {
		text = d.Text
	}

	for name, value := range d.Props {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func loadEmbeddedBundles() map[string]map[string]string {
	bundles := make(map[string]map[string]string)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		log.Printf("i18n: reading embedded locales: %v", err)
		return bundles
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		locale := strings.TrimSuffix(name, ".yaml")

		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			log.Printf("i18n: reading bundle %s: %v", name, err)
			continue
		}

		messages := make(map[string]string)
		if err := yaml.Unmarshal(data, &messages); err != nil {
			// A broken bundle degrades to raw keys rather than failing startup
			log.Printf("i18n: parsing bundle %s: %v", name, err)
			continue
		}
		bundles[locale] = messages
	}

	return bundles
}
