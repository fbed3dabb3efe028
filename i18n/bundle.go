// Package i18n provides the message catalog used for error and help output.
//
// Translations are JSON files (one per language, named after the BCP 47 tag) embedded under
// locales/. The English file is the reference: every other language falls back to it for keys
// it does not define.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/napalu/commando/types/orderedmap"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var systemLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrEmptyTranslations                  = errors.New("empty translations")
)

// Bundle holds the translations of every loaded language
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations *orderedmap.OrderedMap[language.Tag, map[string]string]
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the bundle holding the built-in translations
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		bundle, err := NewBundleWithFS(systemLocales, "locales", language.English)
		if err != nil {
			panic("failed to load default locales: " + err.Error())
		}
		defaultBundle = bundle
	})

	return defaultBundle
}

// NewBundleWithFS loads every <tag>.json file found in dirPrefix. The first lang (or English) is the
// default language and must be present.
func NewBundleWithFS(fs embed.FS, dirPrefix string, lang ...language.Tag) (*Bundle, error) {
	b := &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.NewOrderedMap[language.Tag, map[string]string](),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
	if len(lang) > 0 {
		b.defaultLang = lang[0]
	}

	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		data, err := fs.ReadFile(dirPrefix + "/" + entry.Name())
		if err != nil {
			return nil, err
		}
		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if err := b.AddLanguage(tag, translations); err != nil {
			return nil, err
		}
	}

	if !b.translations.Has(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// AddLanguage registers (or extends) the translations of lang
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, found := b.translations.Get(lang)
	if !found {
		existing = make(map[string]string, len(translations))
	}
	for key, msg := range translations {
		if err := b.catalog.SetString(lang, key, msg); err != nil {
			return fmt.Errorf("%s/%s: %w", lang, key, err)
		}
		existing[key] = msg
	}
	b.translations.Set(lang, existing)
	b.matcher = language.NewMatcher(b.translations.Keys())
	delete(b.printers, lang)

	return nil
}

// Languages returns the loaded languages in load order
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.translations.Keys()
}

// DefaultLanguage returns the fallback language of the bundle
func (b *Bundle) DefaultLanguage() language.Tag {
	return b.defaultLang
}

// Match returns the loaded language closest to lang
func (b *Bundle) Match(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.translations.Has(lang) {
		return lang
	}
	_, idx, confidence := b.matcher.Match(lang)
	if confidence == language.No {
		return b.defaultLang
	}

	return b.translations.Keys()[idx]
}

// Has is true when lang defines key
func (b *Bundle) Has(lang language.Tag, key string) bool {
	_, found := b.lookup(lang, key)

	return found
}

// T formats key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.defaultLang, key, args...)
}

// TL formats key in lang, falling back to the default language and finally to the key itself
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	lang = b.Match(lang)
	msg, found := b.lookup(lang, key)
	if !found {
		if msg, found = b.lookup(b.defaultLang, key); !found {
			return key
		}
		lang = b.defaultLang
	}
	if len(args) == 0 {
		return msg
	}

	return b.printer(lang).Sprintf(key, args...)
}

func (b *Bundle) lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, found := b.translations.Get(lang)
	if !found {
		return "", false
	}
	msg, found := translations[key]

	return msg, found
}

func (b *Bundle) printer(lang language.Tag) *message.Printer {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, found := b.printers[lang]
	if !found {
		p = message.NewPrinter(lang, message.Catalog(b.catalog))
		b.printers[lang] = p
	}

	return p
}
