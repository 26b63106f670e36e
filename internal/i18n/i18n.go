// Package i18n resolves the generated description and notes text of the
// processors into a selected locale. Template keys are the default-locale
// phrasing itself; each locale maps those keys to a localized template with
// the same {{name}} placeholders.
package i18n

import (
	"strings"
	"sync"
)

// DefaultLanguage is the fallback locale. Its templates are the source
// language of all template keys.
const DefaultLanguage = "en"

// Params holds the named placeholder values for a template.
type Params map[string]string

// Localizer resolves template keys against a registry of locales. Each
// Localizer carries its own active language, so callers that need per-call
// locale isolation can hold an instance instead of sharing the package
// default.
type Localizer struct {
	mu      sync.RWMutex
	lang    string
	locales map[string]map[string]string
}

// New creates a Localizer with the built-in locales registered and the
// given language active. An empty tag selects the default language.
func New(lang string) *Localizer {
	if lang == "" {
		lang = DefaultLanguage
	}
	l := &Localizer{
		lang:    lang,
		locales: make(map[string]map[string]string, len(builtinLocales)),
	}
	for tag, templates := range builtinLocales {
		l.RegisterLocale(tag, templates)
	}
	return l
}

// RegisterLocale adds or extends a locale. Existing keys for the tag are
// overwritten; the registry is agnostic to how many locales are present.
func (l *Localizer) RegisterLocale(tag string, templates map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	existing, ok := l.locales[tag]
	if !ok {
		existing = make(map[string]string, len(templates))
		l.locales[tag] = existing
	}
	for key, tpl := range templates {
		existing[key] = tpl
	}
}

// SetLanguage switches the active locale. It is a no-op when the tag is
// empty or already active.
func (l *Localizer) SetLanguage(tag string) {
	if tag == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lang != tag {
		l.lang = tag
	}
}

// Language returns the active locale tag.
func (l *Localizer) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Resolve looks the key up in the active locale, falling back to the
// default locale, and substitutes every {{name}} placeholder with the
// matching params entry. When neither locale knows the key, the key is
// returned verbatim with its placeholders unsubstituted rather than
// failing: a missing translation must never abort a conversion.
func (l *Localizer) Resolve(key string, params Params) string {
	l.mu.RLock()
	template, ok := l.locales[l.lang][key]
	if !ok {
		template, ok = l.locales[DefaultLanguage][key]
	}
	l.mu.RUnlock()
	if !ok {
		return key
	}
	return substitute(template, params)
}

func substitute(template string, params Params) string {
	for name, value := range params {
		template = strings.ReplaceAll(template, "{{"+name+"}}", value)
	}
	return template
}

// The package-level default localizer preserves the legacy process-wide
// language setting. Concurrent conversions that need different locales
// should use their own Localizer instances.
var defaultLocalizer = New(DefaultLanguage)

// Default returns the shared process-wide localizer.
func Default() *Localizer {
	return defaultLocalizer
}

// SetLanguage switches the process-wide locale. No-op for an empty or
// already-active tag.
func SetLanguage(tag string) {
	defaultLocalizer.SetLanguage(tag)
}

// T resolves a template key against the process-wide localizer.
func T(key string, params Params) string {
	return defaultLocalizer.Resolve(key, params)
}
