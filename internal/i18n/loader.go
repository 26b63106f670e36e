package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLocaleFile registers a locale from a YAML file holding a flat mapping
// from template key to localized template. Placeholder names must match the
// key's placeholders; the resolver does not verify this, unknown
// placeholders are simply left unsubstituted.
func (l *Localizer) LoadLocaleFile(tag, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- locale files are operator-provided
	if err != nil {
		return fmt.Errorf("error reading locale file: %w", err)
	}

	templates := make(map[string]string)
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return fmt.Errorf("error parsing locale file %s: %w", path, err)
	}

	l.RegisterLocale(tag, templates)
	return nil
}
