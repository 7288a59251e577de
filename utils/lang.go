package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// translation files looked up in the i18n directory
var translationFiles = []string{"en.yaml", "id.yaml"}

var bundle *i18n.Bundle

// InitI18NBundle compiles the English defaults into a new bundle and loads
// the translation files of dir on top of them. An empty dir keeps English
// only.
func InitI18NBundle(dir string, defaults ...*i18n.Message) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if err := b.AddMessages(language.English, defaults...); err != nil {
		return err
	}

	if dir != "" {
		for _, f := range translationFiles {
			if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
				return err
			}
		}
	}

	bundle = b
	return nil
}

// NewLocalizer returns a localizer for the given languages or
// Accept-Language values, in order of preference
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Languages lists the languages the bundle has messages for
func Languages() []string {
	tags := bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}
