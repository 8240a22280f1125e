package pagebar

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Localizer resolves tab labels. Labels without a translation are shown as written.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	langs     []string
}

// NewLocalizer creates a localizer with English as the source language,
// preferring langs in order.
func NewLocalizer(langs ...string) *Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
		langs:     langs,
	}
}

// AddMessages loads a TOML message file. The language is taken from the
// file name, e.g. "active.es.toml".
func (l *Localizer) AddMessages(name string, data []byte) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("localization: %s: %w", name, err)
	}
	return nil
}

// LoadMessages reads a TOML message file from disk.
func (l *Localizer) LoadMessages(path string) error {
	if _, err := l.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("localization: %w", err)
	}
	return nil
}

// SetLanguages changes the preferred languages.
func (l *Localizer) SetLanguages(langs ...string) {
	l.langs = langs
	l.localizer = i18n.NewLocalizer(l.bundle, langs...)
}

// Localize returns the translation for id, or id itself.
func (l *Localizer) Localize(id string) string {
	if l == nil || id == "" {
		return id
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
