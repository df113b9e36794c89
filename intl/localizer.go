// Package intl renders parse errors, number types and possibility results
// as human-readable strings in the caller's language. It is a trimmed port
// of the teacher's core.Localizer: the same bundle-per-tag caching strategy
// over github.com/nicksnyder/go-i18n/v2, but backed by translations
// embedded in the binary instead of loaded from a gin request's
// Accept-Language header, since this module has no HTTP layer.
package intl

import (
	"embed"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed translations
var translationsFS embed.FS

// DefaultLanguages are the languages bundled with this module.
var DefaultLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Spanish,
}

// DefaultLanguage is used when the requested tag cannot be matched.
var DefaultLanguage = language.English

// Localizer renders message IDs in a chosen language. Safe for concurrent
// use; Clone gives each goroutine its own language selection over shared,
// already-loaded bundles.
type Localizer struct {
	i18nStorage   *sync.Map
	loadMutex     *sync.RWMutex
	localeMatcher language.Matcher
	languageTag   language.Tag
}

// New returns a Localizer defaulted to lang, with the bundled translations
// pre-loaded.
func New(lang language.Tag) *Localizer {
	l := &Localizer{
		i18nStorage:   &sync.Map{},
		loadMutex:     &sync.RWMutex{},
		localeMatcher: language.NewMatcher(DefaultLanguages),
	}
	l.SetLanguage(lang)
	return l
}

// Clone returns a copy sharing the parent's loaded bundles but with an
// independent current-language selection, reset to DefaultLanguage.
func (l *Localizer) Clone() *Localizer {
	clone := &Localizer{
		i18nStorage:   l.i18nStorage,
		loadMutex:     l.loadMutex,
		localeMatcher: l.localeMatcher,
	}
	clone.SetLanguage(DefaultLanguage)
	return clone
}

// SetLanguage sets the current language by tag.
func (l *Localizer) SetLanguage(tag language.Tag) {
	l.languageTag = tag
}

// SetLocale sets the current language by matching an Accept-Language-style
// string (e.g. "es", "ru-RU;q=0.9,en;q=0.8") against the bundled languages.
func (l *Localizer) SetLocale(accept string) {
	tag, _ := language.MatchStrings(l.localeMatcher, accept)
	l.SetLanguage(tag)
}

// Localize returns the message for messageID, or an error if it is unknown
// in the current language's bundle.
func (l *Localizer) Localize(messageID string) (string, error) {
	return l.getLocalizer(l.languageTag).Localize(&i18n.LocalizeConfig{MessageID: messageID})
}

// GetLocalizedMessage returns the message for messageID, or messageID itself
// if it cannot be localized. Formatters never fail (§7), so this mirrors
// that policy for human-facing strings.
func (l *Localizer) GetLocalizedMessage(messageID string) string {
	msg, err := l.Localize(messageID)
	if err != nil {
		return messageID
	}
	return msg
}

// GetLocalizedTemplateMessage renders messageID with the supplied template
// data, falling back to messageID on any error.
func (l *Localizer) GetLocalizedTemplateMessage(messageID string, data map[string]interface{}) string {
	msg, err := l.getLocalizer(l.languageTag).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

func (l *Localizer) getLocalizer(tag language.Tag) *i18n.Localizer {
	if isUnd(tag) {
		tag = DefaultLanguage
	}

	if item, ok := l.i18nStorage.Load(tag); ok {
		return item.(*i18n.Localizer)
	}

	l.loadMutex.Lock()
	defer l.loadMutex.Unlock()

	if item, ok := l.i18nStorage.Load(tag); ok {
		return item.(*i18n.Localizer)
	}

	loc := i18n.NewLocalizer(l.bundleForTag(tag), tag.String())
	l.i18nStorage.Store(tag, loc)
	return loc
}

func (l *Localizer) bundleForTag(tag language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := translationsFS.ReadDir("translations")
	if err != nil {
		panic(err.Error())
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := translationsFS.ReadFile("translations/" + entry.Name())
		if err != nil {
			panic(err.Error())
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			panic(err.Error())
		}
	}

	return bundle
}

func isUnd(tag language.Tag) bool {
	return tag == language.Und
}
