// Package locale localizes the announcement strings the navigation core
// speaks through the live region. Message files are embedded TOML; hosts pick
// the language at init time and all announcements follow.
package locale

import (
	_ "embed"
	"errors"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed en.toml
var enTOML []byte

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.MustParseMessageFileBytes(enTOML, "en.toml")
	localizer = i18n.NewLocalizer(bundle)
}

// SetLanguages selects the preferred languages for announcements, most
// preferred first (BCP 47 tags, e.g. "it", "en-GB"). Unknown languages fall
// back to English.
func SetLanguages(langs ...string) {
	mu.Lock()
	defer mu.Unlock()
	localizer = i18n.NewLocalizer(bundle, langs...)
}

// LoadMessageBytes registers additional translations from TOML bytes. The
// path is used only to infer the language tag (e.g. "it.toml").
func LoadMessageBytes(data []byte, path string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.ParseMessageFileBytes(data, path)
	return err
}

func localize(cfg *i18n.LocalizeConfig) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()

	msg, err := loc.Localize(cfg)
	if err != nil {
		// Localize reports a missing translation as an error while still
		// returning the default-language fallback text; keep the fallback
		// and only go silent on genuine localization failures.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		return ""
	}
	return msg
}

// MenuFocused is announced once when roving navigation engages.
func MenuFocused() string {
	return localize(&i18n.LocalizeConfig{MessageID: "menu_focused"})
}

// ItemPosition formats a positional announcement for a focused item,
// e.g. "Water Intake, 2 of 7".
func ItemPosition(label string, position, count int) string {
	return localize(&i18n.LocalizeConfig{
		MessageID: "item_position",
		TemplateData: map[string]interface{}{
			"Label":    label,
			"Position": position,
			"Count":    count,
		},
	})
}

// OverlayEngaged is announced when a focus trap takes hold.
func OverlayEngaged() string {
	return localize(&i18n.LocalizeConfig{MessageID: "overlay_engaged"})
}

// OverlayReleased is announced when a focus trap lets go.
func OverlayReleased() string {
	return localize(&i18n.LocalizeConfig{MessageID: "overlay_released"})
}
