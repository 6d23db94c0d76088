// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Keydash.
// It uses the go-i18n library to load the embedded translation files and
// golang.org/x/text for locale-aware number formatting.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	printer   *message.Printer
	current   string
)

// Init loads every embedded locale and activates lang. Unknown languages fall
// back to English message by message.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	if lang == "" {
		lang = "en"
	}
	current = lang
	localizer = i18n.NewLocalizer(bundle, lang, "en")
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	printer = message.NewPrinter(tag)
}

// T translates a message by its ID. Extra arguments are applied fmt-style to
// the translated text. A missing ID is returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// FormatNumber renders n with the grouping of the active language
// (1,266,763 in English, 1.266.763 in German).
func FormatNumber(n int) string {
	if printer == nil {
		Init("en")
	}
	return printer.Sprintf("%d", n)
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// GetAvailableLocales returns the embedded locales as code → display name,
// each name written in its own language.
func GetAvailableLocales() map[string]string {
	out := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		name := code
		if tag, err := language.Parse(code); err == nil {
			if n := display.Self.Name(tag); n != "" {
				name = n
			}
		}
		out[code] = name
	}
	return out
}

// NextLocale returns the locale that follows the active one in sorted order,
// wrapping around. The TUI uses it to cycle languages with a single key.
func NextLocale() string {
	locales := GetAvailableLocales()
	codes := make([]string, 0, len(locales))
	for c := range locales {
		codes = append(codes, c)
	}
	if len(codes) == 0 {
		return "en"
	}
	sort.Strings(codes)
	cur := GetLang()
	for i, c := range codes {
		if c == cur {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}
