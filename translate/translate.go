// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const fallback = "en-US"

var (
	printer *message.Printer
	tag     language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mipslet: locale: %v", err)
	}

	registerCatalog()
	SetLanguage(locales...)
}

// SetLanguage selects the best catalog match for the given BCP 47 language
// tags. With no tags, or no match, en-US is selected.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{fallback}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the language messages are formatted for.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
