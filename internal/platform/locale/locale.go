// Copyright (c) 2026 Faststamps. All rights reserved.

/*
Package locale resolves the response language for localized catalogue fields.

The catalogue stores every textual attribute (title, color, printed value) in
both English and French. Which variant is served depends solely on the
request's Accept-Language header: if the highest-weighted tag's primary
subtag is "fr" the French fields are used, otherwise English.

Parsing is delegated to [golang.org/x/text/language], which handles the
weighted-list grammar (`fr-CH, fr;q=0.9, en;q=0.8`) and returns tags ordered
by descending quality factor.
*/
package locale

import (
	"net/http"

	"golang.org/x/text/language"
)

// Lang identifies one of the two languages the catalogue is stored in.
//
// Its string form doubles as the Content-Language response header value.
type Lang string

const (
	// English is the default language when no usable preference is supplied.
	English Lang = "en"

	// French is selected when the best Accept-Language tag has primary subtag "fr".
	French Lang = "fr"
)

// Preference is one (tag, weight) pair from an Accept-Language header.
type Preference struct {
	Tag    language.Tag
	Weight float32
}

// ParseAcceptLanguage parses an Accept-Language header value into an ordered
// list of preferences, highest quality factor first.
//
// An empty or malformed header yields nil; callers fall back to [English].
func ParseAcceptLanguage(header string) []Preference {
	if header == "" {
		return nil
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	prefs := make([]Preference, len(tags))
	for i, tag := range tags {
		prefs[i] = Preference{Tag: tag, Weight: weights[i]}
	}
	return prefs
}

// Select resolves the catalogue language from an Accept-Language header value.
//
// Only the highest-weighted tag's primary subtag is consulted: "fr" (in any
// region or script combination) selects [French], everything else — including
// an absent or unparseable header — selects [English].
func Select(header string) Lang {
	prefs := ParseAcceptLanguage(header)
	if len(prefs) == 0 {
		return English
	}

	base, _ := prefs[0].Tag.Base()
	if base.String() == "fr" {
		return French
	}
	return English
}

// FromRequest resolves the catalogue language for an HTTP request.
func FromRequest(r *http.Request) Lang {
	return Select(r.Header.Get("Accept-Language"))
}
