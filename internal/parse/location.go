// Package parse extracts structured fields from the free-form strings job
// boards put in their listings: "Seattle, WA, United States" style locations
// and degree requirements buried in description prose.
package parse

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stateAbbr maps lowercased US state names to their postal abbreviation.
var stateAbbr = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "district of columbia": "DC", "florida": "FL",
	"georgia": "GA", "hawaii": "HI", "idaho": "ID", "illinois": "IL",
	"indiana": "IN", "iowa": "IA", "kansas": "KS", "kentucky": "KY",
	"louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT",
	"nebraska": "NE", "nevada": "NV", "new hampshire": "NH",
	"new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"puerto rico": "PR", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
}

// knownAbbr is the reverse index of stateAbbr.
var knownAbbr = func() map[string]bool {
	m := make(map[string]bool, len(stateAbbr))
	for _, ab := range stateAbbr {
		m[ab] = true
	}
	return m
}()

// country tokens that boards append and the parser discards
var countryNames = map[string]bool{
	"united states":            true,
	"united states of america": true,
	"usa":                      true,
	"us":                       true,
	"u.s.":                     true,
	"u.s.a.":                   true,
	"america":                  true,
}

var locationCaser = cases.Title(language.English)

// lookupState resolves a chunk that names a state, by postal abbreviation or
// by full name.
func lookupState(part string) (string, bool) {
	if len(part) == 2 && knownAbbr[strings.ToUpper(part)] {
		return strings.ToUpper(part), true
	}
	if ab, ok := stateAbbr[strings.ToLower(part)]; ok {
		return ab, true
	}
	return "", false
}

// Location splits a raw location string into city and state plus a display
// form. Chunks are comma-separated and the count disambiguates:
//
//   - one chunk is a state, a country (discarded), or a city, in that order
//   - two chunks are either (state-or-city, country) or (city, state);
//     anything else ("Toronto, Canada") resolves to nothing
//   - three or more chunks are (city, state, country); an unrecognized
//     middle chunk is uppercased and kept as the state
//
// A bare state name is therefore the state, never a city: "Washington,
// United States" parses as WA. City names come back title-cased and the
// display joins the non-empty parts.
func Location(raw string) (city, state, display string) {
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	title := func(s string) string { return locationCaser.String(strings.ToLower(s)) }

	switch len(parts) {
	case 0:
	case 1:
		if ab, ok := lookupState(parts[0]); ok {
			state = ab
		} else if !countryNames[strings.ToLower(parts[0])] {
			city = title(parts[0])
		}
	case 2:
		first, second := parts[0], parts[1]
		if countryNames[strings.ToLower(second)] {
			if ab, ok := lookupState(first); ok {
				state = ab
			} else {
				city = title(first)
			}
		} else if ab, ok := lookupState(second); ok {
			city = title(first)
			state = ab
		}
	default:
		city = title(parts[0])
		if ab, ok := lookupState(parts[1]); ok {
			state = ab
		} else {
			state = strings.ToUpper(parts[1])
		}
	}
	switch {
	case city != "" && state != "":
		display = city + ", " + state
	case state != "":
		display = state
	default:
		display = city
	}
	return city, state, display
}
