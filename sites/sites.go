// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sites

import "fmt"

// indexedAliases lists the alternative names users may type for each site.
var indexedAliases = map[string][]string{
	"math":          {"mathematics"},
	"linguistics":   {},
	"cstheory":      {"tcs"},
	"cogsci":        {},
	"philosophy":    {"phil"},
	"hsm":           {},
	"chemistry":     {"chem"},
	"stats":         {"statistics"},
	"cs":            {"computerscience", "compsci"},
	"mathoverflow":  {"mo"},
	"matheducators": {"mathed"},
	"earthscience":  {"earthsci"},
	"physics":       {"phys"},
	"scicomp":       {},
	"astronomy":     {"astro"},
	"biology":       {"bio"},
	"economics":     {"econ"},
}

// siteNames holds sites that don't live under stackexchange.com.
var siteNames = map[string]string{
	"mathoverflow": "mathoverflow.net",
}

var aliases = invert(indexedAliases)

func invert(indexed map[string][]string) map[string]string {
	out := make(map[string]string)
	for id, names := range indexed {
		for _, alias := range names {
			out[alias] = id
		}
	}
	return out
}

// Canonicalize resolves an alias to its canonical site ID. Unknown tokens are
// returned unchanged; the roster lookup decides whether they are tracked.
func Canonicalize(token string) string {
	if id, ok := aliases[token]; ok {
		return id
	}
	return token
}

// DisplayName returns the human-readable domain of a site.
func DisplayName(siteID string) string {
	if name, ok := siteNames[siteID]; ok {
		return name
	}
	return fmt.Sprintf("%s.stackexchange.com", siteID)
}
