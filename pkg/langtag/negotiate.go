package langtag

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxPreferenceLength truncates oversized preference lists.
const maxPreferenceLength = 4096

// preference is one entry of an Accept-Language style list.
type preference struct {
	tag     string
	quality float64
}

// Negotiate picks the available tag that best satisfies a preference list
// such as "en-US,en;q=0.9,pl;q=0.8".
//
// Preferences are tried in descending quality. For each one an exact
// (case-insensitive) match wins; otherwise the first available tag sharing
// its base language is taken. Entries with q=0 and the "*" wildcard never
// match. The second result is false when nothing matched.
func Negotiate(header string, available []string) (string, bool) {
	if header == "" || len(available) == 0 {
		return "", false
	}

	for _, pref := range parsePreferences(header) {
		for _, avail := range available {
			if Normalize(avail) == pref.tag {
				return avail, true
			}
		}
		for _, avail := range available {
			if Base(Normalize(avail)) == Base(pref.tag) {
				return avail, true
			}
		}
	}

	return "", false
}

// parsePreferences splits header into preferences ordered by quality.
// Equal qualities keep their original order.
func parsePreferences(header string) []preference {
	if len(header) > maxPreferenceLength {
		header = header[:maxPreferenceLength]
	}

	var prefs []preference

	for part := range strings.SplitSeq(header, ",") {
		tagPart, qPart, hasQuality := strings.Cut(strings.TrimSpace(part), ";")
		tag := Normalize(tagPart)
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if after, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(after, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}
		if quality == 0 {
			continue
		}

		prefs = append(prefs, preference{tag: tag, quality: quality})
	}

	slices.SortStableFunc(prefs, func(a, b preference) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return prefs
}
