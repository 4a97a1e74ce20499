package textfmt

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// foldMarks decomposes characters and strips combining marks, turning
// "é" into "e" and "ñ" into "n".
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Truncate shortens s to at most max runes, cutting at the last word
// boundary inside the limit when one exists and appending ellipsis only
// when the string was actually shortened. The ellipsis does not count
// toward the limit. A non-positive max yields the ellipsis alone.
func Truncate(s string, max int, ellipsis string) string {
	if max <= 0 {
		return ellipsis
	}

	r := []rune(s)
	if len(r) <= max {
		return s
	}

	cut := string(r[:max])
	if !unicode.IsSpace(r[max]) {
		// Mid-word cut: back up to the last word boundary inside the limit.
		if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > 0 {
			cut = cut[:idx]
		}
	}
	cut = strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	return cut + ellipsis
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// with the 11th-13th exception. Negative numbers keep their sign.
func Ordinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// NormalizeURL produces a canonical form of raw: a scheme is added when
// missing (https by default, protocol-relative input keeps its host),
// scheme and host are lowercased, default ports are dropped, and a bare
// root path loses its trailing slash. Input that cannot be parsed is
// returned trimmed but otherwise untouched.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(raw, "//"):
		raw = "https:" + raw
	case !schemePattern.MatchString(raw):
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	if u.Path == "/" && u.RawQuery == "" && u.Fragment == "" {
		u.Path = ""
	}

	return u.String()
}

// Slug converts s into a URL-safe identifier: diacritics are folded to
// their base letters, everything outside letters and digits collapses
// into single dashes, and the result is lowercased.
func Slug(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(strings.TrimSpace(folded))

	var b strings.Builder
	prevDash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
