// Package namematch resolves free-text company names against each other: a
// deterministic canonicalization pipeline reduces a raw name to comparable
// tokens, and a multi-signal scorer decides whether two names refer to the
// same company.
package namematch

import (
	"regexp"
	"strings"
)

// Canonicalizer turns a raw company name into an ordered token sequence with
// slogans, domains, dates, punctuation, stopwords, legal designators,
// geographic qualifiers, and business filler stripped. Safe for concurrent
// use after construction.
type Canonicalizer struct {
	stop          map[string]struct{}
	legal         map[string]struct{}
	geo           map[string]struct{}
	filler        map[string]struct{}
	markers       map[string]struct{}
	removeBigrams map[string]string
	mergeBigrams  map[string]string
}

// NewCanonicalizer builds a canonicalizer from the built-in word lists plus
// optional overrides (nil for none).
func NewCanonicalizer(ov *Overrides) *Canonicalizer {
	c := &Canonicalizer{
		stop:          toSet(stopwords),
		legal:         toSet(legalTerms),
		geo:           toSet(geoTerms),
		filler:        toSet(fillerWords),
		markers:       toSet(subsidiaryMarkers),
		removeBigrams: make(map[string]string, len(removeBigrams)),
		mergeBigrams:  make(map[string]string, len(mergeBigrams)),
	}
	for k, v := range removeBigrams {
		c.removeBigrams[k] = v
	}
	for k, v := range mergeBigrams {
		c.mergeBigrams[k] = v
	}
	if ov != nil {
		for _, w := range ov.Stopwords {
			c.stop[strings.ToLower(w)] = struct{}{}
		}
		for _, w := range ov.LegalTerms {
			c.legal[strings.ToLower(w)] = struct{}{}
		}
		for _, w := range ov.GeoTerms {
			c.geo[strings.ToLower(w)] = struct{}{}
		}
		for _, w := range ov.FillerWords {
			c.filler[strings.ToLower(w)] = struct{}{}
		}
		for _, w := range ov.SubsidiaryMarkers {
			c.markers[strings.ToLower(w)] = struct{}{}
		}
		for k, v := range ov.RemoveBigrams {
			c.removeBigrams[strings.ToLower(k)] = strings.ToLower(v)
		}
		for k, v := range ov.MergeBigrams {
			c.mergeBigrams[strings.ToLower(k)] = strings.ToLower(v)
		}
	}
	return c
}

// Canonicalize runs the full cleaning pipeline. The stage order is
// significant: string-level cleanup happens before tokenization, and the
// protected-bigram stages must run before single-token filler removal.
// An empty result means the name carries no usable signal.
func (c *Canonicalizer) Canonicalize(name string) []string {
	n := strings.ToLower(name)
	n = stripSlogan(n)
	n = stripDomains(n)
	n = stripDates(n)
	n = stripPunctuation(n)

	tokens := strings.Fields(n)
	tokens = dropTokens(tokens, c.stop)
	tokens = dropTokens(tokens, c.legal)
	tokens = dropTokens(tokens, c.geo)
	tokens = c.dropRemoveBigrams(tokens)
	tokens = c.mergeProtectedBigrams(tokens)
	tokens = dropTokens(tokens, c.filler)
	tokens = dropTokens(tokens, c.markers)
	return tokens
}

// stripSlogan truncates a trailing marketing tagline: if the first comma (or
// else the first " - ") is followed by an article, everything from the
// separator on is a slogan ("acme, the leader in widgets").
func stripSlogan(name string) string {
	pos := strings.Index(name, ",")
	sepLen := 1
	if pos < 0 {
		pos = strings.Index(name, " - ")
		sepLen = 3
	}
	if pos <= 0 || pos >= len(name)-1 {
		return name
	}
	rest := strings.Fields(name[pos+sepLen:])
	if len(rest) == 0 {
		return name
	}
	switch rest[0] {
	case "a", "an", "the":
		return name[:pos]
	}
	return name
}

// tldSuffixes are top-level-domain fragments stripped wherever they appear.
var tldSuffixes = []string{
	".com", ".net", ".org", ".edu", ".de", ".info", ".ru", ".online",
	".biz", ".gov", ".mil",
}

// stripDomains removes domain-like text. Known TLD fragments become spaces;
// any remaining period that is not bounded by a space (or string edge) is
// deleted together with the run of characters up to the next space. The
// ".ai" fragment is the one branding exception: it is preserved and
// re-inserted at the position its dot was found.
func stripDomains(name string) string {
	for _, tld := range tldSuffixes {
		name = strings.ReplaceAll(name, tld, " ")
	}

	dotAI := strings.Index(name, ".ai")

	var b strings.Builder
	b.Grow(len(name))
	i := 0
	for i < len(name) {
		ch := name[i]
		if ch != '.' {
			b.WriteByte(ch)
			i++
			continue
		}
		boundary := i == 0 || i == len(name)-1 || name[i-1] == ' ' || name[i+1] == ' '
		if boundary {
			b.WriteByte(ch)
			i++
			continue
		}
		rest := strings.IndexByte(name[i:], ' ')
		if rest < 0 {
			break
		}
		i += rest
	}
	out := b.String()

	if dotAI >= 0 {
		if dotAI > len(out) {
			dotAI = len(out)
		}
		out = out[:dotAI] + ".ai" + out[dotAI:]
	}
	return out
}

var datePatterns = []*regexp.Regexp{
	// "jan 2, 2015", "march 2nd 2015"
	regexp.MustCompile(`\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	// "2 jan 2015"
	regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*,?\s+\d{4}\b`),
	// "jan 2015"
	regexp.MustCompile(`\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}\b`),
	// "1/2/2015", "01-02-15"
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	// "2015-01-02"
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
}

// standalone years 1970-2019: founding years and vintage tags, not names.
var yearPattern = regexp.MustCompile(`\b(?:19[7-9][0-9]|20[01][0-9])\b`)

// stripDates removes calendar-date substrings and standalone years.
// Operates on the lowercased name.
func stripDates(name string) string {
	for _, p := range datePatterns {
		name = p.ReplaceAllString(name, " ")
	}
	return yearPattern.ReplaceAllString(name, " ")
}

var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

func stripPunctuation(name string) string {
	return punctuation.ReplaceAllString(name, " ")
}

func dropTokens(tokens []string, set map[string]struct{}) []string {
	kept := tokens[:0]
	for _, t := range tokens {
		if _, drop := set[t]; !drop {
			kept = append(kept, t)
		}
	}
	return kept
}

// dropRemoveBigrams deletes both tokens of each configured adjacent pair.
func (c *Canonicalizer) dropRemoveBigrams(tokens []string) []string {
	drop := make(map[int]struct{})
	for i := 0; i+1 < len(tokens); i++ {
		if c.removeBigrams[tokens[i]] == tokens[i+1] {
			drop[i] = struct{}{}
			drop[i+1] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return tokens
	}
	kept := tokens[:0]
	for i, t := range tokens {
		if _, d := drop[i]; !d {
			kept = append(kept, t)
		}
	}
	return kept
}

// mergeProtectedBigrams concatenates each configured adjacent pair into a
// single token so the filler pass cannot strip the words individually.
func (c *Canonicalizer) mergeProtectedBigrams(tokens []string) []string {
	var merged []string
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && c.mergeBigrams[tokens[i]] == tokens[i+1] {
			merged = append(merged, tokens[i]+tokens[i+1])
			i++
			continue
		}
		merged = append(merged, tokens[i])
	}
	return merged
}
