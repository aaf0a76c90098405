package namematch

// ReferenceTable maps raw acquisition-side company names to their
// precomputed canonical tokens. Built once per dataset load, read-only
// afterwards, shareable across matchers.
type ReferenceTable map[string][]string

// BuildReferenceTable canonicalizes every distinct name once.
func BuildReferenceTable(c *Canonicalizer, names []string) ReferenceTable {
	table := make(ReferenceTable, len(names))
	for _, n := range names {
		if _, done := table[n]; done {
			continue
		}
		table[n] = c.Canonicalize(n)
	}
	return table
}

// Scores holds the individual similarity signals behind one match decision.
// Pascal is only computed when Jaccard+Subsidiary alone fall short of the
// threshold.
type Scores struct {
	Jaccard    float64 `json:"jaccard"`
	Subsidiary float64 `json:"subsidiary"`
	Pascal     float64 `json:"pascal"`
	Threshold  float64 `json:"threshold"`
	Matched    bool    `json:"matched"`
}

// Matcher decides whether a profile-side employer name refers to an
// acquisition-side company. It keeps the most recent employer
// canonicalization cached, so probing one employer against many reference
// names in a row canonicalizes the employer once. Not safe for concurrent
// use; give each worker its own Matcher over a shared ReferenceTable.
type Matcher struct {
	canon *Canonicalizer
	ref   ReferenceTable

	probe       string
	probeTokens []string
	probeValid  bool
}

// NewMatcher creates a matcher over a prebuilt reference table. The table
// may be nil; every reference name is then canonicalized on demand.
func NewMatcher(c *Canonicalizer, ref ReferenceTable) *Matcher {
	return &Matcher{canon: c, ref: ref}
}

// Match reports whether employer refers to the reference company named
// other, using the reference table (falling back to on-demand
// canonicalization for names absent from it). On a match the employer
// string is returned as the canonical answer.
func (m *Matcher) Match(employer, other string) (string, bool) {
	s := m.score(employer, other, true)
	if !s.Matched {
		return "", false
	}
	return employer, true
}

// MatchDirect is Match without the reference table: other is always
// canonicalized for this call.
func (m *Matcher) MatchDirect(employer, other string) (string, bool) {
	s := m.score(employer, other, false)
	if !s.Matched {
		return "", false
	}
	return employer, true
}

// Score exposes the full signal breakdown for one comparison.
func (m *Matcher) Score(employer, other string) Scores {
	return m.score(employer, other, true)
}

func (m *Matcher) score(employer, other string, useRef bool) Scores {
	if !m.probeValid || employer != m.probe {
		m.probeTokens = m.canon.Canonicalize(employer)
		m.probe = employer
		m.probeValid = true
	}

	var refTokens []string
	if useRef {
		if t, ok := m.ref[other]; ok {
			refTokens = t
		} else {
			refTokens = m.canon.Canonicalize(other)
		}
	} else {
		refTokens = m.canon.Canonicalize(other)
	}

	// A reference name that canonicalizes to nothing is unmatchable.
	if len(refTokens) == 0 {
		return Scores{}
	}

	s := Scores{
		Jaccard:    Jaccard(m.probeTokens, refTokens),
		Subsidiary: m.canon.SubsidiaryScore(employer, other),
		Threshold:  0.6,
	}
	if len(refTokens) <= 2 && len(m.probeTokens) <= 2 {
		s.Threshold = 0.5
	}

	if s.Jaccard+s.Subsidiary >= s.Threshold {
		s.Matched = true
		return s
	}

	s.Pascal = PascalScore(m.probeTokens, refTokens)
	s.Matched = s.Jaccard+s.Subsidiary+s.Pascal >= s.Threshold
	return s
}
