package namematch

import "strings"

// Jaccard computes intersection-over-union of the two token sequences as
// sets. Returns 0 when the union is empty.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// PascalScore detects abbreviation/PascalCase relationships: one side
// spelling out as separate tokens what the other writes as a fused token
// ("J P Morgan" vs "JPMorgan").
//
// With equal token counts the score is symmetric: the adjacent-token
// concatenations (bigrams) of each side are compared against the other
// side's token set, intersection over union, summed across both directions.
// With differing counts any single fused-token hit on the longer side's
// bigrams scores 1.0, else 0.
func PascalScore(a, b []string) float64 {
	if len(a) == len(b) {
		return bigramOverlap(b, bigrams(a)) + bigramOverlap(a, bigrams(b))
	}

	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	fused := bigrams(longer)
	for _, t := range shorter {
		if _, ok := fused[t]; ok {
			return 1.0
		}
	}
	return 0.0
}

func bigrams(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+1 < len(tokens); i++ {
		set[tokens[i]+tokens[i+1]] = struct{}{}
	}
	return set
}

func bigramOverlap(tokens []string, fused map[string]struct{}) float64 {
	set := toSet(tokens)
	inter := 0
	for t := range set {
		if _, ok := fused[t]; ok {
			inter++
		}
	}
	union := len(set) + len(fused) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// SubsidiaryPattern is the two-clause decomposition of a name that embeds a
// parent/holding reference: "Acme Widgets, formerly Acme Manufacturing"
// splits into the subsidiary clause and the holding clause.
type SubsidiaryPattern struct {
	Subsidiary string
	Holding    string
}

// DetectSubsidiaryPattern finds a subsidiary/parent decomposition of a raw
// name. A comma (or else a parenthesis) split qualifies only when the text
// after the separator contains a subsidiary-marker word; failing that, a
// marker word appearing anywhere splits the name at the first maximal run
// of consecutive marker tokens.
func (c *Canonicalizer) DetectSubsidiaryPattern(name string) (SubsidiaryPattern, bool) {
	if p, ok := c.splitAtSeparator(name); ok {
		return p, true
	}
	return c.splitAtMarkerRun(name)
}

func (c *Canonicalizer) splitAtSeparator(name string) (SubsidiaryPattern, bool) {
	pos := strings.Index(name, ",")
	if pos < 0 {
		pos = strings.Index(name, "(")
	}
	if pos < 0 {
		return SubsidiaryPattern{}, false
	}

	rest := strings.TrimSuffix(strings.TrimSpace(name[pos+1:]), ")")
	if !c.containsMarker(rest) {
		return SubsidiaryPattern{}, false
	}
	return SubsidiaryPattern{
		Subsidiary: strings.TrimSpace(name[:pos]),
		Holding:    rest,
	}, true
}

func (c *Canonicalizer) containsMarker(text string) bool {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := c.markers[w]; ok {
			return true
		}
	}
	return false
}

func (c *Canonicalizer) splitAtMarkerRun(name string) (SubsidiaryPattern, bool) {
	tokens := strings.Fields(name)
	for i := range tokens {
		if _, ok := c.markers[strings.ToLower(tokens[i])]; !ok {
			continue
		}
		j := i + 1
		for j < len(tokens) {
			if _, ok := c.markers[strings.ToLower(tokens[j])]; !ok {
				break
			}
			j++
		}
		return SubsidiaryPattern{
			Subsidiary: strings.Join(tokens[:i], " "),
			Holding:    strings.Join(tokens[j:], " "),
		}, true
	}
	return SubsidiaryPattern{}, false
}

// SubsidiaryScore averages the Jaccard similarity of the two names'
// subsidiary clauses and of their holding clauses. A clause missing on one
// side is compared against the other name's full canonical form; if neither
// name decomposes, the score is 0.
func (c *Canonicalizer) SubsidiaryScore(name1, name2 string) float64 {
	p1, _ := c.DetectSubsidiaryPattern(name1)
	p2, _ := c.DetectSubsidiaryPattern(name2)

	sub := c.clauseScore(p1.Subsidiary, p2.Subsidiary, name1, name2)
	hold := c.clauseScore(p1.Holding, p2.Holding, name1, name2)
	return 0.5 * (sub + hold)
}

// clauseScore compares one decomposition clause across the two names. The
// empty string means the clause is absent on that side.
func (c *Canonicalizer) clauseScore(clause1, clause2, full1, full2 string) float64 {
	switch {
	case clause1 != "" && clause2 != "":
		return Jaccard(c.Canonicalize(clause1), c.Canonicalize(clause2))
	case clause1 != "":
		return Jaccard(c.Canonicalize(clause1), c.Canonicalize(full2))
	case clause2 != "":
		return Jaccard(c.Canonicalize(clause2), c.Canonicalize(full1))
	}
	return 0.0
}
