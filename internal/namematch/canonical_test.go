package namematch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	c := NewCanonicalizer(nil)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "legal suffix stripped",
			input:    "Acme Corporation",
			expected: []string{"acme"},
		},
		{
			name:     "lowercase and punctuation",
			input:    "ACME, Widgets & Co.",
			expected: []string{"acme", "widgets"},
		},
		{
			name:     "slogan after comma",
			input:    "Acme, The Leader in Widgets",
			expected: []string{"acme"},
		},
		{
			name:     "slogan after dash",
			input:    "Acme - a widgets company",
			expected: []string{"acme"},
		},
		{
			name:     "top level domain stripped",
			input:    "acme.com",
			expected: []string{"acme"},
		},
		{
			name:     "dot ai brand preserved",
			input:    "jasper.ai labs",
			expected: []string{"jasper", "ai", "labs"},
		},
		{
			name:     "standalone year removed",
			input:    "Acme 2015",
			expected: []string{"acme"},
		},
		{
			name:     "month year date removed",
			input:    "Acme Jan 2016 spinout",
			expected: []string{"acme", "spinout"},
		},
		{
			name:     "stopword and geo term removed",
			input:    "Bank of America",
			expected: []string{"bank"},
		},
		{
			name:     "geo qualifier removed",
			input:    "Acme Germany",
			expected: []string{"acme"},
		},
		{
			name:     "extraneous bigram deleted",
			input:    "Acme Open Source",
			expected: []string{"acme"},
		},
		{
			name:     "protected bigram merged before filler pass",
			input:    "Group Commerce Inc",
			expected: []string{"groupcommerce"},
		},
		{
			name:     "filler words removed",
			input:    "Acme Software Solutions",
			expected: []string{"acme"},
		},
		{
			name:     "subsidiary markers removed",
			input:    "Acme formerly Beta",
			expected: []string{"acme", "beta"},
		},
		{
			name:     "name collapses to nothing",
			input:    "The Software Company",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := c.Canonicalize(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	c := NewCanonicalizer(nil)

	names := []string{
		"Acme Corporation",
		"Group Commerce Inc",
		"jasper.ai labs",
		"Bank of America",
		"Acme, The Leader in Widgets",
	}
	for _, name := range names {
		once := c.Canonicalize(name)
		twice := c.Canonicalize(strings.Join(once, " "))
		assert.Equal(t, once, twice, "re-canonicalizing output of %q changed it", name)
	}
}

func TestCanonicalize_Overrides(t *testing.T) {
	c := NewCanonicalizer(&Overrides{
		FillerWords: []string{"widgets"},
	})
	assert.Equal(t, []string{"acme"}, c.Canonicalize("Acme Widgets"))
}

func TestStripSlogan_NoArticle(t *testing.T) {
	// A comma clause that does not start with an article is not a slogan.
	assert.Equal(t, "acme, beta division", stripSlogan("acme, beta division"))
}

func TestStripDomains_KnownTLDs(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"acme.com", "acme "},
		{"acme.net beta", "acme  beta"},
		{"plain name", "plain name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, stripDomains(tt.input), "input %q", tt.input)
	}
}
