package namematch

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// stopwords is the standard English stopword list. Tokens in here carry no
// naming signal ("the", "of", "and", ...).
var stopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan",
	"shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren",
	"weren't", "won", "won't", "wouldn", "wouldn't",
}

// legalTerms aggregates legal-entity designators across jurisdictions and
// entity types. Only single tokens can ever match after tokenization, so
// dotted and multi-word variants are reduced to their token forms.
var legalTerms = []string{
	// common US/UK forms
	"inc", "incorporated", "corp", "corporation", "co", "company",
	"ltd", "limited", "llc", "lc", "llp", "lp", "pllc", "plc", "pc",
	"pa", "dba", "na", "assn", "association", "assoc", "partners",
	"partnership", "holdings", "holding", "trust", "fund", "foundation",
	// continental Europe
	"gmbh", "mbh", "ag", "kg", "kgaa", "ohg", "gbr", "ug", "ev",
	"sarl", "sa", "sas", "sasu", "sci", "snc", "eurl", "scop",
	"bv", "nv", "vof", "cv", "bvba", "cvba", "sprl", "asbl",
	"srl", "spa", "sapa", "scarl", "coop",
	"ab", "as", "asa", "aps", "oy", "oyj", "ky", "hb",
	"sp", "zoo", "sc", "spolka", "kft", "bt", "rt", "zrt", "nyrt",
	"sro", "vos", "ks", "doo", "dd", "ad", "od",
	"lda", "sgps", "crl", "sal", "sll", "slne", "sau",
	// rest of world
	"pty", "bhd", "sdn", "pte", "pt", "tbk", "kk", "yk", "gk",
	"pvt", "pjsc", "psc", "jsc", "ojsc", "cjsc", "zao", "oao", "ooo",
	"ulc", "ccc", "sae", "saog", "saoc", "wll", "kscc", "kscp",
	"ltda", "eirl", "cia", "sab", "sapi",
	// generic designators
	"intl", "enterprises", "enterprise", "ventures", "venture",
	"gruppe", "grupo", "groupe", "societe", "compagnie",
}

// geoTerms lists country, continent, and major-city names that show up as
// location qualifiers in employer strings ("Acme Germany"). Multi-word
// entries can never match a single token; they are kept to document the
// intended coverage.
var geoTerms = []string{
	// continents
	"europe", "asia", "america", "africa", "australia",
	// major cities seen in the profile data
	"beijing", "new york", "chicago", "los angeles", "shanghai", "munich",
	"berlin", "new jersey", "washington",
	// countries
	"afghanistan", "albania", "algeria", "andorra", "angola", "argentina",
	"armenia", "austria", "azerbaijan", "bahamas", "bahrain", "bangladesh",
	"barbados", "belarus", "belgium", "belize", "benin", "bhutan",
	"bolivia", "bosnia and herzegovina", "botswana", "brazil", "brunei",
	"bulgaria", "burkina faso", "burundi", "cambodia", "cameroon",
	"canada", "chad", "chile", "china", "colombia", "comoros", "congo",
	"costa rica", "croatia", "cuba", "cyprus", "czechia",
	"czech republic", "denmark", "djibouti", "dominica",
	"dominican republic", "ecuador", "egypt", "el salvador", "eritrea",
	"estonia", "eswatini", "ethiopia", "fiji", "finland", "france",
	"gabon", "gambia", "georgia", "germany", "ghana", "greece", "grenada",
	"guatemala", "guinea", "guyana", "haiti", "honduras", "hungary",
	"iceland", "india", "indonesia", "iran", "iraq", "ireland", "israel",
	"italy", "jamaica", "japan", "jordan", "kazakhstan", "kenya",
	"kiribati", "korea", "kuwait", "kyrgyzstan", "laos", "latvia",
	"lebanon", "lesotho", "liberia", "libya", "liechtenstein",
	"lithuania", "luxembourg", "madagascar", "malawi", "malaysia",
	"maldives", "mali", "malta", "mauritania", "mauritius", "mexico",
	"micronesia", "moldova", "monaco", "mongolia", "montenegro",
	"morocco", "mozambique", "myanmar", "namibia", "nauru", "nepal",
	"netherlands", "new zealand", "nicaragua", "niger", "nigeria",
	"north macedonia", "norway", "oman", "pakistan", "palau", "panama",
	"papua new guinea", "paraguay", "peru", "philippines", "poland",
	"portugal", "qatar", "romania", "russia", "russian federation",
	"rwanda", "samoa", "san marino", "saudi arabia", "senegal", "serbia",
	"seychelles", "sierra leone", "singapore", "slovakia", "slovenia",
	"somalia", "south africa", "south sudan", "spain", "sri lanka",
	"sudan", "suriname", "sweden", "switzerland", "syria", "taiwan",
	"tajikistan", "tanzania", "thailand", "togo", "tonga",
	"trinidad and tobago", "tunisia", "turkey", "turkmenistan", "tuvalu",
	"uganda", "ukraine", "united arab emirates", "united kingdom",
	"united states", "uruguay", "uzbekistan", "vanuatu", "venezuela",
	"vietnam", "yemen", "zambia", "zimbabwe",
}

// fillerWords is the business-filler vocabulary: words so common in company
// names that they carry no distinguishing signal.
var fillerWords = []string{
	"software", "industries", "industry", "logistics", "technologies",
	"technology", "tech", "solutions", "system", "systems", "institute",
	"group", "company", "media", "digital", "ventures", "consulting",
	"products", "studios", "healthcare", "multiphysics", "financial",
	"commerce", "cloud", "platform", "platforms", "video", "music",
	"entertainment", "hosting", "rd", "r", "d", "research", "contextual",
	"management", "electronics", "conversational", "international",
	"information", "info",
}

// subsidiaryMarkers are the words that signal a parent/holding relationship
// inside a name ("Acme, acquired by MegaCorp").
var subsidiaryMarkers = []string{
	"acquired", "former", "formerly", "erstwhile", "subsidiary", "now",
	"part", "by",
}

// removeBigrams lists two-token sequences that are extraneous only when
// adjacent: both tokens are deleted ("open source").
var removeBigrams = map[string]string{
	"open": "source",
}

// mergeBigrams lists two-token sequences whose words are filler on their own
// but form a real name together: the pair is merged into one token so the
// filler pass cannot strip them ("Group Commerce" -> "groupcommerce").
var mergeBigrams = map[string]string{
	"group": "commerce",
}

// Overrides extends the built-in word lists from a YAML file. All entries
// are additive; there is no way to un-list a built-in word.
type Overrides struct {
	Stopwords         []string          `yaml:"stopwords"`
	LegalTerms        []string          `yaml:"legal_terms"`
	GeoTerms          []string          `yaml:"geo_terms"`
	FillerWords       []string          `yaml:"filler_words"`
	SubsidiaryMarkers []string          `yaml:"subsidiary_markers"`
	RemoveBigrams     map[string]string `yaml:"remove_bigrams"`
	MergeBigrams      map[string]string `yaml:"merge_bigrams"`
}

// LoadOverrides reads a word-list override file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "namematch: read overrides")
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, eris.Wrap(err, "namematch: parse overrides")
	}
	return &ov, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
