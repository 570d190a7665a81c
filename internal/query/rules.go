package query

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
)

// RuleParser is the deterministic keyword-grammar parser. It is a pure
// function over the query text: no I/O, always succeeds, identical input
// yields identical output. It is both the default strategy and the ground
// truth fallback behind the language-model parser.
type RuleParser struct{}

// NewRuleParser creates the rule-based parser.
func NewRuleParser() *RuleParser { return &RuleParser{} }

// defaultCheapCeiling is the max price assumed when the query only says
// "cheap"/"affordable" without a number.
const defaultCheapCeiling = 5000

// largeCapacityFloor is the min capacity assumed for "large"/"big" queries.
const largeCapacityFloor = 100

var (
	reCoworking = regexp.MustCompile(`cowork|co-work|shared\s*office|hot\s*desk|office\s*space`)
	reIncubator = regexp.MustCompile(`incubat|accelerat|startup\s*hub|innovation`)

	reCapacity = regexp.MustCompile(`(\d+)\s*(?:seats?|people|persons?|members?|desks?|capacity)`)
	rePrice    = regexp.MustCompile(`(\d+)\s*(?:rs|rupees?|inr|₹|price|budget)`)
	reCheap    = regexp.MustCompile(`cheap|affordable|budget|low.?cost`)
	reLarge    = regexp.MustCompile(`\b(?:large|big)\b`)

	reZeroEquity = regexp.MustCompile(`zero.?equity|no.?equity|equity.?free`)
	reWiFi       = regexp.MustCompile(`wifi|wi-fi|internet`)
	reMeeting    = regexp.MustCompile(`meeting.?room|conference|board.?room`)
)

// schemePatterns are tried in order; the first category to match wins.
// Reordering changes results for ambiguous tags, so the order is fixed: the
// generic government/state category only applies when nothing more specific
// matched.
var schemePatterns = []struct {
	re       *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`atal|\baic\b|\baim\b`), domain.SchemeAIM},
	{regexp.MustCompile(`sisfs|seed.?fund`), domain.SchemeSISFS},
	{regexp.MustCompile(`\bdst\b|nstedb|nidhi|\btbi\b`), domain.SchemeDST},
	{regexp.MustCompile(`government|govt|\bstate\b`), domain.SchemeState},
}

// cityAliases maps query substrings to canonical city names. Scanned in
// declaration order; the first hit wins and scanning stops, so at most one
// city is ever assigned.
var cityAliases = []struct {
	alias     string
	canonical string
}{
	{"mumbai", "Mumbai"}, {"bombay", "Mumbai"},
	{"bangalore", "Bangalore"}, {"bengaluru", "Bangalore"},
	{"new delhi", "Delhi"}, {"delhi", "Delhi"},
	{"hyderabad", "Hyderabad"}, {"pune", "Pune"},
	{"chennai", "Chennai"}, {"madras", "Chennai"},
	{"ahmedabad", "Ahmedabad"}, {"kolkata", "Kolkata"}, {"calcutta", "Kolkata"},
	{"jaipur", "Jaipur"}, {"kochi", "Kochi"}, {"cochin", "Kochi"},
	{"goa", "Goa"}, {"lucknow", "Lucknow"}, {"noida", "Noida"},
	{"gurugram", "Gurugram"}, {"gurgaon", "Gurugram"},
	{"chandigarh", "Chandigarh"}, {"indore", "Indore"}, {"nagpur", "Nagpur"},
	{"bhopal", "Bhopal"}, {"patna", "Patna"}, {"varanasi", "Varanasi"},
	{"bhubaneswar", "Bhubaneswar"}, {"coimbatore", "Coimbatore"},
	{"surat", "Surat"}, {"kanpur", "Kanpur"},
	{"thiruvananthapuram", "Thiruvananthapuram"}, {"trivandrum", "Thiruvananthapuram"},
	{"kozhikode", "Kozhikode"}, {"guwahati", "Guwahati"}, {"raipur", "Raipur"},
	{"mohali", "Mohali"},
	{"visakhapatnam", "Visakhapatnam"}, {"vizag", "Visakhapatnam"},
}

// residualRemovals are the token classes consumed by the structured steps.
// Whatever the removals leave behind becomes the residual keyword signal.
var residualRemovals = []*regexp.Regexp{
	regexp.MustCompile(`cowork\w*`),
	regexp.MustCompile(`co-work\w*`),
	regexp.MustCompile(`incubat\w*`),
	regexp.MustCompile(`accelerat\w*`),
	regexp.MustCompile(`spaces?`),
	regexp.MustCompile(`office`),
	regexp.MustCompile(`hub`),
	regexp.MustCompile(`\bin\b`),
	regexp.MustCompile(`\bwith\b`),
	regexp.MustCompile(`\band\b`),
	regexp.MustCompile(`\bnear\b`),
	regexp.MustCompile(`\baround\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bthe\b`),
	regexp.MustCompile(`\ba\b`),
	regexp.MustCompile(`seat\w*`),
	regexp.MustCompile(`people`),
	regexp.MustCompile(`person\w*`),
	regexp.MustCompile(`desk\w*`),
	regexp.MustCompile(`capacity`),
	regexp.MustCompile(`cheap`),
	regexp.MustCompile(`affordable`),
	regexp.MustCompile(`budget`),
	regexp.MustCompile(`meeting\s*room\w*`),
	regexp.MustCompile(`conference`),
	regexp.MustCompile(`wifi`),
	regexp.MustCompile(`zero\s*equity`),
	regexp.MustCompile(`government`),
	regexp.MustCompile(`govt`),
	regexp.MustCompile(`\d+`),
}

// Parse maps query text to filters through a fixed sequence of pattern
// steps. Each step owns its fields; later steps never overwrite a field an
// earlier step already set. Unmatched text yields an empty (but valid)
// result, so this parser cannot fail.
func (p *RuleParser) Parse(_ context.Context, text string) (domain.ParsedFilters, error) {
	q := Normalize(text)
	var parsed domain.ParsedFilters
	if q == "" {
		return parsed, nil
	}

	// 1. Kind. Coworking patterns are checked first; a query carrying both
	// signals resolves to coworking.
	switch {
	case reCoworking.MatchString(q):
		parsed.Kind = domain.KindCoworking
	case reIncubator.MatchString(q):
		parsed.Kind = domain.KindIncubator
	}

	// 2. City: first alias hit in table order.
	var matchedAlias string
	for _, c := range cityAliases {
		if strings.Contains(q, c.alias) {
			parsed.City = c.canonical
			matchedAlias = c.alias
			break
		}
	}

	// 3. Capacity: first "<n> seats"-like occurrence.
	if m := reCapacity.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			parsed.MinCapacity = n
		}
	}

	// 4. Price: first "<n> rs"-like occurrence, else the cheap default.
	if m := rePrice.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			parsed.MaxPrice = n
		}
	}
	if parsed.MaxPrice == 0 && reCheap.MatchString(q) {
		parsed.MaxPrice = defaultCheapCeiling
	}

	// 5. "large"/"big" implies a capacity floor unless step 3 already set one.
	if parsed.MinCapacity == 0 && reLarge.MatchString(q) {
		parsed.MinCapacity = largeCapacityFloor
	}

	// 6. Boolean features, tested independently.
	if reZeroEquity.MatchString(q) {
		parsed.ZeroEquity = true
	}
	if reWiFi.MatchString(q) {
		parsed.WiFi = true
	}
	if reMeeting.MatchString(q) {
		parsed.MeetingRooms = true
	}

	// 7. Government scheme: first matching category wins.
	for _, sp := range schemePatterns {
		if sp.re.MatchString(q) {
			parsed.GovernmentScheme = sp.category
			break
		}
	}

	// 8. Residual: strip everything the steps above consumed; what survives
	// is the keyword fallback for name/area matching.
	remaining := q
	for _, re := range residualRemovals {
		remaining = re.ReplaceAllString(remaining, "")
	}
	if matchedAlias != "" {
		// remaining is already lowercase, so the alias and the lowered
		// canonical name cover every spelling the query could have used.
		remaining = strings.ReplaceAll(remaining, matchedAlias, "")
		remaining = strings.ReplaceAll(remaining, strings.ToLower(parsed.City), "")
	}
	remaining = Normalize(remaining)
	if len(remaining) > 2 {
		parsed.FreeTextResidual = remaining
	}

	return parsed, nil
}
