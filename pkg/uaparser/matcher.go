package uaparser

// RuleTable is an ordered list of rules for a single category.
// Order is the only precedence mechanism: the first matching rule wins.
type RuleTable []Rule

// Classify runs the table against ua and returns the fields extracted by the
// first matching rule. When nothing matches it returns empty Fields and false.
// A matching rule with an empty template still stops the search.
func (t RuleTable) Classify(ua string) (Fields, bool) {
	for _, r := range t {
		if groups, ok := r.Match(ua); ok {
			return Extract(groups, r.Template), true
		}
	}
	return Fields{}, false
}
