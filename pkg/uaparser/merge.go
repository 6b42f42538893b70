package uaparser

// RuleSet maps categories to their rule tables. A RuleSet may be partial
// (an extension bundle covering only some categories) or complete (the
// effective tables of a Parser).
type RuleSet map[Category]RuleTable

// Clone returns a copy of s whose tables can be modified without touching s.
// Unknown categories are dropped.
func (s RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(s))
	for cat, table := range s {
		if !cat.Valid() {
			continue
		}
		out[cat] = append(RuleTable(nil), table...)
	}
	return out
}

// Merge combines rule sets left to right. Within a category, the rules of a
// later set are appended after those of earlier sets, each keeping its
// internal order. Unknown categories are ignored.
func Merge(sets ...RuleSet) RuleSet {
	out := make(RuleSet)
	for _, s := range sets {
		for _, cat := range Categories {
			table, ok := s[cat]
			if !ok {
				continue
			}
			// out[cat] starts nil, so the first append always copies.
			out[cat] = append(out[cat], table...)
		}
	}
	return out
}

// Override returns base with every category present in ext replaced
// wholesale by ext's table. Neither argument is modified and unknown
// categories in ext are ignored.
func Override(base, ext RuleSet) RuleSet {
	out := base.Clone()
	for _, cat := range Categories {
		if table, ok := ext[cat]; ok {
			out[cat] = append(RuleTable(nil), table...)
		}
	}
	return out
}
