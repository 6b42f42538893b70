package uaparser

import (
	"errors"
	"fmt"
	"regexp/syntax"
)

// MaxRepetitions is the largest number of repetition operators a pattern may
// contain before it is considered unsafe.
const MaxRepetitions = 25

// CheckPattern reports whether expr is free of nested unbounded repetition
// (star height above one) and stays under MaxRepetitions repetition operators.
// RE2 already guarantees linear matching, but the check keeps rule sets
// portable to backtracking engines and flags patterns that would explode
// there. It is meant for tests and rule loading, not for the hot path.
func CheckPattern(expr string) error {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return errors.Join(ErrInvalidPattern, err)
	}
	reps := 0
	if height := starHeight(re, &reps); height > 1 {
		return fmt.Errorf("%w: %q nests unbounded repetition", ErrUnsafePattern, expr)
	}
	if reps > MaxRepetitions {
		return fmt.Errorf("%w: %q has %d repetitions", ErrUnsafePattern, expr, reps)
	}
	return nil
}

// CheckRuleSet runs CheckPattern over every rule of s and joins all failures.
func CheckRuleSet(s RuleSet) error {
	var errs []error
	for _, cat := range Categories {
		for i, r := range s[cat] {
			if r.Pattern == nil {
				continue
			}
			if err := CheckPattern(r.Pattern.String()); err != nil {
				errs = append(errs, fmt.Errorf("%s rule %d: %w", cat, i, err))
			}
		}
	}
	return errors.Join(errs...)
}

func starHeight(re *syntax.Regexp, reps *int) int {
	height := 0
	for _, sub := range re.Sub {
		if h := starHeight(sub, reps); h > height {
			height = h
		}
	}
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus:
		*reps++
		height++
	case syntax.OpRepeat:
		*reps++
		if re.Max == -1 {
			height++
		}
	}
	return height
}
