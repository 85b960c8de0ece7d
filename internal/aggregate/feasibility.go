package aggregate

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrUnsupportedCombination signals a pattern/unit/group request
// outside the supported-combination table.
var ErrUnsupportedCombination = errors.New("unsupported aggregation combination")

// feasibleCombos is the supported-combination table: which aggregation
// units and grouping dimensions are valid within each pattern length.
var feasibleCombos = map[Pattern]struct {
	Agg   []AggUnit
	Group []GroupBy
}{
	PatternDaily: {
		Agg:   []AggUnit{AggHour},
		Group: []GroupBy{GroupType, GroupDayOfWeek, GroupYear, GroupNone},
	},
	PatternWeekly: {
		Agg:   []AggUnit{AggHour, AggDay},
		Group: []GroupBy{GroupType, GroupYear, GroupNone},
	},
	PatternYearly: {
		Agg:   []AggUnit{AggDay, AggWeek, AggMonth},
		Group: []GroupBy{GroupType, GroupYear, GroupNone},
	},
}

// Feasible reports whether a pattern/unit/group triple is in the
// supported-combination table.
func Feasible(pattern Pattern, agg AggUnit, group GroupBy) bool {
	combo, ok := feasibleCombos[pattern]
	if !ok {
		return false
	}
	return lo.Contains(combo.Agg, agg) && lo.Contains(combo.Group, group)
}

// DefaultAgg returns the first supported aggregation unit for a
// pattern, for callers that auto-coerce infeasible requests.
func DefaultAgg(pattern Pattern) (AggUnit, error) {
	combo, ok := feasibleCombos[pattern]
	if !ok {
		return "", fmt.Errorf("%w: pattern %q", ErrUnsupportedCombination, pattern)
	}
	return combo.Agg[0], nil
}

// DefaultGroup returns the fallback grouping dimension for a pattern.
// Grouping is optional, so the fallback is always no grouping.
func DefaultGroup(pattern Pattern) (GroupBy, error) {
	if _, ok := feasibleCombos[pattern]; !ok {
		return "", fmt.Errorf("%w: pattern %q", ErrUnsupportedCombination, pattern)
	}
	return GroupNone, nil
}

// validate rejects requests outside the supported tables with a
// configuration error naming the offending dimension.
func validate(pattern Pattern, agg AggUnit, group GroupBy) error {
	if _, ok := patternColumns[pattern]; !ok {
		return fmt.Errorf("%w: pattern %q", ErrUnsupportedCombination, pattern)
	}
	if _, ok := aggColumns[agg]; !ok {
		return fmt.Errorf("%w: aggregation unit %q", ErrUnsupportedCombination, agg)
	}
	if _, ok := groupColumn[group]; !ok && group != GroupNone {
		return fmt.Errorf("%w: grouping %q", ErrUnsupportedCombination, group)
	}
	if !Feasible(pattern, agg, group) {
		return fmt.Errorf("%w: %s/%s/%s", ErrUnsupportedCombination, pattern, agg, group)
	}
	return nil
}
