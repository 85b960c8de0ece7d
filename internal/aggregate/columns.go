package aggregate

import (
	"strconv"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// Pattern is the length of the repeating time pattern under
// investigation.
type Pattern string

// AggUnit is the time unit incidents are aggregated by.
type AggUnit string

// GroupBy is the dimension the aggregated series are split by.
type GroupBy string

const (
	PatternDaily  Pattern = "Daily"
	PatternWeekly Pattern = "Weekly"
	PatternYearly Pattern = "Yearly"

	AggHour  AggUnit = "Hour"
	AggDay   AggUnit = "Day"
	AggWeek  AggUnit = "Week"
	AggMonth AggUnit = "Month"

	GroupNone      GroupBy = "None"
	GroupType      GroupBy = "Type"
	GroupDayOfWeek GroupBy = "Day of Week"
	GroupYear      GroupBy = "Year"
)

// column describes one derived incident column: how to read its value
// from a record and how to rank two values. A nil rank means lexical
// order, which is correct for the zero-padded columns.
type column struct {
	value func(in *models.Incident) string
	rank  func(v string) int
}

var columns = map[string]column{
	"date":     {value: func(in *models.Incident) string { return in.Date }},
	"year":     {value: func(in *models.Incident) string { return strconv.Itoa(in.Year) }},
	"week":     {value: func(in *models.Incident) string { return in.WeekNr }},
	"hour":     {value: func(in *models.Incident) string { return in.Hour }},
	"day_nr":   {value: func(in *models.Incident) string { return in.DayNr }},
	"day_name": {value: func(in *models.Incident) string { return in.DayName }, rank: models.WeekdayRank},
	"month":    {value: func(in *models.Incident) string { return in.Month }, rank: models.MonthRank},
	"type":     {value: func(in *models.Incident) string { return in.Type }},
}

// patternColumns maps a pattern length to the columns identifying one
// pattern instance.
var patternColumns = map[Pattern][]string{
	PatternDaily:  {"date"},
	PatternWeekly: {"year", "week"},
	PatternYearly: {"year"},
}

// aggColumns maps an aggregation unit to its natural column.
var aggColumns = map[AggUnit][]string{
	AggHour:  {"hour"},
	AggDay:   {"day_name"},
	AggWeek:  {"week"},
	AggMonth: {"month"},
}

// groupColumn maps a grouping dimension to its column.
var groupColumn = map[GroupBy]string{
	GroupType:      "type",
	GroupDayOfWeek: "day_name",
	GroupYear:      "year",
}

// resolveColumns returns the aggregation and pattern column sets for a
// unit/pattern combination. When the combination spans more than one
// natural unit, the aggregation columns expand so categories cannot
// alias across pattern boundaries (hour 08 on Monday stays distinct
// from hour 08 on Tuesday within a weekly pattern).
func resolveColumns(agg AggUnit, pattern Pattern) (aggCols, patternCols []string) {
	aggCols = aggColumns[agg]
	patternCols = patternColumns[pattern]

	switch {
	case agg == AggHour && pattern == PatternWeekly:
		aggCols = []string{"day_name", "hour"}
	case agg == AggHour && pattern == PatternYearly:
		aggCols = []string{"month", "day_nr", "hour"}
	case agg == AggDay && pattern == PatternWeekly:
		patternCols = []string{"year", "week"}
	case agg == AggDay && pattern == PatternYearly:
		aggCols = []string{"month", "day_nr"}
	}
	return aggCols, patternCols
}

// columnValues reads the listed column values from an incident.
func columnValues(in *models.Incident, cols []string) models.CategoryKey {
	key := make(models.CategoryKey, len(cols))
	for i, name := range cols {
		key[i] = columns[name].value(in)
	}
	return key
}

// lessKeys compares two composite keys component-wise using each
// column's categorical order, falling back to lexical comparison.
func lessKeys(a, b models.CategoryKey, cols []string) bool {
	for i, name := range cols {
		if i >= len(a) || i >= len(b) {
			break
		}
		if a[i] == b[i] {
			continue
		}
		if rank := columns[name].rank; rank != nil {
			ra, rb := rank(a[i]), rank(b[i])
			if ra >= 0 && rb >= 0 {
				return ra < rb
			}
		}
		return a[i] < b[i]
	}
	return false
}

// lessValues compares two scalar values of one column.
func lessValues(a, b, col string) bool {
	return lessKeys(models.CategoryKey{a}, models.CategoryKey{b}, []string{col})
}
