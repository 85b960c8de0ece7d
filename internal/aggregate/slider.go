package aggregate

import (
	"fmt"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// TimeUnit is the granularity of the time slider.
type TimeUnit string

const (
	UnitHour  TimeUnit = "hour"
	UnitDay   TimeUnit = "day"
	UnitMonth TimeUnit = "month"
)

// patternSliderUnit maps a pattern length to the slider granularity
// that makes sense for scrubbing through it.
var patternSliderUnit = map[Pattern]TimeUnit{
	PatternDaily:  UnitHour,
	PatternWeekly: UnitDay,
	PatternYearly: UnitMonth,
}

// SliderUnit returns the slider granularity for a pattern.
func SliderUnit(pattern Pattern) (TimeUnit, error) {
	unit, ok := patternSliderUnit[pattern]
	if !ok {
		return "", fmt.Errorf("%w: pattern %q", ErrUnsupportedCombination, pattern)
	}
	return unit, nil
}

// SliderParams returns the widget parameters for a slider unit.
func SliderParams(unit TimeUnit) (models.SliderParams, error) {
	switch unit {
	case UnitHour:
		return models.SliderParams{Unit: string(unit), Start: 0, End: 23, Step: 1, Value: 0, Title: "Hour of day"}, nil
	case UnitDay:
		return models.SliderParams{Unit: string(unit), Start: 1, End: 7, Step: 1, Value: 1, Title: "Day of week"}, nil
	case UnitMonth:
		return models.SliderParams{Unit: string(unit), Start: 1, End: 12, Step: 1, Value: 1, Title: "Month of year"}, nil
	default:
		return models.SliderParams{}, fmt.Errorf("%w: slider unit %q", ErrUnsupportedCombination, unit)
	}
}

// FilterSlider keeps the incidents matching one slider position:
// hour of day (0-23), day of week (1=Mon..7=Sun) or month (1-12).
func FilterSlider(incidents []*models.Incident, unit TimeUnit, value int) ([]*models.Incident, error) {
	var match func(in *models.Incident) bool
	switch unit {
	case UnitHour:
		want := fmt.Sprintf("%02d", value)
		match = func(in *models.Incident) bool { return in.Hour == want }
	case UnitDay:
		match = func(in *models.Incident) bool { return models.WeekdayRank(in.DayName)+1 == value }
	case UnitMonth:
		match = func(in *models.Incident) bool { return models.MonthRank(in.Month)+1 == value }
	default:
		return nil, fmt.Errorf("%w: slider unit %q", ErrUnsupportedCombination, unit)
	}

	var out []*models.Incident
	for _, in := range incidents {
		if match(in) {
			out = append(out, in)
		}
	}
	return out, nil
}
