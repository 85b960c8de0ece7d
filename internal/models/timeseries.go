package models

import "encoding/json"

// TimeSeriesRequest represents filter parameters for the time-series
// aggregation. Types and Zones bind from repeated or comma-separated
// query values; an empty Zones means no map selection is active.
type TimeSeriesRequest struct {
	Pattern string   `form:"pattern"` // Daily, Weekly, Yearly
	Agg     string   `form:"agg"`     // Hour, Day, Week, Month
	Group   string   `form:"group"`   // None, Type, Day of Week, Year
	Types   []string `form:"types"`
	Zones   []string `form:"zones"`
}

// ChoroplethRequest represents filter parameters for the per-zone map
// aggregation. Value is the active time-slider position; -1 means the
// slider is inactive and no time filter applies.
type ChoroplethRequest struct {
	Types []string `form:"types"`
	Unit  string   `form:"unit"`  // hour, day, month
	Value int      `form:"value"` // slider position, -1 = inactive
}

// CategoryKey is one x-axis category. Composite aggregations carry one
// component per participating column (e.g. ["Mon", "08"] for
// hour-within-week); scalar aggregations carry a single component.
type CategoryKey []string

// MarshalJSON emits a bare string for scalar keys and an array for
// composite keys, matching the nested-category factors the chart
// framework expects.
func (k CategoryKey) MarshalJSON() ([]byte, error) {
	if len(k) == 1 {
		return json.Marshal(k[0])
	}
	return json.Marshal([]string(k))
}

// Series is one plotted line: parallel x/y sequences, the group value
// as label when grouping is active, and an assigned palette color.
type Series struct {
	X     []CategoryKey `json:"x"`
	Y     []float64     `json:"y"`
	Label string        `json:"label,omitempty"`
	Color string        `json:"color,omitempty"`
}

// TimeSeriesResult is the outcome of one time-series aggregation: a
// single unlabeled series when no grouping was requested, one labeled
// series per group value otherwise. Zero matching rows yield zero
// series, which is a valid terminal state. YMin and YMax span the y
// values of all series so the chart can fix its axis range.
type TimeSeriesResult struct {
	Series  []Series `json:"series"`
	Grouped bool     `json:"grouped"`
	YMin    float64  `json:"yMin"`
	YMax    float64  `json:"yMax"`
}

// Labels returns the group labels of the result, empty when the
// aggregation was not grouped.
func (r *TimeSeriesResult) Labels() []string {
	if !r.Grouped {
		return nil
	}
	labels := make([]string, 0, len(r.Series))
	for _, s := range r.Series {
		labels = append(labels, s.Label)
	}
	return labels
}

// SliderParams describes the time-slider widget for one time unit.
type SliderParams struct {
	Unit  string `json:"unit"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Step  int    `json:"step"`
	Value int    `json:"value"`
	Title string `json:"title"`
}

// ImportRun records one execution of the importer.
type ImportRun struct {
	ID        string `db:"id" json:"id"`
	Source    string `db:"source" json:"source"`
	Incidents int    `db:"incidents" json:"incidents"`
	Zones     int    `db:"zones" json:"zones"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}
