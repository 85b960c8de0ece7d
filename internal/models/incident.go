package models

// Weekdays holds the short weekday names in their categorical order.
// The loader maps native (Dutch) day names onto these so that sorting
// by weekday never falls back to alphabetical order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Months holds the short month names in their categorical order.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WeekdayRank returns the position of a short weekday name in the
// categorical order, or -1 if the name is unknown.
func WeekdayRank(name string) int {
	for i, d := range Weekdays {
		if d == name {
			return i
		}
	}
	return -1
}

// MonthRank returns the position of a short month name in the
// categorical order, or -1 if the name is unknown.
func MonthRank(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

// Incident is one normalized incident record. String time parts are
// zero-padded so lexical order matches natural order; DayName and Month
// carry the ordered categorical values from Weekdays and Months.
type Incident struct {
	ID       string  `db:"id" json:"id"`
	Type     string  `db:"type" json:"type"`
	Date     string  `db:"date" json:"date"` // YYYY-MM-DD
	Year     int     `db:"year" json:"year"`
	Month    string  `db:"month" json:"month"`       // Jan..Dec
	DayNr    string  `db:"day_nr" json:"dayNr"`      // 01..31
	WeekNr   string  `db:"week_nr" json:"weekNr"`    // 01..53
	DayName  string  `db:"day_name" json:"dayName"`  // Mon..Sun
	Hour     string  `db:"hour" json:"hour"`         // 00..23
	Priority int     `db:"priority" json:"priority"` // 1 = highest
	ZoneID   string  `db:"zone_id" json:"zoneId"`
	X        float64 `db:"x" json:"x"` // planar (RD New) coordinates
	Y        float64 `db:"y" json:"y"`
}

// Dataset is the process-wide read-only state: the normalized incident
// and zone tables plus the distinct incident types in load order.
// Aggregations derive filtered views and never mutate it.
type Dataset struct {
	Incidents []Incident
	Zones     []Zone
	Types     []string
}
