package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
)

// Column names of the incident export file.
const (
	colID       = "dim_incident_id"
	colType     = "dim_incident_incident_type"
	colDate     = "dim_datum_datum"
	colYear     = "dim_datum_jaar"
	colMonthNr  = "dim_datum_maand_nr"
	colDayNr    = "dim_datum_maand_dag_nr"
	colWeekNr   = "dim_datum_week_nr"
	colDayName  = "dim_datum_dag_naam_nl"
	colPriority = "dim_prioriteit_prio"
	colHour     = "dim_tijd_uur"
	colZone     = "hub_vak_bk"
	colX        = "st_x"
	colY        = "st_y"
)

var requiredColumns = []string{
	colID, colType, colDate, colYear, colMonthNr, colDayNr, colWeekNr,
	colDayName, colPriority, colHour, colZone, colX, colY,
}

// dutchWeekdays maps the native day names of the export onto the
// ordered short names used everywhere else.
var dutchWeekdays = map[string]string{
	"Maandag":   "Mon",
	"Dinsdag":   "Tue",
	"Woensdag":  "Wed",
	"Donderdag": "Thu",
	"Vrijdag":   "Fri",
	"Zaterdag":  "Sat",
	"Zondag":    "Sun",
}

// LoadIncidents reads the semicolon-separated incident export and
// returns the normalized incident table plus the distinct incident
// types in load order. Rows without a valid zone id, with a zone id
// outside the service area prefix, or with malformed required fields
// are dropped silently.
func LoadIncidents(path, serviceArea string) ([]models.Incident, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open incident file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read incident header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("incident file misses required column %q", name)
		}
	}

	var incidents []models.Incident
	var types []string
	dropped := 0

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, no partial-row recovery.
			dropped++
			continue
		}

		in, ok := parseIncident(record, idx, serviceArea)
		if !ok {
			dropped++
			continue
		}
		incidents = append(incidents, in)
		types = append(types, in.Type)
	}

	log.Printf("[Loader] Loaded %d incidents from %s (%d rows dropped)",
		len(incidents), path, dropped)

	return incidents, lo.Uniq(types), nil
}

func parseIncident(record []string, idx map[string]int, serviceArea string) (models.Incident, bool) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	zoneID, ok := normalizeZoneID(field(colZone))
	if !ok || !strings.HasPrefix(zoneID, serviceArea) {
		return models.Incident{}, false
	}

	year, err := strconv.Atoi(field(colYear))
	if err != nil {
		return models.Incident{}, false
	}
	monthNr, err := strconv.Atoi(field(colMonthNr))
	if err != nil || monthNr < 1 || monthNr > 12 {
		return models.Incident{}, false
	}
	dayNr, err := strconv.Atoi(field(colDayNr))
	if err != nil {
		return models.Incident{}, false
	}
	weekNr, err := strconv.Atoi(field(colWeekNr))
	if err != nil {
		return models.Incident{}, false
	}
	hour, err := strconv.Atoi(field(colHour))
	if err != nil || hour < 0 || hour > 23 {
		return models.Incident{}, false
	}
	dayName, ok := dutchWeekdays[field(colDayName)]
	if !ok {
		return models.Incident{}, false
	}

	id := field(colID)
	incType := field(colType)
	date := field(colDate)
	if id == "" || incType == "" || date == "" {
		return models.Incident{}, false
	}

	// Priority and coordinates are informational; missing values do not
	// invalidate the row.
	priority, _ := strconv.Atoi(field(colPriority))
	x, _ := strconv.ParseFloat(field(colX), 64)
	y, _ := strconv.ParseFloat(field(colY), 64)

	return models.Incident{
		ID:       id,
		Type:     incType,
		Date:     date,
		Year:     year,
		Month:    models.Months[monthNr-1],
		DayNr:    fmt.Sprintf("%02d", dayNr),
		WeekNr:   fmt.Sprintf("%02d", weekNr),
		DayName:  dayName,
		Hour:     fmt.Sprintf("%02d", hour),
		Priority: priority,
		ZoneID:   zoneID,
		X:        x,
		Y:        y,
	}, true
}

// normalizeZoneID converts a raw zone code to its canonical integer
// string form. The export stores the code as a float ("13078001.0").
func normalizeZoneID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(int64(v), 10), true
}
