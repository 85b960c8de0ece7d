package aggregate

import (
	"sort"
	"strings"

	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/stats"
)

// keySep joins composite key components into map keys. The unit
// separator cannot occur in any column value.
const keySep = "\x1f"

func joinKey(key models.CategoryKey) string {
	return strings.Join(key, keySep)
}

// TimeSeries reshapes the incident table into per-category mean counts
// for the requested pattern, aggregation unit and grouping dimension.
//
// The mean is taken across all pattern instances observed in the
// unfiltered table (all dates for a daily pattern, all year-weeks for
// a weekly one), with categories the filtered subset never hits
// counted as zero. Categories that occur nowhere in the unfiltered
// table are not represented at all.
func TimeSeries(ds *models.Dataset, req models.TimeSeriesRequest) (*models.TimeSeriesResult, error) {
	pattern := Pattern(req.Pattern)
	agg := AggUnit(req.Agg)
	group := GroupBy(req.Group)
	if req.Group == "" {
		group = GroupNone
	}

	if err := validate(pattern, agg, group); err != nil {
		return nil, err
	}
	aggCols, patternCols := resolveColumns(agg, pattern)

	grouped := group != GroupNone
	result := &models.TimeSeriesResult{Series: []models.Series{}, Grouped: grouped}

	filtered := filterIncidents(ds, req.Types, req.Zones)
	if len(filtered) == 0 {
		return result, nil
	}

	// Complete category index, seeded from the unfiltered table so the
	// mean sees zero counts instead of missing cells.
	aggKeys := make(map[string]models.CategoryKey)
	patternSeen := make(map[string]bool)
	for i := range ds.Incidents {
		in := &ds.Incidents[i]
		ak := columnValues(in, aggCols)
		aggKeys[joinKey(ak)] = ak
		patternSeen[joinKey(columnValues(in, patternCols))] = true
	}
	patternKeys := make([]string, 0, len(patternSeen))
	for pk := range patternSeen {
		patternKeys = append(patternKeys, pk)
	}

	// Count incidents per (group, category, pattern instance) cell.
	gcol := groupColumn[group]
	counts := make(map[string]int)
	groupSeen := make(map[string]bool)
	for _, in := range filtered {
		g := ""
		if gcol != "" {
			g = columns[gcol].value(in)
			if g == "" {
				continue
			}
		}
		groupSeen[g] = true
		cell := g + keySep + joinKey(columnValues(in, aggCols)) +
			keySep + joinKey(columnValues(in, patternCols))
		counts[cell]++
	}

	// Natural/categorical order for the x axis and the group labels.
	orderedAgg := make([]models.CategoryKey, 0, len(aggKeys))
	for _, ak := range aggKeys {
		orderedAgg = append(orderedAgg, ak)
	}
	sort.Slice(orderedAgg, func(i, j int) bool {
		return lessKeys(orderedAgg[i], orderedAgg[j], aggCols)
	})

	groupValues := make([]string, 0, len(groupSeen))
	for g := range groupSeen {
		groupValues = append(groupValues, g)
	}
	if gcol != "" {
		sort.Slice(groupValues, func(i, j int) bool {
			return lessValues(groupValues[i], groupValues[j], gcol)
		})
	}

	for _, g := range groupValues {
		series := models.Series{
			X: make([]models.CategoryKey, 0, len(orderedAgg)),
			Y: make([]float64, 0, len(orderedAgg)),
		}
		if grouped {
			series.Label = g
		}
		perPattern := make([]float64, len(patternKeys))
		for _, ak := range orderedAgg {
			prefix := g + keySep + joinKey(ak) + keySep
			for i, pk := range patternKeys {
				perPattern[i] = float64(counts[prefix+pk])
			}
			series.X = append(series.X, ak)
			series.Y = append(series.Y, stats.Mean(perPattern))
		}
		result.Series = append(result.Series, series)
	}

	var allY []float64
	for _, s := range result.Series {
		allY = append(allY, s.Y...)
	}
	result.YMin = stats.Min(allY)
	result.YMax = stats.Max(allY)

	return result, nil
}

// filterIncidents derives the filtered view for the included types and
// the optional map-selected zone subset.
func filterIncidents(ds *models.Dataset, types, zones []string) []*models.Incident {
	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}
	var zoneSet map[string]bool
	if len(zones) > 0 {
		zoneSet = make(map[string]bool, len(zones))
		for _, z := range zones {
			zoneSet[z] = true
		}
	}

	var filtered []*models.Incident
	for i := range ds.Incidents {
		in := &ds.Incidents[i]
		if !typeSet[in.Type] {
			continue
		}
		if zoneSet != nil && !zoneSet[in.ZoneID] {
			continue
		}
		filtered = append(filtered, in)
	}
	return filtered
}
