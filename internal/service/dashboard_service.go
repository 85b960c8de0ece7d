package service

import (
	"fmt"
	"log"
	"sync/atomic"

	geojson "github.com/paulmach/go.geojson"
	"github.com/samber/lo"

	"github.com/tvdheuvel/incidents-backend-go/internal/aggregate"
	"github.com/tvdheuvel/incidents-backend-go/internal/loader"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/repository"
)

// DatasetSource loads the full dataset from its configured origin.
type DatasetSource func() (*models.Dataset, error)

// FileSource builds a dataset source reading the raw incident CSV and
// zone GeoJSON files directly.
func FileSource(incidentsPath, zonesPath, serviceArea string) DatasetSource {
	return func() (*models.Dataset, error) {
		incidents, types, err := loader.LoadIncidents(incidentsPath, serviceArea)
		if err != nil {
			return nil, err
		}
		zones, err := loader.LoadZones(zonesPath)
		if err != nil {
			return nil, err
		}
		return &models.Dataset{Incidents: incidents, Zones: zones, Types: types}, nil
	}
}

// StoreSource builds a dataset source reading the tables the importer
// wrote to the SQLite store.
func StoreSource(store *repository.IncidentStore) DatasetSource {
	return func() (*models.Dataset, error) {
		incidents, err := store.LoadIncidents()
		if err != nil {
			return nil, err
		}
		zones, err := store.LoadZones()
		if err != nil {
			return nil, err
		}
		types := lo.Uniq(lo.Map(incidents, func(in models.Incident, _ int) string {
			return in.Type
		}))
		return &models.Dataset{Incidents: incidents, Zones: zones, Types: types}, nil
	}
}

// FeasibilityResult is the answer to a feasibility probe: whether the
// requested triple is supported, and the coerced dimensions a UI may
// fall back to when it is not.
type FeasibilityResult struct {
	Feasible bool   `json:"feasible"`
	Agg      string `json:"agg"`
	Group    string `json:"group"`
}

// DashboardService owns the in-memory dataset and serves the
// aggregations the dashboard UI requests on every filter change. The
// dataset is immutable; Reload swaps the pointer atomically so
// in-flight aggregations keep their consistent view.
type DashboardService struct {
	source  DatasetSource
	dataset atomic.Pointer[models.Dataset]
}

// NewDashboardService loads the dataset once and returns the service.
func NewDashboardService(source DatasetSource) (*DashboardService, error) {
	svc := &DashboardService{source: source}
	if err := svc.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return svc, nil
}

// Dataset returns the current dataset view.
func (s *DashboardService) Dataset() *models.Dataset {
	return s.dataset.Load()
}

// Reload re-reads the dataset from its source and swaps it in.
func (s *DashboardService) Reload() error {
	ds, err := s.source()
	if err != nil {
		return err
	}
	s.dataset.Store(ds)
	log.Printf("[Dashboard] Dataset loaded: %d incidents, %d zones, %d types",
		len(ds.Incidents), len(ds.Zones), len(ds.Types))
	return nil
}

// TimeSeries runs the time-series aggregation and assigns palette
// colors to grouped series.
func (s *DashboardService) TimeSeries(req models.TimeSeriesRequest) (*models.TimeSeriesResult, error) {
	result, err := aggregate.TimeSeries(s.Dataset(), req)
	if err != nil {
		return nil, err
	}

	if result.Grouped && len(result.Series) > 0 {
		colors, n := aggregate.Colors(len(result.Series))
		for i := range result.Series {
			result.Series[i].Color = colors[i%n]
		}
	}
	return result, nil
}

// Choropleth runs the per-zone aggregation for the map.
func (s *DashboardService) Choropleth(req models.ChoroplethRequest) (*geojson.FeatureCollection, error) {
	return aggregate.Choropleth(s.Dataset(), req)
}

// IncidentTypes returns the distinct incident types in load order.
func (s *DashboardService) IncidentTypes() []string {
	return s.Dataset().Types
}

// Feasibility checks a pattern/unit/group triple against the
// supported-combination table and proposes coerced defaults for the
// infeasible dimensions.
func (s *DashboardService) Feasibility(pattern, agg, group string) (*FeasibilityResult, error) {
	p := aggregate.Pattern(pattern)
	a := aggregate.AggUnit(agg)
	g := aggregate.GroupBy(group)
	if group == "" {
		g = aggregate.GroupNone
	}

	if aggregate.Feasible(p, a, g) {
		return &FeasibilityResult{Feasible: true, Agg: string(a), Group: string(g)}, nil
	}

	coercedAgg := a
	if !aggregate.Feasible(p, a, aggregate.GroupNone) {
		def, err := aggregate.DefaultAgg(p)
		if err != nil {
			return nil, err
		}
		coercedAgg = def
	}
	coercedGroup := g
	if !aggregate.Feasible(p, coercedAgg, g) {
		def, err := aggregate.DefaultGroup(p)
		if err != nil {
			return nil, err
		}
		coercedGroup = def
	}

	return &FeasibilityResult{
		Feasible: false,
		Agg:      string(coercedAgg),
		Group:    string(coercedGroup),
	}, nil
}

// SliderParams returns the time-slider widget parameters for the
// given pattern.
func (s *DashboardService) SliderParams(pattern string) (models.SliderParams, error) {
	unit, err := aggregate.SliderUnit(aggregate.Pattern(pattern))
	if err != nil {
		return models.SliderParams{}, err
	}
	return aggregate.SliderParams(unit)
}
