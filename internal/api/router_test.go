package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/gt"

	"github.com/tvdheuvel/incidents-backend-go/internal/api"
	"github.com/tvdheuvel/incidents-backend-go/internal/config"
	"github.com/tvdheuvel/incidents-backend-go/internal/models"
	"github.com/tvdheuvel/incidents-backend-go/internal/service"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	source := func() (*models.Dataset, error) {
		return &models.Dataset{
			Incidents: []models.Incident{
				{ID: "1", Type: "Binnenbrand", Date: "2023-01-02", Year: 2023, Month: "Jan",
					DayNr: "02", WeekNr: "01", DayName: "Mon", Hour: "08", ZoneID: "13001"},
				{ID: "2", Type: "Binnenbrand", Date: "2023-01-03", Year: 2023, Month: "Jan",
					DayNr: "03", WeekNr: "01", DayName: "Tue", Hour: "09", ZoneID: "13001"},
			},
			Zones: []models.Zone{
				{ID: "13001", LonLatRing: [][]float64{{4.89, 52.37}, {4.90, 52.37}, {4.90, 52.38}, {4.89, 52.37}}},
			},
			Types: []string{"Binnenbrand"},
		}, nil
	}
	svc, err := service.NewDashboardService(source)
	gt.NoError(t, err)

	cfg := &config.Config{Port: ":0", JWTSecret: "test-secret"}
	return api.SetupRouter(cfg, svc)
}

func doRequest(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := testRouter(t)
	w := doRequest(router, http.MethodGet, "/health", nil)
	gt.Equal(t, w.Code, http.StatusOK)
}

func TestGetTimeSeries(t *testing.T) {
	router := testRouter(t)

	t.Run("DefaultsToDailyHour", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/timeseries", nil)
		gt.Equal(t, w.Code, http.StatusOK)

		var body struct {
			Data models.TimeSeriesResult `json:"data"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		gt.Equal(t, len(body.Data.Series), 1)
		gt.Equal(t, len(body.Data.Series[0].X), 2)
	})

	t.Run("InfeasibleCombinationIsBadRequest", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/timeseries?pattern=Daily&agg=Month", nil)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})
}

func TestGetChoropleth(t *testing.T) {
	router := testRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/choropleth", nil)
	gt.Equal(t, w.Code, http.StatusOK)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	gt.Equal(t, fc.Type, "FeatureCollection")
	gt.Equal(t, len(fc.Features), 1)
}

func TestGetFeasibility(t *testing.T) {
	router := testRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/feasibility?pattern=Yearly&agg=Hour&group=Type", nil)
	gt.Equal(t, w.Code, http.StatusOK)

	var body struct {
		Data service.FeasibilityResult `json:"data"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	gt.False(t, body.Data.Feasible)
	gt.Equal(t, body.Data.Agg, "Day")
}

func TestGetSliderParams(t *testing.T) {
	router := testRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/slider?pattern=Weekly", nil)
	gt.Equal(t, w.Code, http.StatusOK)

	var body struct {
		Data models.SliderParams `json:"data"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	gt.Equal(t, body.Data.Unit, "day")
}

func TestAdminReloadAuth(t *testing.T) {
	router := testRouter(t)

	t.Run("RejectsMissingToken", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/admin/reload", nil)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("RejectsWrongSecret", func(t *testing.T) {
		token := signedToken(t, "other-secret")
		w := doRequest(router, http.MethodPost, "/api/v1/admin/reload",
			map[string]string{"Authorization": "Bearer " + token})
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("AcceptsValidToken", func(t *testing.T) {
		token := signedToken(t, "test-secret")
		w := doRequest(router, http.MethodPost, "/api/v1/admin/reload",
			map[string]string{"Authorization": "Bearer " + token})
		gt.Equal(t, w.Code, http.StatusOK)
	})
}

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	gt.NoError(t, err)
	return signed
}
