package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexiusacademia/gohydro/internal/curves"
	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

func bargeJSON() hull.Hull {
	h := hull.Hull{Name: "barge", Lpp: 100, Beam: 20}
	for i := 0; i <= 10; i++ {
		h.Stations = append(h.Stations, hull.Station{Index: i, X: float64(i) * 10})
	}
	for j := 0; j <= 10; j++ {
		h.Waterlines = append(h.Waterlines, hull.Waterline{Index: j, Z: float64(j)})
	}
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			h.Offsets = append(h.Offsets, hull.Offset{Station: i, Waterline: j, HalfBreadth: 10})
		}
	}
	return h
}

func post(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/health = %d; want 200", rec.Code)
	}
}

func TestHydrostaticsEndpoint(t *testing.T) {
	kg := 4.0
	rec := post(t, "/api/hydrostatics", hydrostaticsRequest{
		Hull:     bargeJSON(),
		Draft:    5,
		Loadcase: hydro.Loadcase{Rho: 1025, KG: &kg},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/hydrostatics = %d: %s", rec.Code, rec.Body.String())
	}

	var res hydro.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(res.Displacement-10250000)/10250000 > 0.005 {
		t.Errorf("displacement = %f; want 10250000", res.Displacement)
	}
	if res.GMt == nil {
		t.Error("gmt missing from response")
	}
}

func TestHydrostaticsInvalidGeometry(t *testing.T) {
	h := bargeJSON()
	h.Offsets = h.Offsets[:5]
	rec := post(t, "/api/hydrostatics", hydrostaticsRequest{
		Hull: h, Draft: 5, Loadcase: hydro.Loadcase{Rho: 1025},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("sparse grid = %d; want 400", rec.Code)
	}
}

func TestHydrostaticsNotComputable(t *testing.T) {
	rec := post(t, "/api/hydrostatics", hydrostaticsRequest{
		Hull: bargeJSON(), Draft: 15, Loadcase: hydro.Loadcase{Rho: 1025},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("draft above table = %d; want 422", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["reason"] != string(hydro.ReasonDraftOutOfRange) {
		t.Errorf("reason = %q; want %q", body["reason"], hydro.ReasonDraftOutOfRange)
	}
}

func TestGZEndpoint(t *testing.T) {
	kg := 4.0
	rec := post(t, "/api/gz", gzRequest{
		Hull:     bargeJSON(),
		Loadcase: hydro.Loadcase{Rho: 1025, KG: &kg},
		Draft:    5, MinAngle: 0, MaxAngle: 40, Step: 5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/gz = %d: %s", rec.Code, rec.Body.String())
	}

	var curve struct {
		Points []struct {
			Angle float64 `json:"angle"`
			GZ    float64 `json:"gz"`
		} `json:"points"`
		Truncated bool `json:"truncated"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &curve); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(curve.Points) != 9 {
		t.Errorf("got %d points; want 9", len(curve.Points))
	}
	if curve.Points[0].GZ != 0 {
		t.Errorf("GZ(0°) = %f; want 0", curve.Points[0].GZ)
	}
}

func TestGZRejectsInvertedRange(t *testing.T) {
	kg := 4.0
	rec := post(t, "/api/gz", gzRequest{
		Hull:     bargeJSON(),
		Loadcase: hydro.Loadcase{Rho: 1025, KG: &kg},
		Draft:    5, MinAngle: 40, MaxAngle: 0, Step: 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted angle range = %d; want 400", rec.Code)
	}
}

func TestCurvesEndpoint(t *testing.T) {
	rec := post(t, "/api/curves", curvesRequest{
		Hull:     bargeJSON(),
		Loadcase: hydro.Loadcase{Rho: 1025},
		Types:    []curves.Type{curves.Displacement},
		MinDraft: 1, MaxDraft: 5, Points: 5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/curves = %d: %s", rec.Code, rec.Body.String())
	}
}
