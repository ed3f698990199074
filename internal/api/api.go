// Package api exposes the calculation engine over HTTP as a stateless
// JSON API. Every request carries the full hull definition and the
// calculation parameters; nothing is persisted between calls.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexiusacademia/gohydro/internal/curves"
	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
)

// NewRouter builds the calculation API router.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", health).Methods("GET")
	api.HandleFunc("/hydrostatics", hydrostatics).Methods("POST")
	api.HandleFunc("/bonjean", bonjean).Methods("POST")
	api.HandleFunc("/curves", hydroCurves).Methods("POST")
	api.HandleFunc("/gz", gzCurve).Methods("POST")

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type hydrostaticsRequest struct {
	Hull        hull.Hull      `json:"hull"`
	Draft       float64        `json:"draft"`
	Loadcase    hydro.Loadcase `json:"loadcase"`
	Extrapolate bool           `json:"extrapolate"`
}

func hydrostatics(w http.ResponseWriter, r *http.Request) {
	var req hydrostaticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	calc, err := hydro.NewCalculator(&req.Hull)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	calc.AllowExtrapolation = req.Extrapolate

	res, err := calc.ComputeAt(req.Draft, req.Loadcase)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type bonjeanRequest struct {
	Hull hull.Hull `json:"hull"`
}

func bonjean(w http.ResponseWriter, r *http.Request) {
	var req bonjeanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	calc, err := hydro.NewCalculator(&req.Hull)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bj, err := curves.Bonjean(calc)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"curves": bj})
}

type curvesRequest struct {
	Hull        hull.Hull      `json:"hull"`
	Loadcase    hydro.Loadcase `json:"loadcase"`
	Types       []curves.Type  `json:"types"`
	MinDraft    float64        `json:"minDraft"`
	MaxDraft    float64        `json:"maxDraft"`
	Points      int            `json:"points"`
	Extrapolate bool           `json:"extrapolate"`
}

func hydroCurves(w http.ResponseWriter, r *http.Request) {
	var req curvesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	calc, err := hydro.NewCalculator(&req.Hull)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	calc.AllowExtrapolation = req.Extrapolate

	out, err := curves.Generate(calc, req.Loadcase, req.Types, req.MinDraft, req.MaxDraft, req.Points)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"curves": out})
}

type gzRequest struct {
	Hull     hull.Hull      `json:"hull"`
	Loadcase hydro.Loadcase `json:"loadcase"`
	Draft    float64        `json:"draft"`
	MinAngle float64        `json:"minAngle"`
	MaxAngle float64        `json:"maxAngle"`
	Step     float64        `json:"step"`
	Method   string         `json:"method"`
}

func gzCurve(w http.ResponseWriter, r *http.Request) {
	var req gzRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Method == "" {
		req.Method = string(stability.WallSided)
	}
	method, err := stability.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := hydro.NewCalculator(&req.Hull)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	curve, err := stability.Generate(calc, req.Loadcase, req.Draft, req.MinAngle, req.MaxAngle, req.Step, method)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, curve)
}

// writeCalcError maps the engine error taxonomy onto HTTP statuses:
// invalid geometry/parameters are the caller's fault, a not-computable
// draft is a valid request with no result.
func writeCalcError(w http.ResponseWriter, err error) {
	var nc *hydro.NotComputableError
	if errors.As(err, &nc) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  nc.Error(),
			"reason": string(nc.Reason),
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}
