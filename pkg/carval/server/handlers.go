package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/analysis"
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/markets"
	"github.com/nekruzvatanshoev/carval/pkg/carval/snapshot"
	"github.com/nekruzvatanshoev/carval/pkg/carval/validation"
)

const maxBodyBytes = 1 << 20

var (
	errNoRoute         = errors.New("no such route")
	errNoSnapshotStore = errors.New("snapshot store is not configured")
	errBadCountry      = errors.New("country must be a two-letter code")
	countryCode        = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

type errorResponse struct {
	Error string `json:"error"`
}

type valuationResponse struct {
	ID string `json:"id,omitempty"`
	dal.ValuationResult
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeVehicle reads and validates the request body. On failure it has
// already answered the request.
func (h *httpServer) decodeVehicle(w http.ResponseWriter, r *http.Request) (dal.Vehicle, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("request body read failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return dal.Vehicle{}, false
	}
	v, err := validation.Vehicle(body)
	if err != nil {
		h.log.Warn("vehicle validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return dal.Vehicle{}, false
	}
	return v, true
}

// valuate runs the engine inside a span and records metrics.
func (h *httpServer) valuate(r *http.Request, v dal.Vehicle) dal.ValuationResult {
	_, span := h.tracer.Start(r.Context(), "engine.Valuate")
	defer span.End()
	span.SetAttributes(
		attribute.String("vehicle.brand", v.Brand),
		attribute.String("vehicle.model", v.Model),
		attribute.Int("vehicle.year", v.Year),
	)

	start := time.Now()
	res := h.engine.Valuate(v)
	if h.metrics != nil {
		h.metrics.ObserveValuation(res, time.Since(start))
	}
	span.SetAttributes(
		attribute.Int("valuation.total", res.TotalValue),
		attribute.Int("valuation.confidence", res.Confidence),
		attribute.String("valuation.mileage_method", string(res.Mileage.Method)),
	)
	return res
}

// Health reports liveness and, when configured, snapshot store reachability.
func (h *httpServer) Health(w http.ResponseWriter, r *http.Request) {
	if h.snapshots != nil {
		if err := h.snapshots.Ping(r.Context()); err != nil {
			h.log.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// PostValuation values the posted vehicle and snapshots the result.
func (h *httpServer) PostValuation(w http.ResponseWriter, r *http.Request) {
	v, ok := h.decodeVehicle(w, r)
	if !ok {
		return
	}
	resp := valuationResponse{ValuationResult: h.valuate(r, v)}

	if h.snapshots != nil {
		snap, err := h.snapshots.Save(r.Context(), v, resp.ValuationResult)
		if err != nil {
			h.log.Error("snapshot save failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		resp.ID = snap.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetValuation returns a stored snapshot.
func (h *httpServer) GetValuation(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		writeError(w, http.StatusServiceUnavailable, errNoSnapshotStore)
		return
	}
	snap, err := h.snapshots.Get(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		h.log.Error("snapshot lookup failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

// vehicleHandler adapts a computation over one vehicle into a handler.
func (h *httpServer) vehicleHandler(w http.ResponseWriter, r *http.Request, compute func(dal.Vehicle) any) {
	v, ok := h.decodeVehicle(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, compute(v))
}

func (h *httpServer) PostTimeline(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return analysis.Timeline(h.engine, v) })
}

func (h *httpServer) PostTCO(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return analysis.TCO(h.engine, v) })
}

func (h *httpServer) PostDepreciation(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return analysis.Depreciation(h.engine, v) })
}

func (h *httpServer) PostSwap(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return analysis.Swap(h.engine, v) })
}

func (h *httpServer) PostRegional(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return markets.Regional(h.engine, v) })
}

func (h *httpServer) PostNetValue(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return markets.NetValue(h.engine, v) })
}

func (h *httpServer) PostSell(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return markets.BestSellMarket(h.engine, v) })
}

func (h *httpServer) PostBuy(w http.ResponseWriter, r *http.Request) {
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return markets.BestBuyMarket(h.engine, v) })
}

// PostCompare compares the vehicle between ?from= and ?to=; either may be
// omitted to mean the registration country.
func (h *httpServer) PostCompare(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()
	from, err := validateCountry(vars.Get("from"))
	if err != nil {
		h.log.Warn("from validation failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := validateCountry(vars.Get("to"))
	if err != nil {
		h.log.Warn("to validation failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	h.vehicleHandler(w, r, func(v dal.Vehicle) any { return markets.Compare(h.engine, v, from, to) })
}

func validateCountry(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	if !countryCode.MatchString(code) {
		return "", fmt.Errorf("%w: %q", errBadCountry, code)
	}
	return strings.ToUpper(code), nil
}
