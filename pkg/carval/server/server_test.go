package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/engine"
	"github.com/nekruzvatanshoev/carval/pkg/carval/metrics"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
	"github.com/nekruzvatanshoev/carval/pkg/carval/snapshot"
)

const modelY = `{"brand":"Tesla","model":"Model Y Long Range","year":2023,"fuel":"Electric","mi":"28,500","regRegion":"westcoast","regCountry":"US"}`

func newTestEngine() *engine.Engine {
	return engine.New(reference.Default(), engine.WithSeed(42), engine.WithReferenceYear(2026))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestServer(t *testing.T) {
	e := newTestEngine()
	router := NewRouter(e)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		check  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Health",
			method: http.MethodGet,
			path:   "/healthz",
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
			},
		},
		{
			name:   "Valuation",
			method: http.MethodPost,
			path:   "/valuations",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[valuationResponse](t, rec)
				assert.Empty(t, got.ID)
				require.Len(t, got.Steps, 12)
				assert.Positive(t, got.TotalValue)
				assert.Equal(t, 44990, got.BaseNewPrice)
			},
		},
		{
			name:   "InvalidVehicle",
			method: http.MethodPost,
			path:   "/valuations",
			body:   `{"brand":"Tesla","year":2023}`,
			status: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, decode[errorResponse](t, rec).Error, "model")
			},
		},
		{
			name:   "MalformedBody",
			method: http.MethodPost,
			path:   "/valuations/tco",
			body:   `not json`,
			status: http.StatusBadRequest,
		},
		{
			name:   "Timeline",
			method: http.MethodPost,
			path:   "/valuations/timeline",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.TimelineResult](t, rec)
				require.Len(t, got.Months, 7)
				assert.True(t, got.Months[3].IsCurrent)
			},
		},
		{
			name:   "TCO",
			method: http.MethodPost,
			path:   "/valuations/tco",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.TCOResult](t, rec)
				assert.Equal(t, got.Monthly.Total*12, got.Annual.Total)
			},
		},
		{
			name:   "Depreciation",
			method: http.MethodPost,
			path:   "/valuations/depreciation",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.DepreciationResult](t, rec)
				assert.Len(t, got.Curve, 11)
				assert.Equal(t, 3, got.CurrentAge)
			},
		},
		{
			name:   "Swap",
			method: http.MethodPost,
			path:   "/valuations/swap",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Len(t, decode[[]dal.SwapAlternative](t, rec), 3)
			},
		},
		{
			name:   "Regional",
			method: http.MethodPost,
			path:   "/markets/regional",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.RegionalResult](t, rec)
				assert.Equal(t, "westcoast", got.HomeRegion)
				assert.Len(t, got.Order, len(got.Regions))
			},
		},
		{
			name:   "NetValue",
			method: http.MethodPost,
			path:   "/markets/net-value",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.NetValueResult](t, rec)
				assert.Positive(t, got.GrossValue)
			},
		},
		{
			name:   "Sell",
			method: http.MethodPost,
			path:   "/markets/sell",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.SellMarketResult](t, rec)
				assert.Equal(t, "US", got.HomeMarket)
				assert.Equal(t, dal.Disclaimer, got.Disclaimer)
			},
		},
		{
			name:   "Buy",
			method: http.MethodPost,
			path:   "/markets/buy",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.BuyMarketResult](t, rec)
				assert.NotEmpty(t, got.Results)
			},
		},
		{
			name:   "Compare",
			method: http.MethodPost,
			path:   "/markets/compare?from=us&to=DE",
			body:   modelY,
			status: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[dal.MarketComparison](t, rec)
				assert.Equal(t, "US", got.From.Market)
				assert.Equal(t, "DE", got.To.Market)
				assert.Equal(t, got.ExportFees.Total+got.ImportFees.Total, got.TotalFees)
			},
		},
		{
			name:   "CompareBadCountry",
			method: http.MethodPost,
			path:   "/markets/compare?to=Germany",
			body:   modelY,
			status: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, decode[errorResponse](t, rec).Error, "two-letter")
			},
		},
		{
			name:   "SnapshotsDisabled",
			method: http.MethodGet,
			path:   "/valuations/0f8fad5b-d9cb-469f-a165-70867728950e",
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "UnknownRoute",
			method: http.MethodGet,
			path:   "/cars",
			status: http.StatusNotFound,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, errNoRoute.Error(), decode[errorResponse](t, rec).Error)
			},
		},
		{
			name:   "WrongMethod",
			method: http.MethodGet,
			path:   "/markets/sell",
			status: http.StatusMethodNotAllowed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.status != http.StatusMethodNotAllowed {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
			if tc.check != nil {
				tc.check(t, rec)
			}
		})
	}
}

func TestValuationMatchesEngine(t *testing.T) {
	e := newTestEngine()
	router := NewRouter(e)

	var v dal.Vehicle
	require.NoError(t, json.Unmarshal([]byte(modelY), &v))
	want := e.Valuate(v)

	got := decode[valuationResponse](t, do(t, router, http.MethodPost, "/valuations", modelY))
	assert.Equal(t, want.TotalValue, got.TotalValue)
	assert.Equal(t, want.Steps, got.Steps)
	assert.Equal(t, want.Confidence, got.Confidence)
}

func newSnapshotStore(t *testing.T) (*snapshot.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := snapshot.New(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestValuationSnapshots(t *testing.T) {
	store, _ := newSnapshotStore(t)
	router := NewRouter(newTestEngine(), WithSnapshots(store))

	rec := do(t, router, http.MethodPost, "/valuations", modelY)
	require.Equal(t, http.StatusOK, rec.Code)
	posted := decode[valuationResponse](t, rec)
	require.NotEmpty(t, posted.ID)

	rec = do(t, router, http.MethodGet, "/valuations/"+posted.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[snapshot.Snapshot](t, rec)
	assert.Equal(t, posted.ID, snap.ID)
	assert.Equal(t, "Tesla", snap.Vehicle.Brand)
	assert.Equal(t, posted.TotalValue, snap.Result.TotalValue)

	rec = do(t, router, http.MethodGet, "/valuations/0f8fad5b-d9cb-469f-a165-70867728950e", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/valuations/timeline", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapshotStoreDown(t *testing.T) {
	store, mr := newSnapshotStore(t)
	router := NewRouter(newTestEngine(), WithSnapshots(store))
	mr.Close()

	rec := do(t, router, http.MethodPost, "/valuations", modelY)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decode[map[string]string](t, rec)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	router := NewRouter(newTestEngine(), WithMetrics(m))

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/valuations", modelY).Code)
	require.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/valuations", `{}`).Code)

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `carval_http_requests_total{method="POST",route="/valuations",status="200"} 1`)
	assert.Contains(t, body, `carval_http_requests_total{method="POST",route="/valuations",status="400"} 1`)
	assert.Contains(t, body, "carval_valuations_total")
	assert.Contains(t, body, "carval_valuation_confidence_bucket")
}

func TestTracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	router := NewRouter(newTestEngine(), WithTracer(tp.Tracer("test")))
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/valuations", modelY).Code)

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"engine.Valuate", "POST /valuations"}, names)

	for _, s := range rec.Ended() {
		if s.Name() == "engine.Valuate" {
			assert.True(t, s.Parent().IsValid())
		}
	}
}

func TestValidateCountry(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "Empty", in: "", want: ""},
		{name: "Lower", in: "de", want: "DE"},
		{name: "Upper", in: "NO", want: "NO"},
		{name: "TooLong", in: "USA", wantErr: true},
		{name: "Digits", in: "D1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validateCountry(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, errBadCountry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
