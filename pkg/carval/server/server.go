package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/analysis"
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/metrics"
	"github.com/nekruzvatanshoev/carval/pkg/carval/snapshot"
	"github.com/nekruzvatanshoev/carval/pkg/carval/tracing"
)

// Valuer is the engine surface the API needs.
type Valuer = analysis.Valuer

// SnapshotStore persists valuations for later lookup by id.
type SnapshotStore interface {
	Save(ctx context.Context, v dal.Vehicle, res dal.ValuationResult) (snapshot.Snapshot, error)
	Get(ctx context.Context, id string) (snapshot.Snapshot, error)
	Ping(ctx context.Context) error
}

// Option configures the API.
type Option func(*httpServer)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *httpServer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSnapshots enables POST /valuations snapshots and GET /valuations/{id}.
func WithSnapshots(store SnapshotStore) Option {
	return func(s *httpServer) { s.snapshots = store }
}

// WithMetrics records request and valuation metrics and serves /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *httpServer) { s.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *httpServer) { s.tracer = t }
}

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(addr string, e Valuer, opts ...Option) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(e, opts...),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewRouter wires every route onto a gorilla/mux router.
func NewRouter(e Valuer, opts ...Option) *mux.Router {
	s := newHTTPServer(e, opts...)

	r := mux.NewRouter()
	r.Use(s.observe)

	r.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/valuations", s.PostValuation).Methods(http.MethodPost)
	r.HandleFunc("/valuations/timeline", s.PostTimeline).Methods(http.MethodPost)
	r.HandleFunc("/valuations/tco", s.PostTCO).Methods(http.MethodPost)
	r.HandleFunc("/valuations/depreciation", s.PostDepreciation).Methods(http.MethodPost)
	r.HandleFunc("/valuations/swap", s.PostSwap).Methods(http.MethodPost)
	r.HandleFunc("/valuations/{id}", s.GetValuation).Methods(http.MethodGet)

	r.HandleFunc("/markets/regional", s.PostRegional).Methods(http.MethodPost)
	r.HandleFunc("/markets/net-value", s.PostNetValue).Methods(http.MethodPost)
	r.HandleFunc("/markets/sell", s.PostSell).Methods(http.MethodPost)
	r.HandleFunc("/markets/buy", s.PostBuy).Methods(http.MethodPost)
	r.HandleFunc("/markets/compare", s.PostCompare).Methods(http.MethodPost)

	r.NotFoundHandler = s.observe(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errNoRoute)
	}))
	return r
}

type httpServer struct {
	engine    Valuer
	log       *zap.Logger
	snapshots SnapshotStore
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

func newHTTPServer(e Valuer, opts ...Option) *httpServer {
	s := &httpServer{engine: e, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracing.Tracer()
	}
	return s
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// observe logs, times and traces every request.
func (s *httpServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeOf(r)

		ctx, span := s.tracer.Start(r.Context(), r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
			))
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))
		took := time.Since(start)

		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, r.Method, rec.status, took)
		}
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", took))
	})
}

func routeOf(r *http.Request) string {
	if cur := mux.CurrentRoute(r); cur != nil {
		if tpl, err := cur.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
