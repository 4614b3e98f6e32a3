package infra

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// Ingestion metrics
	IngestEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_ingest_events_total",
		Help: "Total number of accepted vehicle telemetry events",
	})
	IngestDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_ingest_dropped_total",
		Help: "Total number of telemetry events dropped as malformed",
	})

	// Registry metrics
	SegmentOccupancy = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "traffic_segment_occupancy_vehicles",
		Help: "Vehicles currently tracked inside the monitored segment",
	})
	StaleEvictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_stale_evictions_total",
		Help: "Total number of registry entries evicted for staleness",
	})
	WatchdogResetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_watchdog_resets_total",
		Help: "Total number of registry resets forced by the watchdog",
	})

	// Control loop metrics
	TickDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_tick_duration_seconds",
		Help:    "Duration of one control cycle in seconds",
		Buckets: prometheus.DefBuckets,
	})
	AdvisorySpeedMPS = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "traffic_advisory_speed_mps",
		Help: "Most recent advisory speed sent to the actuator",
	})
	AverageSpeedMPS = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "traffic_average_speed_mps",
		Help: "Average speed of vehicles in the segment at the last tick",
	})

	// Sink metrics
	SinkRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_sink_records_total",
		Help: "Total number of cycle records handed to the telemetry sink",
	})
	SinkErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_sink_errors_total",
		Help: "Total number of telemetry sink failures",
	})
	SinkFlushDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_sink_flush_duration_seconds",
		Help:    "Duration of telemetry sink flush operations in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// Transport metrics
	HTTPRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_http_requests_total",
		Help: "Total number of HTTP requests",
	})
	HTTPRequestErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_http_request_errors_total",
		Help: "Total number of HTTP request errors",
	})
	RequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_request_duration_seconds",
		Help:    "Duration of transport request handling in seconds",
		Buckets: prometheus.DefBuckets,
	})

	registerOnce      sync.Once
	metricsServerOnce sync.Once
)

func init() {
	InitMetrics()
}

// InitMetrics registers all Prometheus collectors used by the application.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			IngestEventsTotal,
			IngestDroppedTotal,
			SegmentOccupancy,
			StaleEvictionsTotal,
			WatchdogResetsTotal,
			TickDurationSeconds,
			AdvisorySpeedMPS,
			AverageSpeedMPS,
			SinkRecordsTotal,
			SinkErrorsTotal,
			SinkFlushDurationSeconds,
			HTTPRequestsTotal,
			HTTPRequestErrorsTotal,
			RequestDurationSeconds,
		)
	})
}

// Handler returns an HTTP handler that exposes the registered Prometheus metrics.
func Handler() http.Handler {
	InitMetrics()
	return promhttp.Handler()
}

// StartMetricsServer exposes Prometheus metrics on the given port under /metrics.
func StartMetricsServer(logger *Logger, port string) {
	InitMetrics()
	metricsServerOnce.Do(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		go func() {
			if err := http.ListenAndServe(":"+port, mux); err != nil {
				if logger != nil {
					logger.Errorf(context.Background(), "metrics server error: %v", err)
				}
			}
		}()
	})
}

// HTTPMiddleware instruments HTTP handlers with request/latency metrics.
func HTTPMiddleware(next http.Handler) http.Handler {
	InitMetrics()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		defer func() {
			RequestDurationSeconds.Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.Inc()
			if recorder.Status() >= http.StatusBadRequest {
				HTTPRequestErrorsTotal.Inc()
			}
		}()

		next.ServeHTTP(recorder, r)
	})
}

// GRPCUnaryInterceptor instruments gRPC unary handlers with request/latency metrics.
func GRPCUnaryInterceptor() grpc.UnaryServerInterceptor {
	InitMetrics()
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()

		defer func() {
			RequestDurationSeconds.Observe(time.Since(start).Seconds())
			if status.Code(err) != codes.OK {
				HTTPRequestErrorsTotal.Inc()
			}
		}()

		return handler(ctx, req)
	}
}

// RecordSinkFlush tracks a completed telemetry sink flush.
func RecordSinkFlush(duration time.Duration) {
	InitMetrics()
	if duration < 0 {
		duration = 0
	}
	SinkFlushDurationSeconds.Observe(duration.Seconds())
}

// statusRecorder captures the response status code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Status() int {
	return r.status
}
