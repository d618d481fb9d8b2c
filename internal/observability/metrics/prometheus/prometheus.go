package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var requestMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.With(
		prometheus.Labels{
			"status": strconv.Itoa(status),
			"op":     op,
		},
	).Observe(d.Seconds())
}

type Srv struct {
	srv *http.Server
}

func New(port int) *Srv {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Srv{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (s *Srv) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := s.srv.Shutdown(context.Background()); err != nil {
			zap.L().Warn("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
