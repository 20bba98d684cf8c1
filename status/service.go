package status

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/kataster/core"
)

// MetricsService serves the registry on /metrics
// An empty address disables the endpoint; the service still satisfies the lifecycle
type MetricsService struct {
	reg    *Registry
	addr   string
	server *http.Server
	ln     net.Listener
}

// NewMetricsService creates a metrics endpoint for reg on addr (e.g. ":2112")
func NewMetricsService(reg *Registry, addr string) *MetricsService {
	return &MetricsService{reg: reg, addr: addr}
}

// Name implements Service
func (s *MetricsService) Name() string {
	return "metrics"
}

// Dependencies implements Service
func (s *MetricsService) Dependencies() []string {
	return nil
}

// Init implements Service
func (s *MetricsService) Init(any) error {
	if s.addr == "" {
		return nil
	}

	promReg := prometheus.NewRegistry()
	if err := promReg.Register(NewCollector(s.reg, "kataster")); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

// Start implements Service, binding the listener synchronously so address errors surface here
func (s *MetricsService) Start() error {
	if s.server == nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", s.addr, err)
	}
	s.ln = ln

	core.Go(func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	})
	log.Printf("metrics available on %s/metrics", ln.Addr())
	return nil
}

// Stop implements Service
func (s *MetricsService) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the bound listener address, empty before Start
func (s *MetricsService) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}
