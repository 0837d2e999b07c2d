// Package app wires the configured components into a running service:
// feed loading, MQTT ingest, metrics sinks, and the schedule API.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gridwatch/loadshed/api/schedule"
	"github.com/gridwatch/loadshed/config"
	"github.com/gridwatch/loadshed/core/ingest"
	"github.com/gridwatch/loadshed/core/loadshed"
	coremetrics "github.com/gridwatch/loadshed/core/metrics"
	"github.com/gridwatch/loadshed/core/schedstore"
	"github.com/gridwatch/loadshed/infra/feed"
	"github.com/gridwatch/loadshed/infra/logger"
	"github.com/gridwatch/loadshed/infra/metrics"
	"github.com/gridwatch/loadshed/infra/mqtt"
	"github.com/gridwatch/loadshed/internal/eventbus"
)

// Service orchestrates schedule ingest and the API.
type Service struct {
	cfg    *config.Config
	store  *schedstore.MemoryStore
	bus    *eventbus.ScheduleBus
	ing    *ingest.Ingestor
	client *mqtt.PahoClient
	sink   coremetrics.IngestSink
	log    logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("service")

	var sinks []coremetrics.IngestSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.IngestSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	store := schedstore.NewMemoryStore()
	bus := eventbus.New()
	ing := ingest.New(store, bus, sink, loadshed.SAST, logger.New("ingest"))

	svc := &Service{cfg: cfg, store: store, bus: bus, ing: ing, sink: sink, log: logg}
	if cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.client = client
	}
	return svc, nil
}

// LoadFeeds applies every document in the configured feed directory.
// The first failing document aborts the load.
func (s *Service) LoadFeeds() error {
	if s.cfg.Feed.Dir == "" {
		return nil
	}
	docs, err := feed.DecodeDir(s.cfg.Feed.Dir)
	if err != nil {
		return fmt.Errorf("feed dir: %w", err)
	}
	for _, doc := range docs {
		if err := s.ing.Apply(doc.Area, doc.RawSchedule(), doc.Monthly); err != nil {
			return err
		}
	}
	s.log.Infof("loaded %d feed documents", len(docs))
	return nil
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartCollector(ctx, s.bus, s.sink)
	if err := s.LoadFeeds(); err != nil {
		return err
	}
	if s.client != nil {
		if err := s.client.SubscribeSchedules(mqtt.ScheduleHandler(s.ing)); err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
	}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go func() {
			if err := s.serveAPI(ctx); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

func (s *Service) serveAPI(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/schedule", schedule.NewScheduleHandler(s.store))
	mux.Handle("/api/areas", schedule.NewAreasHandler(s.store))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Store exposes the schedule store for embedding callers.
func (s *Service) Store() schedstore.Store { return s.store }

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	s.bus.Close()
	return nil
}
