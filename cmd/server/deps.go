package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	afclient "github.com/KirkDiggler/opr-tts-api/internal/clients/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/config"
	"github.com/KirkDiggler/opr-tts-api/internal/observability"
	"github.com/KirkDiggler/opr-tts-api/internal/orchestrators/armylist"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/clock"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	"github.com/KirkDiggler/opr-tts-api/internal/redis"
	"github.com/KirkDiggler/opr-tts-api/internal/repositories/sharedlist"
)

// deps is everything a command needs, built from config
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
	redis    redis.Client
	service  armylist.Service
}

func (d *deps) Close() {
	if d.redis != nil {
		_ = d.redis.Close()
	}
	_ = d.logger.Sync()
}

// buildDeps wires the orchestrator. Redis is only connected when withRedis
// is set; without it saving lists is unavailable.
func buildDeps(withRedis bool) (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	d := &deps{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	d.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	d.metrics = observability.InitMetrics(d.registry)

	clk := clock.New()
	client, err := afclient.New(&afclient.Config{
		BaseURL:     cfg.ArmyForge.BaseURL,
		BetaBaseURL: cfg.ArmyForge.BetaBaseURL,
		HTTPTimeout: cfg.ArmyForge.Timeout,
		CacheTTL:    cfg.ArmyForge.RulesCacheTTL,
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create army forge client: %w", err)
	}

	var repo sharedlist.Repository
	if withRedis {
		d.redis, err = redis.NewClient(cfg.Redis.Addr, &redis.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			UseTLS:   cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}

		repo, err = sharedlist.NewRedisRepository(&sharedlist.Config{
			Client:      d.redis,
			IDGenerator: idgen.NewShort(8),
			Clock:       clk,
			DefaultTTL:  cfg.Redis.ListTTL,
		})
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("failed to create shared list repository: %w", err)
		}
	}

	d.service, err = armylist.NewOrchestrator(&armylist.Config{
		Client:        client,
		Repository:    repo,
		IDGenerator:   idgen.NewUUID(""),
		Logger:        logger,
		Metrics:       d.metrics,
		ListTTL:       cfg.Redis.ListTTL,
		DefaultOutput: &cfg.Output,
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create army list orchestrator: %w", err)
	}

	return d, nil
}
