// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/corpus"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// RecommendComponents holds the recommendation pipeline.
type RecommendComponents struct {
	Source *corpus.BreakerSource
	Store  *recommend.Store
	Engine *recommend.Engine
}

// buildSource picks the corpus reader for the configured driver and guards it
// with a circuit breaker.
func buildSource(cfg *config.CorpusConfig) (*corpus.BreakerSource, error) {
	var inner corpus.Source
	switch cfg.Driver {
	case config.DriverCSV:
		inner = corpus.NewCSVSource(cfg.Path, cfg.TitlesPath, cfg.TitlesColumn)
	case config.DriverDuckDB:
		inner = corpus.NewDuckDBSource(cfg.Path, cfg.TitlesPath, cfg.TitlesColumn)
	default:
		return nil, fmt.Errorf("unknown corpus driver %q", cfg.Driver)
	}
	return corpus.NewBreakerSource(inner, corpus.BreakerSettings{
		MaxFailures: cfg.BreakerMaxFailures,
		Timeout:     cfg.BreakerTimeout,
	}), nil
}

func buildEngineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.Limit = cfg.Recommend.Limit
	if len(cfg.Recommend.SimilarityFeatures) > 0 {
		ec.SimilarityFeatures = append([]string(nil), cfg.Recommend.SimilarityFeatures...)
	}
	if len(cfg.Recommend.CriteriaFeatures) > 0 {
		ec.CriteriaFeatures = append([]string(nil), cfg.Recommend.CriteriaFeatures...)
	}
	ec.TokenMinLength = cfg.Recommend.TokenMinLength
	ec.RefitPerRequest = cfg.Recommend.RefitPerRequest
	ec.CacheSize = cfg.Recommend.CacheSize
	return ec
}

// initRecommend builds the engine and registers the refresh loop with the
// data layer. In refit-per-request mode there is no shared snapshot to keep
// current, so no refresh service is added.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	source, err := buildSource(&cfg.Corpus)
	if err != nil {
		return nil, err
	}

	engineCfg := buildEngineConfig(cfg)
	store := recommend.NewStore(source, engineCfg, logger)
	engine, err := recommend.NewEngine(engineCfg, store, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Str("driver", source.Name()).
		Str("corpus_path", cfg.Corpus.Path).
		Str("titles_path", cfg.Corpus.TitlesPath).
		Int("limit", engineCfg.Limit).
		Strs("similarity_features", engineCfg.SimilarityFeatures).
		Strs("criteria_features", engineCfg.CriteriaFeatures).
		Bool("refit_per_request", engineCfg.RefitPerRequest).
		Msg("Recommendation engine initialized")

	if !engineCfg.RefitPerRequest {
		tree.AddDataService(services.NewRefreshService(store, services.RefreshServiceConfig{
			LoadOnStartup: cfg.Corpus.LoadOnStartup,
			Interval:      cfg.Corpus.RefreshInterval,
		}, logger))
	}

	return &RecommendComponents{Source: source, Store: store, Engine: engine}, nil
}
