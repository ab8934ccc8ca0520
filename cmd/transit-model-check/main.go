package main

import (
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	transitmodel "github.com/theoremus-urban-solutions/transit-model"
	"github.com/theoremus-urban-solutions/transit-model/config"
	"github.com/theoremus-urban-solutions/transit-model/internal"
)

// transit-model-check loads a serialized Collections bag, applies the build
// configuration, runs full model construction and reports the result. Its
// exit code is the referential-integrity verdict for the bag.
func main() {
	collectionsPath := flag.String("collections", "", "path to a Collections JSON file")
	configPath := flag.String("config", "", "optional build config YAML (contributor, dataset, prefix)")
	prefix := flag.String("prefix", "", "identifier prefix (overrides config)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := internal.InitLogger(*debug)
	defer logger.Sync()

	if *collectionsPath == "" {
		logger.Fatal("missing -collections")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", zap.String("path", *configPath), zap.Error(err))
		}
	}
	if *prefix != "" {
		cfg.Prefix = *prefix
	}

	data, err := os.ReadFile(*collectionsPath)
	if err != nil {
		logger.Fatal("reading collections", zap.String("path", *collectionsPath), zap.Error(err))
	}
	var c transitmodel.Collections
	if err := json.Unmarshal(data, &c); err != nil {
		logger.Fatal("decoding collections", zap.String("path", *collectionsPath), zap.Error(err))
	}

	// Seed the configured contributor and dataset when the bag has none;
	// feeds produced by bare readers reference them implicitly.
	contributor, dataset := cfg.Entities()
	if c.Contributors.Len() == 0 {
		if _, err := c.Contributors.Push(contributor); err != nil {
			logger.Fatal("seeding contributor", zap.Error(err))
		}
	}
	if c.Datasets.Len() == 0 {
		if _, err := c.Datasets.Push(dataset); err != nil {
			logger.Fatal("seeding dataset", zap.Error(err))
		}
	}
	for k, v := range cfg.FeedInfos {
		if c.FeedInfos == nil {
			c.FeedInfos = map[string]string{}
		}
		c.FeedInfos[k] = v
	}

	if cfg.Prefix != "" {
		if err := c.AddPrefix(cfg.Prefix); err != nil {
			logger.Fatal("prefixing identifiers", zap.String("prefix", cfg.Prefix), zap.Error(err))
		}
	}

	model, err := transitmodel.New(&c, transitmodel.WithLogger(logger))
	if err != nil {
		logger.Fatal("model construction failed", zap.Error(err))
	}

	collections := model.Collections()
	logger.Info("model valid",
		zap.Int("contributors", collections.Contributors.Len()),
		zap.Int("datasets", collections.Datasets.Len()),
		zap.Int("networks", collections.Networks.Len()),
		zap.Int("lines", collections.Lines.Len()),
		zap.Int("routes", collections.Routes.Len()),
		zap.Int("vehicle_journeys", collections.VehicleJourneys.Len()),
		zap.Int("stop_areas", collections.StopAreas.Len()),
		zap.Int("stop_points", collections.StopPoints.Len()),
		zap.Int("transfers", collections.Transfers.Len()),
	)
}
