package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/ai"
	"github.com/spigell/proforientation/internal/ai/gemini"
	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
	"github.com/spigell/proforientation/internal/secrets"
	"github.com/spigell/proforientation/internal/store"
)

// setup builds the logger and reads the config shared by all commands.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("starting", zap.String("version", version), zap.Any("config", config))

	return l, config
}

func newEngine(config *Config, l *zap.Logger) (*careertest.Engine, error) {
	tb, err := careertest.TieBreakerByName(config.TieBreak, config.Seed)
	if err != nil {
		return nil, err
	}

	return careertest.NewEngine(
		careertest.WithTieBreaker(tb),
		careertest.WithLogger(l),
	), nil
}

func newStore(config *Config, l *zap.Logger) *store.Store {
	path := strings.TrimSpace(config.Store)
	if path == "" {
		path = defaultStore
	}
	return store.New(path, l)
}

func newAdvisor(ctx context.Context, config *AIConfig, l *zap.Logger) (ai.Advisor, error) {
	if config == nil || !config.Enabled {
		return nil, nil
	}
	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, l)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, config.Gemini.MaxLogLength, logger.WithCommonFields(l, "gemini", generator.Model())), nil
}

// advise returns nil advice when the advisor is disabled or fails; the test
// result is still presented.
func advise(ctx context.Context, config *AIConfig, report *careertest.Report, l *zap.Logger) *ai.Advice {
	advisor, err := newAdvisor(ctx, config, l)
	if err != nil {
		l.Warn("skipping ai advice", zap.Error(err))
		return nil
	}
	if advisor == nil {
		return nil
	}

	advice, err := advisor.Advise(ctx, report)
	if err != nil {
		l.Warn("ai advice failed", zap.Error(err))
		return nil
	}

	return advice
}
