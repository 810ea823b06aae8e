package wire

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mithrel/blockfmt/internal/agent"
	"github.com/mithrel/blockfmt/internal/config"
	"github.com/mithrel/blockfmt/internal/logging"
	"github.com/mithrel/blockfmt/internal/render"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg      *viper.Viper
	Settings config.Settings
	Log      *zap.Logger
	Renderer *render.Renderer
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	settings := config.FromViper(v)
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("mode", settings.Mode),
		zap.Strings("keywords", settings.Keywords),
	)
	return &App{
		Cfg:      v,
		Settings: settings,
		Log:      logger,
		Renderer: render.New(render.NewHighlighter(settings.Keywords...)),
	}, nil
}

// GeneratorFactory builds the text generator used by agent commands.
type GeneratorFactory func(ctx context.Context, app *App) (agent.Generator, error)

// NewGeminiGenerator is the default GeneratorFactory.
func NewGeminiGenerator(ctx context.Context, app *App) (agent.Generator, error) {
	g, err := agent.NewGeminiClient(ctx, app.Settings.Agent.APIKey, app.Settings.Agent.Model, app.Log.Named("gemini"))
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}
	return g, nil
}

// AgentService wires a generator with the configured student profile.
func (a *App) AgentService(gen agent.Generator) *agent.Service {
	p := a.Settings.Profile
	return agent.NewService(gen, agent.Profile{
		Name:   p.Name,
		Branch: p.Branch,
		Year:   p.Year,
		Skills: p.Skills,
	}, a.Settings.Agent.Timeout, a.Log.Named("agent"))
}
