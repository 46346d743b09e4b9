//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"atcoder-notifier/internal/adapter/logging"
	"atcoder-notifier/internal/app"
	"atcoder-notifier/internal/config"
	"atcoder-notifier/internal/domain/ports"
	"atcoder-notifier/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideSession,
		provideJudgeProvider,
		provideNotifier,
		provideSettingsStore,
		usecase.NewRoster,
		provideCheckConfig,
		usecase.NewDailyCheck,
		provideRouter,
		provideAppConfig,
		app.New,
	)
	return nil, nil, nil
}
