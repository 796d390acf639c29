package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/m3rciful/topupbot/core/bootstrap"
	corecmd "github.com/m3rciful/topupbot/core/cmd"
	coretelegram "github.com/m3rciful/topupbot/core/telegram"
	"github.com/m3rciful/topupbot/internal/bot"
	appconfig "github.com/m3rciful/topupbot/internal/config"
	"github.com/m3rciful/topupbot/internal/deposit"
	"github.com/m3rciful/topupbot/internal/health"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return appconfig.Load(path)
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := carrier.(*appconfig.Config)

			res, err := bootstrap.Run(bootstrap.Options{
				Config: cfg.CoreConfig(),
				Sidecars: []bootstrap.Sidecar{
					func() (bootstrap.StopFunc, error) {
						srv := health.New(cfg.Health.Port)
						srv.Start()
						return srv.Shutdown, nil
					},
				},
			})
			if err != nil {
				return nil, err
			}

			svc := deposit.NewService(deposit.NewStore(), decimal.NewFromFloat(cfg.Deposits.MinAmount))
			return &app{
				App:       bot.New(cfg, svc),
				bootstrap: res,
			}, nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}

// app wraps the bot application so sidecars stop together with the bot.
type app struct {
	*bot.App
	bootstrap *bootstrap.Result
}

func (a *app) TelegramRunOptions() (coretelegram.RunOptions, error) {
	opts, err := a.App.TelegramRunOptions()
	if err != nil {
		return opts, err
	}

	prevStop := opts.OnStop
	opts.OnStop = func(ctx context.Context, rt coretelegram.Runtime) error {
		var stopErr error
		if prevStop != nil {
			stopErr = prevStop(ctx, rt)
		}
		if err := a.bootstrap.Shutdown(ctx); err != nil && stopErr == nil {
			stopErr = err
		}
		return stopErr
	}
	return opts, nil
}
