// Package bot wires the deposit workflow into Telegram handlers: the
// client intake dialogue, the operator group routing, and the payment
// confirmation callback.
package bot

import (
	"github.com/shopspring/decimal"

	coretelegram "github.com/m3rciful/topupbot/core/telegram"
	"github.com/m3rciful/topupbot/core/telegram/commands"
	"github.com/m3rciful/topupbot/core/telegram/middleware"
	"github.com/m3rciful/topupbot/core/telegram/router"
	"github.com/m3rciful/topupbot/core/telegram/state"
	appconfig "github.com/m3rciful/topupbot/internal/config"
	"github.com/m3rciful/topupbot/internal/deposit"
)

// Conversation states of the client intake dialogue.
const (
	stateAwaitAccountID state.State = "deposit_account_id"
	stateAwaitAmount    state.State = "deposit_amount"
)

const tempKeyAccountID = "account_id"

const callbackConfirm = "confirm"

// App assembles the bot from configuration and the deposit service.
type App struct {
	cfg       *appconfig.Config
	svc       *deposit.Service
	fsm       state.Manager
	reg       *coretelegram.Registry
	operators map[int64]struct{}
}

// New builds the application and registers all handlers.
func New(cfg *appconfig.Config, svc *deposit.Service) *App {
	if svc == nil {
		svc = deposit.NewService(deposit.NewStore(), decimal.NewFromFloat(cfg.Deposits.MinAmount))
	}

	a := &App{
		cfg:       cfg,
		svc:       svc,
		fsm:       state.NewMemoryManager(),
		reg:       coretelegram.NewRegistry(),
		operators: middleware.OperatorSet(cfg.Deposits.OperatorIDs),
	}

	state.RegisterHandler(stateAwaitAccountID, a.handleAccountIDInput)
	state.RegisterHandler(stateAwaitAmount, a.handleAmountInput)

	a.reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Начать работу с ботом",
	})
	a.reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Отменить текущий диалог",
	})
	a.reg.RegisterCommand("/list", commands.Command{
		Handler:      a.handleList,
		Description:  "Заявки, ожидающие номер",
		OperatorOnly: true,
		Hidden:       true,
	})

	_ = a.reg.RegisterCallback(callbackConfirm, a.handleConfirm)
	a.reg.SetTextFallback(a.handleTextFallback)

	return a
}

func (a *App) isOperator(id int64) bool {
	_, ok := a.operators[id]
	return ok
}

// TelegramRunOptions exposes the wiring consumed by the core runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		Operators: a.operators,
	})
	routes = append(routes, router.TextRoutes(a.fsm, a.reg, router.TextOptions{
		GroupChatID: a.cfg.Deposits.GroupChatID,
		GroupText:   a.handleGroupText,
		Photo:       a.handlePhoto,
	})...)
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{}))

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    a.reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
	}, nil
}
