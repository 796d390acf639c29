package bot

import (
	"errors"

	"github.com/m3rciful/topupbot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/topupbot/core/telegram/helpers"
	"github.com/m3rciful/topupbot/internal/deposit"

	tele "gopkg.in/telebot.v4"
)

// handleConfirm settles a request when an operator presses the inline
// confirmation button. Repeat presses are answered with an alert and
// change nothing.
func (a *App) handleConfirm(c tele.Context) error {
	if !a.isOperator(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: alertOperatorsOnly, ShowAlert: true})
	}

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: alertRequestNotFound, ShowAlert: true})
	}

	ctx := tghelpers.BuildContext(c)
	req, err := a.svc.Confirm(ctx, id, c.Sender().FirstName)
	switch {
	case errors.Is(err, deposit.ErrNotFound):
		return c.Respond(&tele.CallbackResponse{Text: alertRequestNotFound, ShowAlert: true})
	case errors.Is(err, deposit.ErrAlreadyConfirmed):
		return c.Respond(&tele.CallbackResponse{Text: alertAlreadyConfirmed, ShowAlert: true})
	case err != nil:
		return err
	}

	if err := c.Respond(); err != nil {
		return err
	}

	if err := tghelpers.EditMD(c, paymentConfirmedGroupText(req)); err != nil {
		return err
	}

	// Client notice is fire-and-forget: the confirmation already happened
	return tghelpers.SendMDTo(c, req.RequesterID, accountFundedText(req))
}
