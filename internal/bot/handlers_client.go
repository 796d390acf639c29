package bot

import (
	"errors"
	"strings"

	tghelpers "github.com/m3rciful/topupbot/core/telegram/helpers"
	"github.com/m3rciful/topupbot/core/telegram/keyboard"
	"github.com/m3rciful/topupbot/internal/deposit"

	tele "gopkg.in/telebot.v4"
)

func (a *App) handleStart(c tele.Context) error {
	return tghelpers.SendText(c, textGreeting, &tele.SendOptions{
		ReplyMarkup: keyboard.ReplyButtons([]string{ButtonTopUp}),
	})
}

func (a *App) handleCancel(c tele.Context) error {
	a.fsm.Clear(c.Sender().ID)
	return tghelpers.SendText(c, textCancelled)
}

// handleTextFallback catches private texts outside any dialogue. The
// top-up button starts the intake, anything else re-shows the greeting.
func (a *App) handleTextFallback(c tele.Context) error {
	if strings.TrimSpace(c.Text()) == ButtonTopUp {
		a.fsm.SetState(c.Sender().ID, stateAwaitAccountID)
		return tghelpers.SendText(c, textPromptAccountID)
	}
	return a.handleStart(c)
}

func (a *App) handleAccountIDInput(c tele.Context) error {
	userID := c.Sender().ID
	accountID := strings.TrimSpace(c.Text())
	if accountID == "" {
		return tghelpers.SendText(c, textPromptAccountID)
	}

	a.fsm.SetTemp(userID, tempKeyAccountID, accountID)
	a.fsm.SetState(userID, stateAwaitAmount)
	return tghelpers.SendText(c, promptAmountText(a.svc.MinAmount().String()))
}

func (a *App) handleAmountInput(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	user := c.Sender()

	accountID, ok := a.fsm.GetTempString(user.ID, tempKeyAccountID)
	if !ok {
		// Session data lost, restart the dialogue
		a.fsm.Clear(user.ID)
		return a.handleStart(c)
	}

	req, err := a.svc.CreateRequest(ctx, user.ID, user.FirstName, accountID, c.Text())
	if err != nil {
		var verr *deposit.ValidationError
		if errors.As(err, &verr) && verr.Field == "amount" {
			// Keep the dialogue open and re-prompt
			if strings.Contains(verr.Reason, "minimum") {
				return tghelpers.SendText(c, amountTooLowText(a.svc.MinAmount().String()))
			}
			return tghelpers.SendText(c, textNotANumber)
		}
		return err
	}

	a.fsm.Clear(user.ID)

	if err := tghelpers.SendText(c, requestAcceptedText(req)); err != nil {
		return err
	}
	// Request is committed regardless of group delivery outcome
	return tghelpers.SendMDTo(c, a.cfg.Deposits.GroupChatID, newRequestGroupText(req))
}

// handlePhoto accepts a payment screenshot and relays it to the
// operator group with a confirmation button.
func (a *App) handlePhoto(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return nil
	}

	req, err := a.svc.AttachProof(ctx, c.Sender().ID)
	if err != nil {
		if errors.Is(err, deposit.ErrNoActiveRequest) {
			return tghelpers.SendText(c, textNoActiveRequest)
		}
		return err
	}

	if err := tghelpers.SendText(c, textProofReceived); err != nil {
		return err
	}

	photo := &tele.Photo{File: msg.Photo.File, Caption: proofCaptionText(req)}
	if err := tghelpers.SendPhotoTo(c, a.cfg.Deposits.GroupChatID, photo); err != nil {
		return err
	}

	return tghelpers.SendMDTo(c, a.cfg.Deposits.GroupChatID, proofRelayedText(req), confirmKeyboard(req.ID))
}
