package bot

import (
	"errors"
	"strconv"
	"strings"

	tghelpers "github.com/m3rciful/topupbot/core/telegram/helpers"
	"github.com/m3rciful/topupbot/core/telegram/keyboard"
	"github.com/m3rciful/topupbot/internal/deposit"

	tele "gopkg.in/telebot.v4"
)

func confirmKeyboard(requestID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{{
		Text:   "✅ Подтвердить оплату",
		Unique: callbackConfirm,
		Data:   strconv.FormatInt(requestID, 10),
	}})
}

// handleGroupText consumes free-form operator chatter in the group.
// Only eight-digit phone replies from allow-listed operators act on
// requests, the rest is ignored.
func (a *App) handleGroupText(c tele.Context) error {
	if !a.isOperator(c.Sender().ID) {
		return nil
	}

	text := strings.TrimSpace(c.Text())
	if !deposit.IsPhoneCandidate(text) {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	req, err := a.svc.AssignPhoneToOldest(ctx, text)
	if err != nil {
		if errors.Is(err, deposit.ErrNoneAwaiting) {
			return tghelpers.SendText(c, textNonePending)
		}
		return err
	}

	// Relay payment instructions to the client first
	if err := tghelpers.SendMDTo(c, req.RequesterID, paymentInstructionsText(req)); err != nil {
		return err
	}

	if err := tghelpers.SendMD(c, instructionsRelayedText(req)); err != nil {
		return err
	}

	return tghelpers.SendMD(c, awaitingProofText(req), confirmKeyboard(req.ID))
}

func (a *App) handleList(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	pending := a.svc.ListUnassigned(ctx)
	if len(pending) == 0 {
		return tghelpers.SendText(c, textNoWaitingList)
	}
	return tghelpers.SendMD(c, pendingListText(pending))
}
