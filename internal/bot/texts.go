package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/topupbot/core/telegram/format"
	"github.com/m3rciful/topupbot/internal/deposit"
)

// ButtonTopUp is the reply-keyboard entry point of the client dialogue.
const ButtonTopUp = "💰 Пополнить счет"

const (
	textGreeting        = "Привет! Нажмите кнопку:"
	textPromptAccountID = "Введите ваш ID:"
	textNotANumber      = "❌ Введите число!"
	textCancelled       = "Отменено"
	textNoActiveRequest = "❌ Нет активной заявки"
	textProofReceived   = "✅ Скриншот получен! Ожидайте подтверждения"
	textNonePending     = "❌ Нет заявок, ожидающих номер"
	textNoWaitingList   = "⏳ Нет ожидающих заявок"

	alertOperatorsOnly    = "❌ Только оператор"
	alertRequestNotFound  = "❌ Заявка не найдена"
	alertAlreadyConfirmed = "❌ Заявка уже подтверждена"
)

const requestTimeLayout = "15:04 02.01.2006"

func promptAmountText(min string) string {
	return fmt.Sprintf("Введите сумму (мин. %s TMT):", min)
}

func amountTooLowText(min string) string {
	return fmt.Sprintf("❌ Минимум %s TMT", min)
}

func requestAcceptedText(req deposit.Request) string {
	return fmt.Sprintf("✅ Заявка #%d принята!\nОжидайте реквизиты...", req.ID)
}

func newRequestGroupText(req deposit.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 *НОВАЯ ЗАЯВКА #%d*\n\n", req.ID)
	fmt.Fprintf(&b, "👤 Клиент: %s\n", format.EscapeV1(req.RequesterName))
	fmt.Fprintf(&b, "📞 ID: %s\n", format.EscapeV1(req.AccountID))
	fmt.Fprintf(&b, "💰 Сумма: %s TMT\n", req.Amount.String())
	fmt.Fprintf(&b, "⏰ Время: %s\n\n", req.CreatedAt.Format(requestTimeLayout))
	b.WriteString("*Отправьте номер телефона для клиента:*\n(8 цифр, например: 65656565)")
	return b.String()
}

func paymentInstructionsText(req deposit.Request) string {
	var b strings.Builder
	b.WriteString("💳 *РЕКВИЗИТЫ ДЛЯ ОПЛАТЫ*\n\n")
	fmt.Fprintf(&b, "📱 Номер: `%s`\n", req.Phone)
	fmt.Fprintf(&b, "💰 Сумма: %s TMT\n\n", req.Amount.String())
	b.WriteString("После оплаты отправьте скриншот!")
	return b.String()
}

func instructionsRelayedText(req deposit.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ *Реквизиты отправлены клиенту #%d*\n\n", req.ID)
	fmt.Fprintf(&b, "👤 Клиент: %s\n", format.EscapeV1(req.RequesterName))
	fmt.Fprintf(&b, "📱 Номер: %s\n", req.Phone)
	fmt.Fprintf(&b, "💰 Сумма: %s TMT", req.Amount.String())
	return b.String()
}

func awaitingProofText(req deposit.Request) string {
	return fmt.Sprintf("⏳ Ожидаем скриншот от клиента #%d", req.ID)
}

func proofCaptionText(req deposit.Request) string {
	return fmt.Sprintf("📸 Скриншот оплаты #%d", req.ID)
}

func proofRelayedText(req deposit.Request) string {
	return fmt.Sprintf("✅ Скриншот получен от клиента #%d", req.ID)
}

func pendingListText(pending []deposit.Request) string {
	var b strings.Builder
	b.WriteString("⏳ *Ожидают номер:*\n\n")
	for _, req := range pending {
		fmt.Fprintf(&b, "🆔 #%d - %s - %s TMT\n", req.ID, format.EscapeV1(req.RequesterName), req.Amount.String())
	}
	return b.String()
}

func paymentConfirmedGroupText(req deposit.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ *ПЛАТЕЖ ПОДТВЕРЖДЕН #%d*\n\n", req.ID)
	fmt.Fprintf(&b, "👤 Клиент: %s\n", format.EscapeV1(req.RequesterName))
	fmt.Fprintf(&b, "💰 Сумма: %s TMT\n", req.Amount.String())
	fmt.Fprintf(&b, "👨‍💼 Подтвердил: %s", format.EscapeV1(req.ConfirmedBy))
	return b.String()
}

func accountFundedText(req deposit.Request) string {
	var b strings.Builder
	b.WriteString("🎉 *Счет пополнен!*\n\n")
	fmt.Fprintf(&b, "💰 Сумма: %s TMT\n", req.Amount.String())
	fmt.Fprintf(&b, "🆔 Заявка: #%d", req.ID)
	return b.String()
}
