package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonPractice = "🎯 Practice"
	ButtonHearts   = "❤️ Hearts"
	ButtonPause    = "⏸ Pause"
	ButtonQuit     = "🚪 Quit"
	ButtonHelp     = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	args := message.CommandArguments()

	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "practice":
		t.challenge.startPractice(message, args)
	case "hearts":
		t.challenge.sendHearts(message, args)
	case "pause":
		t.challenge.pause(message)
	case "resume":
		t.challenge.resume(message)
	case "quit":
		t.challenge.quit(message)
	case "undo":
		t.challenge.undo(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! Let's practice with quick challenges.\n\n" +
		"✨ How it works:\n" +
		"• 🎯 Answer a batch of challenges\n" +
		"• 🔥 Build combos for bonus XP\n" +
		"• ❤️ Wrong answers cost hearts\n" +
		"• 🏆 Unlock achievements\n\n" +
		"Press a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonPractice),
			tgbotapi.NewKeyboardButton(ButtonHearts),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonPause),
			tgbotapi.NewKeyboardButton(ButtonQuit),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — show the menu
/practice [level] [type] — start a session, e.g. /practice intermediate grammar
/hearts [type] — hearts left and refill time
/pause, /resume — stop and restart the answer clock
/undo — forgive your last wrong answer (a few seconds only)
/quit — end the session now
/help — this message
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Text {
	case ButtonPractice:
		t.challenge.startPractice(message, "")
	case ButtonHearts:
		t.challenge.sendHearts(message, "")
	case ButtonPause:
		t.challenge.pause(message)
	case ButtonQuit:
		t.challenge.quit(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		if t.challenge.answerText(message) {
			return
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackAnswer):
		t.challenge.handleAnswer(query)
	case data == callbackNext:
		t.challenge.handleNext(query)
	case data == callbackUndo:
		t.challenge.handleUndo(query)
	case strings.HasPrefix(data, callbackModal):
		t.challenge.handleModal(query)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
