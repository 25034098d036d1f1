package bot

import (
	"context"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/alipala/mytacoai-mobile/internal/service"
	"github.com/alipala/mytacoai-mobile/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type HeartsSI interface {
	Status(ctx context.Context, challengeType string) (models.HeartPool, error)
	LogModalInteraction(event models.ModalEvent)
}

type SessionSI interface {
	Start(ctx context.Context, p service.StartParams) (models.ChallengeSession, error)
	Answer(ctx context.Context, challengeID string, isCorrect bool) (service.AnswerResult, error)
	NextChallenge(ctx context.Context) (models.ChallengeSession, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	End(ctx context.Context) (models.SessionStats, error)
	Quit(ctx context.Context) (models.SessionStats, error)
	Undo(ctx context.Context) (models.UndoResult, error)
	Current() (models.ChallengeSession, bool)
}

// SessionOpener returns the session engine of one chat user, restoring any
// session persisted before a restart.
type SessionOpener func(ctx context.Context, userID string) (SessionSI, error)

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	bot       *tgbotapi.BotAPI
	challenge *ChallengeT
	log       *zap.Logger
}

func NewTelegramAPI(botToken, env string, hearts HeartsSI, open SessionOpener, defaults PracticeDefaults, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:       bot,
		challenge: NewChallengeTAPI(bot, hearts, open, cache.NewCache[int64, SessionSI](), defaults, log),
		log:       log,
	}, nil
}

// Start polls for updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	t.log.Info("bot started", zap.String("username", t.bot.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.dispatch(update)
		}
	}
}

func (t *TelegramAPI) dispatch(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
