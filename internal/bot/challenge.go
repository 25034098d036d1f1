package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/alipala/mytacoai-mobile/internal/service"
	"github.com/alipala/mytacoai-mobile/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	callbackAnswer = "ans:"
	callbackNext   = "next"
	callbackUndo   = "undo"
	callbackModal  = "modal:"

	modalOutOfHearts = "out_of_hearts"

	practiceTimeout = time.Minute
	requestTimeout  = 15 * time.Second
)

type PracticeDefaults struct {
	Language      string
	Level         string
	ChallengeType string
}

type ChallengeT struct {
	bot      BotSender
	hearts   HeartsSI
	open     SessionOpener
	sessions *cache.Cache[int64, SessionSI]
	defaults PracticeDefaults
	log      *zap.Logger
}

func NewChallengeTAPI(bot BotSender, hearts HeartsSI, open SessionOpener, sessions *cache.Cache[int64, SessionSI], defaults PracticeDefaults, log *zap.Logger) *ChallengeT {
	return &ChallengeT{
		bot:      bot,
		hearts:   hearts,
		open:     open,
		sessions: sessions,
		defaults: defaults,
		log:      log,
	}
}

func (t *ChallengeT) send(msg tgbotapi.Chattable) {
	sendMessage(t.bot, t.log, msg)
}

func (t *ChallengeT) sendText(chatID int64, text string) {
	t.send(tgbotapi.NewMessage(chatID, text))
}

// session returns the engine of userID, opening it on first use. Opening runs
// under the cache lock so one user never gets two engines.
func (t *ChallengeT) session(ctx context.Context, userID int64) (SessionSI, error) {
	if s, ok := t.sessions.Get(userID); ok {
		return s, nil
	}

	return t.sessions.GetOrCreate(userID, func() (SessionSI, error) {
		return t.open(ctx, strconv.FormatInt(userID, 10))
	})
}

// startPractice handles "/practice [level] [type]".
func (t *ChallengeT) startPractice(message *tgbotapi.Message, args string) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), practiceTimeout)
	defer cancel()

	level, challengeType := t.practiceArgs(args)

	s, err := t.session(ctx, userID)
	if err != nil {
		t.log.Error("failed to open session store", zap.Int64("user_id", userID), zap.Error(err))
		t.sendText(chatID, "❌ Could not load your progress. Try again later.")
		return
	}

	session, err := s.Start(ctx, service.StartParams{
		UserID:        strconv.FormatInt(userID, 10),
		Language:      t.defaults.Language,
		Level:         level,
		ChallengeType: challengeType,
		Source:        "telegram",
	})
	switch {
	case errors.Is(err, service.ErrNoHeartsAvailable):
		t.sendOutOfHearts(ctx, chatID, challengeType)
		return
	case errors.Is(err, service.ErrSessionInProgress):
		t.sendText(chatID, "⚠️ You already have a session running. Finish it or /quit first.")
		if cur, ok := s.Current(); ok && cur.Active {
			t.sendChallenge(chatID, cur)
		}
		return
	case err != nil:
		t.log.Error("failed to start session", zap.Int64("user_id", userID), zap.Error(err))
		t.sendText(chatID, "❌ Could not start a session. Try again later.")
		return
	}

	intro := fmt.Sprintf("🎯 %d challenges, level %s. %s", len(session.Challenges), session.Level, heartsLabel(session.Hearts))
	if session.ChallengeSource == models.SourceMock {
		intro += "\n📦 Offline set: personalized challenges are unavailable right now."
	}
	t.sendText(chatID, intro)
	t.sendChallenge(chatID, session)
}

func (t *ChallengeT) practiceArgs(args string) (string, string) {
	level, challengeType := t.defaults.Level, t.defaults.ChallengeType
	fields := strings.Fields(args)
	if len(fields) > 0 {
		level = strings.ToLower(fields[0])
	}
	if len(fields) > 1 {
		challengeType = strings.ToLower(fields[1])
	}
	return level, challengeType
}

func (t *ChallengeT) sendChallenge(chatID int64, session models.ChallengeSession) {
	c, ok := session.CurrentChallenge()
	if !ok {
		return
	}

	text := fmt.Sprintf("❓ %d/%d  %s  🔥 x%d\n\n%s",
		session.CurrentIndex+1, len(session.Challenges), heartsLabel(session.Hearts), session.CurrentCombo, c.Prompt)

	msg := tgbotapi.NewMessage(chatID, text)
	if len(c.Options) == 0 {
		msg.Text += "\n\n✍️ Type your answer."
		t.send(msg)
		return
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(c.Options))
	for i, option := range c.Options {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("%s%s:%d", callbackAnswer, c.ID, i)))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(lo.Chunk(buttons, 2)...)
	msg.ReplyMarkup = &keyboard

	t.send(msg)
}

func parseAnswerData(data string) (string, int, bool) {
	rest, ok := strings.CutPrefix(data, callbackAnswer)
	if !ok {
		return "", 0, false
	}
	sep := strings.LastIndex(rest, ":")
	if sep <= 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(rest[sep+1:])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return rest[:sep], idx, true
}

func (t *ChallengeT) handleAnswer(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}
	challengeID, idx, ok := parseAnswerData(query.Data)
	if !ok {
		t.log.Warn("malformed answer callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	s, err := t.session(ctx, query.From.ID)
	if err != nil {
		t.log.Error("failed to open session store", zap.Int64("user_id", query.From.ID), zap.Error(err))
		return
	}

	cur, ok := s.Current()
	if !ok {
		t.sendText(query.Message.Chat.ID, "No active session. Use /practice to start one.")
		return
	}
	c, found := lo.Find(cur.Challenges, func(c models.Challenge) bool { return c.ID == challengeID })
	if !found || idx >= len(c.Options) {
		t.log.Info("ignoring answer for unknown challenge", zap.String("challenge_id", challengeID))
		return
	}

	t.submit(ctx, query.Message.Chat.ID, query.Message, s, c, sameAnswer(c.Options[idx], c.Answer))
}

// answerText scores a typed reply against the current free-text challenge. It
// reports whether the message was consumed.
func (t *ChallengeT) answerText(message *tgbotapi.Message) bool {
	if message.From == nil {
		return false
	}
	s, ok := t.sessions.Get(message.From.ID)
	if !ok {
		return false
	}
	cur, ok := s.Current()
	if !ok || !cur.Active || cur.CurrentAnswered {
		return false
	}
	c, ok := cur.CurrentChallenge()
	if !ok || len(c.Options) > 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	t.submit(ctx, message.Chat.ID, nil, s, c, sameAnswer(message.Text, c.Answer))
	return true
}

func (t *ChallengeT) submit(ctx context.Context, chatID int64, prompt *tgbotapi.Message, s SessionSI, c models.Challenge, isCorrect bool) {
	res, err := s.Answer(ctx, c.ID, isCorrect)
	if errors.Is(err, service.ErrStaleInput) {
		t.log.Debug("stale answer ignored", zap.String("challenge_id", c.ID))
		return
	}
	if err != nil {
		t.log.Error("failed to record answer", zap.String("challenge_id", c.ID), zap.Error(err))
		t.sendText(chatID, "❌ Could not record your answer. Try again.")
		return
	}

	text := resultText(c, isCorrect, res)
	var keyboard *tgbotapi.InlineKeyboardMarkup
	if !res.EndedEarly {
		row := []tgbotapi.InlineKeyboardButton{tgbotapi.NewInlineKeyboardButtonData("▶️ Next", callbackNext)}
		if !isCorrect {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("↩️ Undo", callbackUndo))
		}
		markup := tgbotapi.NewInlineKeyboardMarkup(row)
		keyboard = &markup
	}

	if prompt != nil {
		edit := tgbotapi.NewEditMessageText(chatID, prompt.MessageID, prompt.Text+"\n\n"+text)
		edit.ReplyMarkup = keyboard
		t.send(edit)
	} else {
		msg := tgbotapi.NewMessage(chatID, text)
		if keyboard != nil {
			msg.ReplyMarkup = keyboard
		}
		t.send(msg)
	}

	if res.EndedEarly && res.Stats != nil {
		t.sendText(chatID, formatSummary(*res.Stats))
		t.sendOutOfHearts(ctx, chatID, res.Session.ChallengeType)
	}
}

func resultText(c models.Challenge, isCorrect bool, res service.AnswerResult) string {
	var b strings.Builder
	if isCorrect {
		fmt.Fprintf(&b, "✅ Correct! +%d XP", res.XP.TotalXP)
		if res.XP.SpeedBonus > 0 {
			b.WriteString(" ⚡")
		}
		if res.XP.ComboMultiplier > 1 {
			fmt.Fprintf(&b, " (x%d combo)", res.XP.ComboMultiplier)
		}
	} else {
		fmt.Fprintf(&b, "❌ The answer is: %s", c.Answer)
		if c.Explanation != "" {
			fmt.Fprintf(&b, "\n💡 %s", c.Explanation)
		}
	}

	switch {
	case res.ConsumeErr != nil:
		b.WriteString("\n⚠️ Hearts could not be synced. Scored offline.")
	case res.Consume != nil && res.Consume.ShieldUsed:
		b.WriteString("\n🛡 Your shield saved a heart.")
	case res.Consume != nil && !isCorrect:
		fmt.Fprintf(&b, "\n%s", heartsLabel(res.Session.Hearts))
	}
	return b.String()
}

func (t *ChallengeT) handleNext(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	s, err := t.session(ctx, query.From.ID)
	if err != nil {
		t.log.Error("failed to open session store", zap.Int64("user_id", query.From.ID), zap.Error(err))
		return
	}

	session, err := s.NextChallenge(ctx)
	switch {
	case errors.Is(err, service.ErrSessionPaused):
		t.sendText(chatID, "⏸ Session is paused. Use /resume to continue.")
		return
	case errors.Is(err, service.ErrNoActiveSession):
		t.sendText(chatID, "No active session. Use /practice to start one.")
		return
	case err != nil:
		t.log.Error("failed to advance session", zap.Error(err))
		t.sendText(chatID, "❌ Something went wrong. Try again.")
		return
	}

	if session.Active {
		t.sendChallenge(chatID, session)
		return
	}

	stats, err := s.End(ctx)
	if err != nil {
		t.log.Info("session already finalized", zap.Error(err))
		return
	}
	t.sendText(chatID, formatSummary(stats))
}

func (t *ChallengeT) handleUndo(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	s, err := t.session(ctx, query.From.ID)
	if err != nil {
		t.log.Error("failed to open session store", zap.Int64("user_id", query.From.ID), zap.Error(err))
		return
	}

	res, err := s.Undo(ctx)
	switch {
	case errors.Is(err, service.ErrUndoUnavailable), errors.Is(err, service.ErrNoActiveSession):
		t.sendText(chatID, "Nothing to undo.")
	case err != nil:
		t.sendText(chatID, "❌ Undo failed. Try again.")
	case !res.Success:
		t.sendText(chatID, "Undo is not possible for this answer.")
	default:
		cur, _ := s.Current()
		t.sendText(chatID, "↩️ Mistake forgiven. "+heartsLabel(cur.Hearts))
	}
}

func (t *ChallengeT) pause(message *tgbotapi.Message) {
	t.withSession(message, func(ctx context.Context, s SessionSI) {
		if err := s.Pause(ctx); err != nil {
			t.sendText(message.Chat.ID, "No active session to pause.")
			return
		}
		t.sendText(message.Chat.ID, "⏸ Paused. The clock is stopped. Use /resume to continue.")
	})
}

func (t *ChallengeT) resume(message *tgbotapi.Message) {
	t.withSession(message, func(ctx context.Context, s SessionSI) {
		if err := s.Resume(ctx); err != nil {
			t.sendText(message.Chat.ID, "No session to resume.")
			return
		}
		cur, ok := s.Current()
		if !ok {
			return
		}
		if cur.CurrentAnswered {
			msg := tgbotapi.NewMessage(message.Chat.ID, "▶️ Resumed.")
			keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("▶️ Next", callbackNext),
			))
			msg.ReplyMarkup = &keyboard
			t.send(msg)
			return
		}
		t.sendChallenge(message.Chat.ID, cur)
	})
}

func (t *ChallengeT) quit(message *tgbotapi.Message) {
	t.withSession(message, func(ctx context.Context, s SessionSI) {
		stats, err := s.Quit(ctx)
		if err != nil {
			t.sendText(message.Chat.ID, "No active session.")
			return
		}
		t.sendText(message.Chat.ID, formatSummary(stats))
	})
}

func (t *ChallengeT) undo(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	t.handleUndo(&tgbotapi.CallbackQuery{From: message.From, Message: message})
}

func (t *ChallengeT) withSession(message *tgbotapi.Message, fn func(ctx context.Context, s SessionSI)) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	s, err := t.session(ctx, message.From.ID)
	if err != nil {
		t.log.Error("failed to open session store", zap.Int64("user_id", message.From.ID), zap.Error(err))
		t.sendText(message.Chat.ID, "❌ Could not load your progress. Try again later.")
		return
	}
	fn(ctx, s)
}

func (t *ChallengeT) sendHearts(message *tgbotapi.Message, args string) {
	challengeType := t.defaults.ChallengeType
	if fields := strings.Fields(args); len(fields) > 0 {
		challengeType = strings.ToLower(fields[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	pool, err := t.hearts.Status(ctx, challengeType)
	if err != nil {
		t.log.Warn("failed to get heart status", zap.String("challenge_type", challengeType), zap.Error(err))
		t.sendText(message.Chat.ID, "❌ Could not load your hearts. Try again later.")
		return
	}

	text := heartsLabel(pool) + refillLine(pool)
	if pool.CurrentStreak > 0 {
		text += fmt.Sprintf("\n🔥 Streak: %d", pool.CurrentStreak)
	}
	t.sendText(message.Chat.ID, text)
}

// sendOutOfHearts shows the out-of-hearts notice and records that it was shown.
func (t *ChallengeT) sendOutOfHearts(ctx context.Context, chatID int64, challengeType string) {
	text := "💔 You're out of hearts."
	if pool, err := t.hearts.Status(ctx, challengeType); err == nil {
		text += refillLine(pool)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏳ Wait for refill", callbackModal+"wait:"+challengeType),
		tgbotapi.NewInlineKeyboardButtonData("OK", callbackModal+"dismiss:"+challengeType),
	))
	msg.ReplyMarkup = &keyboard
	t.send(msg)

	t.hearts.LogModalInteraction(models.ModalEvent{
		ChallengeType: challengeType,
		Modal:         modalOutOfHearts,
		Action:        "shown",
	})
}

func (t *ChallengeT) handleModal(query *tgbotapi.CallbackQuery) {
	action, challengeType, _ := strings.Cut(strings.TrimPrefix(query.Data, callbackModal), ":")

	t.hearts.LogModalInteraction(models.ModalEvent{
		ChallengeType: challengeType,
		Modal:         modalOutOfHearts,
		Action:        action,
	})

	if query.Message == nil {
		return
	}
	text := "👍 Come back when your hearts refill."
	if action == "wait" {
		text = "⏳ Hearts refill over time. See you soon!"
	}
	t.send(tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text))
}

func sameAnswer(given, want string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(want))
}

func heartsLabel(pool models.HeartPool) string {
	if pool.IsUnlimited {
		return "❤️ ∞"
	}
	label := fmt.Sprintf("❤️ %d/%d", pool.CurrentHearts, pool.MaxHearts)
	if pool.ShieldActive {
		label += " 🛡"
	}
	return label
}

func refillLine(pool models.HeartPool) string {
	if pool.IsUnlimited || pool.Refill.MinutesToNext <= 0 {
		return ""
	}
	return fmt.Sprintf("\n⏳ Next heart in %d min.", pool.Refill.MinutesToNext)
}

func formatSummary(stats models.SessionStats) string {
	var b strings.Builder

	switch stats.Outcome {
	case models.OutcomeEndedEarly:
		b.WriteString("💔 Out of hearts!\n")
	case models.OutcomeQuit:
		b.WriteString("👋 Session ended.\n")
	default:
		b.WriteString("🏁 Session complete!\n")
	}

	fmt.Fprintf(&b, "✅ %d correct · ❌ %d wrong · 🎯 %.0f%%\n", stats.Correct, stats.Wrong, stats.Accuracy)
	fmt.Fprintf(&b, "⚡ avg %.1fs · 🔥 max combo %d\n", stats.AverageTime, stats.MaxCombo)
	fmt.Fprintf(&b, "⭐ %d XP", stats.TotalXP)
	if stats.BonusXP > 0 {
		fmt.Fprintf(&b, " (+%d bonus)", stats.BonusXP)
	}

	if len(stats.Achievements) > 0 {
		b.WriteString("\n\n🏆 Achievements:")
		for _, a := range stats.Achievements {
			fmt.Fprintf(&b, "\n%s %s: +%d XP", a.Icon, a.Title, a.XPBonus)
		}
	}

	if len(stats.MissedChallenges) > 0 {
		b.WriteString("\n\n📝 Review:")
		for _, m := range stats.MissedChallenges {
			fmt.Fprintf(&b, "\n• %s → %s", m.Prompt, m.Answer)
		}
	}

	if !stats.Persisted {
		b.WriteString("\n\n⚠️ Results could not be saved to your profile yet.")
	}
	return b.String()
}
