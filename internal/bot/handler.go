package bot

import (
	"sync"
	"time"

	"SafetyQuizBot/internal/core"

	"github.com/sirupsen/logrus"
	tb "gopkg.in/telebot.v4"
)

// QuizHandler aggregates the bot dependencies for the quiz flow.
type QuizHandler struct {
	bot      *tb.Bot
	bank     core.QuestionBank
	sessions *core.Registry
	audit    core.AuditSink
	rlMu     sync.Mutex
	rateLim  map[int64]time.Time
}

// NewQuizHandler wires dependencies.
func NewQuizHandler(b *tb.Bot, bank core.QuestionBank, sessions *core.Registry, audit core.AuditSink) *QuizHandler {
	return &QuizHandler{
		bot:      b,
		bank:     bank,
		sessions: sessions,
		audit:    audit,
		rateLim:  make(map[int64]time.Time),
	}
}

// Register sets handlers.
func (qh *QuizHandler) Register() {
	qh.bot.Handle("/start", qh.HandleStart)
	qh.bot.Handle("/ping", qh.RateLimit(qh.HandlePing))
	qh.bot.Handle(tb.OnText, qh.HandleText)
	for _, unique := range []string{uniqueOption, uniqueConfirm, uniqueDetails, uniqueRestart} {
		qh.bot.Handle(&tb.InlineButton{Unique: unique}, qh.callbackHandler(unique))
	}
	qh.setBotCommands()
}

// callbackHandler decodes the payload into a typed intent and
// dispatches it. Undecodable callbacks get a benign ack and no state
// change.
func (qh *QuizHandler) callbackHandler(unique string) func(tb.Context) error {
	return func(c tb.Context) error {
		if c.Sender() == nil {
			return nil
		}
		intent, err := DecodeIntent(unique, c.Data())
		if err != nil {
			logrus.WithError(err).WithField("user_id", c.Sender().ID).Warn("Undecodable callback")
			return c.Respond(&tb.CallbackResponse{})
		}
		switch in := intent.(type) {
		case ToggleIntent:
			return qh.onToggle(c, in)
		case ConfirmIntent:
			return qh.onConfirm(c)
		case DetailsIntent:
			return qh.onDetails(c)
		case RestartIntent:
			return qh.onRestart(c)
		}
		return c.Respond(&tb.CallbackResponse{})
	}
}

// RateLimit enforces a per-user cooldown on a command.
func (qh *QuizHandler) RateLimit(handler func(tb.Context) error) func(tb.Context) error {
	return func(c tb.Context) error {
		if c.Sender() == nil {
			return nil
		}
		now := time.Now()
		qh.rlMu.Lock()
		last := qh.rateLim[c.Sender().ID]
		if now.Sub(last) < 3*time.Second {
			qh.rlMu.Unlock()
			return nil
		}
		qh.rateLim[c.Sender().ID] = now
		qh.rlMu.Unlock()
		return handler(c)
	}
}

// activeSession resolves the sender's session and its section.
func (qh *QuizHandler) activeSession(c tb.Context) (*core.Session, core.Section, bool) {
	if c.Sender() == nil {
		return nil, core.Section{}, false
	}
	s, ok := qh.sessions.Get(c.Sender().ID)
	if !ok {
		return nil, core.Section{}, false
	}
	sec, ok := qh.bank.Section(s.Category)
	if !ok {
		logrus.WithFields(logrus.Fields{"user_id": c.Sender().ID, "category": s.Category}).Error("Session references unknown section")
		qh.sessions.Clear(c.Sender().ID)
		return nil, core.Section{}, false
	}
	return s, sec, true
}

// setBotCommands sets bot commands.
func (qh *QuizHandler) setBotCommands() {
	commands := []tb.Command{
		{Text: "start", Description: "Вибрати розділ для тесту"},
		{Text: "ping", Description: "Перевірити, чи бот живий"},
	}
	_ = qh.bot.SetCommands(commands)
}
