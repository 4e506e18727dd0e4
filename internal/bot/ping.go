package bot

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	tb "gopkg.in/telebot.v4"
)

// HandlePing replies with latency (private only).
func (qh *QuizHandler) HandlePing(c tb.Context) error {
	start := time.Now()
	if c.Message() == nil || c.Chat() == nil || c.Sender() == nil {
		return nil
	}
	if c.Chat().Type != tb.ChatPrivate {
		return nil
	}
	msg, err := qh.bot.Send(c.Chat(), "🏓 Понг!")
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"chat_id": c.Chat().ID, "user_id": c.Sender().ID}).Error("Failed to send ping response")
		return err
	}
	ms := time.Since(start).Milliseconds()
	if _, err = qh.bot.Edit(msg, fmt.Sprintf("🏓 Понг! (%d мс)", ms)); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"chat_id": c.Chat().ID, "user_id": c.Sender().ID}).Error("Failed to edit ping message")
	}
	return nil
}
