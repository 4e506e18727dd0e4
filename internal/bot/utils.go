package bot

import (
	"fmt"

	"github.com/sirupsen/logrus"
	tb "gopkg.in/telebot.v4"
)

// sendOrEdit sends a new message or edits an existing one.
func (qh *QuizHandler) sendOrEdit(chat *tb.Chat, msg *tb.Message, text string, rm *tb.ReplyMarkup) *tb.Message {
	var err error
	if msg == nil {
		msg, err = qh.bot.Send(chat, text, rm)
	} else {
		msg, err = qh.bot.Edit(msg, text, rm)
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"chat_id": chat.ID, "action": "send_or_edit"}).Error("Message error")
		return nil
	}
	return msg
}

// GetUserDisplayName returns display name
func GetUserDisplayName(user *tb.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return fmt.Sprintf("%s (ID: %d)", name, user.ID)
}

// AdminNotifier forwards audit notifications to the admin chat.
type AdminNotifier struct {
	bot         *tb.Bot
	adminChatID int64
}

// NewAdminNotifier creates a notifier bound to the admin chat.
func NewAdminNotifier(b *tb.Bot, adminChatID int64) *AdminNotifier {
	return &AdminNotifier{bot: b, adminChatID: adminChatID}
}

// Notify sends a message to the admin chat; failures are logged only.
func (an *AdminNotifier) Notify(text string) {
	if _, err := an.bot.Send(&tb.Chat{ID: an.adminChatID}, text); err != nil {
		logrus.WithError(err).WithField("admin_chat_id", an.adminChatID).Error("Failed to send admin log")
	}
}
