package main

import (
	"os"
	"strconv"
	"time"

	"SafetyQuizBot/internal/audit"
	"SafetyQuizBot/internal/bank"
	"SafetyQuizBot/internal/bot"
	"SafetyQuizBot/internal/core"
	"SafetyQuizBot/internal/health"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	tb "gopkg.in/telebot.v4"
)

func main() {
	logrus.Info("Bot is starting...")
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		logrus.Fatal("BOT_TOKEN missing")
	}
	adminChatIDStr := os.Getenv("ADMIN_CHAT_ID")
	if adminChatIDStr == "" {
		logrus.Fatal("ADMIN_CHAT_ID missing")
	}
	adminChatID, err := strconv.ParseInt(adminChatIDStr, 10, 64)
	if err != nil {
		logrus.Fatal("ADMIN_CHAT_ID invalid")
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	auditFile := os.Getenv("AUDIT_LOG_FILE")
	if auditFile == "" {
		auditFile = "data/audit.log"
	}

	b, err := tb.NewBot(tb.Settings{Token: token, Poller: &tb.LongPoller{Timeout: 10 * time.Second}})
	if err != nil {
		logrus.WithError(err).Fatal("bot create failed")
	}

	questions := bank.LoadOrDefault(os.Getenv("QUESTIONS_DIR"))
	sessions := core.NewRegistry()
	auditLog := audit.NewLogger(auditFile, bot.NewAdminNotifier(b, adminChatID), 64)
	defer auditLog.Close()

	health.Serve(addr)

	h := bot.NewQuizHandler(b, questions, sessions, auditLog)
	h.Register()
	logrus.WithFields(logrus.Fields{"admin_chat_id": adminChatID, "sections": len(questions.Sections())}).Info("Bot started")
	b.Start()
}
