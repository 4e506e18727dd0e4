package bot

import (
	"fmt"
	"strconv"
	"strings"

	"SafetyQuizBot/internal/core"

	"github.com/sirupsen/logrus"
	tb "gopkg.in/telebot.v4"
)

// Display strings.
const (
	msgChooseSection = "Вибери розділ для тесту:"
	msgNoActiveQuiz  = "Тест не активний. Натисни /start, щоб почати."
	msgNothingPicked = "нічого"
	btnConfirm       = "✅ Підтвердити"
	btnDetails       = "🔍 Розбір помилок"
	btnRestart       = "🔄 Пройти ще раз"
	prefixSelected   = "✅ "
	prefixUnselected = "▫️ "
)

// gradeLabels maps grade tiers to display text.
var gradeLabels = map[core.Grade]string{
	core.GradeExcellent:    "🏆 Відмінно",
	core.GradeGood:         "👍 Добре",
	core.GradeSatisfactory: "🙂 Задовільно",
	core.GradePoor:         "😞 Погано",
}

// HandleStart offers the section keyboard.
func (qh *QuizHandler) HandleStart(c tb.Context) error {
	if c.Chat() == nil || c.Chat().Type != tb.ChatPrivate {
		return nil
	}
	return c.Send(msgChooseSection, qh.sectionKeyboard())
}

// HandleText starts a quiz when the message matches a section name.
func (qh *QuizHandler) HandleText(c tb.Context) error {
	if c.Message() == nil || c.Sender() == nil || c.Chat() == nil || c.Chat().Type != tb.ChatPrivate {
		return nil
	}
	sec, ok := qh.bank.Section(strings.TrimSpace(c.Message().Text))
	if !ok {
		return nil
	}
	s := qh.sessions.Start(c.Sender().ID, sec.Name)
	qh.audit.Record(core.Event{Kind: core.EventSessionStarted, User: GetUserDisplayName(c.Sender()), Category: sec.Name})
	logrus.WithFields(logrus.Fields{"user_id": c.Sender().ID, "section": sec.Name}).Info("Quiz started")
	view, _ := core.NextView(s, sec)
	return qh.renderQuestion(c, view, false)
}

// onToggle flips one option and re-renders the same question.
func (qh *QuizHandler) onToggle(c tb.Context, in ToggleIntent) error {
	s, sec, ok := qh.activeSession(c)
	if !ok {
		return c.Respond(&tb.CallbackResponse{Text: msgNoActiveQuiz})
	}
	view, _ := core.NextView(s, sec)
	if view == nil {
		return c.Respond(&tb.CallbackResponse{})
	}
	if err := core.Toggle(s, view.Question, in.Option); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"user_id": c.Sender().ID, "option": in.Option}).Warn("Toggle rejected")
		return c.Respond(&tb.CallbackResponse{})
	}
	_ = c.Respond(&tb.CallbackResponse{})
	return qh.renderQuestion(c, view, true)
}

// onConfirm submits the pending selection and advances or reports.
func (qh *QuizHandler) onConfirm(c tb.Context) error {
	s, sec, ok := qh.activeSession(c)
	if !ok {
		return c.Respond(&tb.CallbackResponse{Text: msgNoActiveQuiz})
	}
	rep, err := core.Confirm(s, sec)
	if err != nil {
		logrus.WithError(err).WithField("user_id", c.Sender().ID).Warn("Confirm rejected")
		return c.Respond(&tb.CallbackResponse{})
	}
	_ = c.Respond(&tb.CallbackResponse{})
	if rep != nil {
		qh.audit.Record(core.Event{
			Kind:     core.EventSessionCompleted,
			User:     GetUserDisplayName(c.Sender()),
			Category: sec.Name,
			Score:    rep.Score,
			Total:    rep.Total,
		})
		logrus.WithFields(logrus.Fields{"user_id": c.Sender().ID, "section": sec.Name, "score": rep.Score, "total": rep.Total, "grade": rep.Grade.String()}).Info("Quiz completed")
		return qh.renderReport(c, sec, rep)
	}
	view, _ := core.NextView(s, sec)
	return qh.renderQuestion(c, view, false)
}

// onDetails sends the wrong-answer breakdown.
func (qh *QuizHandler) onDetails(c tb.Context) error {
	s, sec, ok := qh.activeSession(c)
	if !ok {
		return c.Respond(&tb.CallbackResponse{Text: msgNoActiveQuiz})
	}
	_, rep := core.NextView(s, sec)
	if rep == nil || len(rep.Wrong) == 0 {
		return c.Respond(&tb.CallbackResponse{})
	}
	_ = c.Respond(&tb.CallbackResponse{})
	markup := &tb.ReplyMarkup{InlineKeyboard: [][]tb.InlineButton{{{Unique: uniqueRestart, Text: btnRestart}}}}
	qh.sendOrEdit(c.Chat(), nil, detailsText(rep), markup)
	return nil
}

// onRestart clears the session and re-offers the sections.
func (qh *QuizHandler) onRestart(c tb.Context) error {
	qh.sessions.Clear(c.Sender().ID)
	_ = c.Respond(&tb.CallbackResponse{})
	return c.Send(msgChooseSection, qh.sectionKeyboard())
}

func (qh *QuizHandler) sectionKeyboard() *tb.ReplyMarkup {
	sections := qh.bank.Sections()
	rows := make([][]tb.ReplyButton, 0, len(sections))
	for _, sec := range sections {
		rows = append(rows, []tb.ReplyButton{{Text: sec.Name}})
	}
	return &tb.ReplyMarkup{ReplyKeyboard: rows, ResizeKeyboard: true}
}

// renderQuestion shows the question at the session cursor. sameQuestion
// marks a toggle re-render, where editing in place is preferred.
func (qh *QuizHandler) renderQuestion(c tb.Context, view *core.QuestionView, sameQuestion bool) error {
	if view == nil {
		return nil
	}
	text := fmt.Sprintf("❓ Питання %d з %d\n\n%s", view.Index+1, view.Total, view.Question.Text)
	markup := questionKeyboard(view)
	msg := c.Message()

	if view.Question.Image != "" {
		if sameQuestion && msg != nil && msg.Photo != nil {
			// Toggling on a photo question: only the keyboard changes.
			if _, err := qh.bot.EditReplyMarkup(msg, markup); err != nil {
				logrus.WithError(err).WithField("chat_id", c.Chat().ID).Error("Keyboard edit failed")
			}
			return nil
		}
		photo := &tb.Photo{File: tb.FromURL(view.Question.Image), Caption: text}
		if _, err := qh.bot.Send(c.Chat(), photo, markup); err != nil {
			logrus.WithError(err).WithField("chat_id", c.Chat().ID).Error("Photo send failed")
		}
		return nil
	}

	if c.Callback() != nil && msg != nil && msg.Photo == nil {
		qh.sendOrEdit(c.Chat(), msg, text, markup)
		return nil
	}
	qh.sendOrEdit(c.Chat(), nil, text, markup)
	return nil
}

// questionKeyboard renders one button per option, shuffled for display
// but always carrying the canonical index in the payload.
func questionKeyboard(view *core.QuestionView) *tb.ReplyMarkup {
	order := displayOrder(view.Index, len(view.Question.Options))
	rows := make([][]tb.InlineButton, 0, len(order)+1)
	for _, i := range order {
		prefix := prefixUnselected
		if view.Pending.Has(i) {
			prefix = prefixSelected
		}
		rows = append(rows, []tb.InlineButton{{
			Unique: uniqueOption,
			Text:   prefix + view.Question.Options[i].Label,
			Data:   strconv.Itoa(i),
		}})
	}
	rows = append(rows, []tb.InlineButton{{Unique: uniqueConfirm, Text: btnConfirm}})
	return &tb.ReplyMarkup{InlineKeyboard: rows}
}

// renderReport shows the final summary. The session is kept until
// restart so the details view can still read the report.
func (qh *QuizHandler) renderReport(c tb.Context, sec core.Section, rep *core.Report) error {
	text := fmt.Sprintf("📊 Результат тесту «%s»\n\n✅ Правильних відповідей: %d з %d (%d%%)\nОцінка: %s",
		sec.Name, rep.Score, rep.Total, rep.Percent, gradeLabels[rep.Grade])
	var rows [][]tb.InlineButton
	if len(rep.Wrong) > 0 {
		rows = append(rows, []tb.InlineButton{{Unique: uniqueDetails, Text: btnDetails}})
	}
	rows = append(rows, []tb.InlineButton{{Unique: uniqueRestart, Text: btnRestart}})
	markup := &tb.ReplyMarkup{InlineKeyboard: rows}

	msg := c.Message()
	if msg != nil && msg.Photo == nil {
		qh.sendOrEdit(c.Chat(), msg, text, markup)
		return nil
	}
	qh.sendOrEdit(c.Chat(), nil, text, markup)
	return nil
}

// detailsText formats the wrong-answer breakdown.
func detailsText(rep *core.Report) string {
	var sb strings.Builder
	sb.WriteString("🔍 Розбір помилок:\n")
	for n, w := range rep.Wrong {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n", n+1, w.Text))
		sb.WriteString("Твоя відповідь: " + labelList(w.Options, w.Selected) + "\n")
		sb.WriteString("Правильна відповідь: " + labelList(w.Options, w.Correct) + "\n")
	}
	return sb.String()
}

func labelList(options []core.Option, indices []int) string {
	if len(indices) == 0 {
		return msgNothingPicked
	}
	labels := make([]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(options) {
			labels = append(labels, options[i].Label)
		}
	}
	return strings.Join(labels, ", ")
}
