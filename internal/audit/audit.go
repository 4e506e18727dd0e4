package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"SafetyQuizBot/internal/core"

	"github.com/sirupsen/logrus"
)

// Notifier forwards a formatted audit message to the admin chat.
type Notifier interface {
	Notify(text string)
}

// Logger consumes domain events on a single goroutine, appending a line
// per event to the audit file and forwarding a notification to the
// admin chat. Both sinks are best effort: failures are logged and
// swallowed, and Record never blocks the caller.
type Logger struct {
	file     string
	notifier Notifier
	events   chan core.Event
	done     chan struct{}
}

// NewLogger starts the audit consumer.
func NewLogger(file string, notifier Notifier, buffer int) *Logger {
	if dir := filepath.Dir(file); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	l := &Logger{
		file:     file,
		notifier: notifier,
		events:   make(chan core.Event, buffer),
		done:     make(chan struct{}),
	}
	go l.run()
	return l
}

// Record queues an event; drops it when the buffer is full.
func (l *Logger) Record(ev core.Event) {
	select {
	case l.events <- ev:
	default:
		logrus.WithField("kind", ev.Kind).Warn("Audit buffer full, event dropped")
	}
}

// Close drains queued events and stops the consumer.
func (l *Logger) Close() {
	close(l.events)
	<-l.done
}

func (l *Logger) run() {
	for ev := range l.events {
		l.append(fmt.Sprintf("%s | %s | %s", time.Now().Format("2006-01-02 15:04:05"), ev.User, Describe(ev)))
		l.notify(ev)
	}
	close(l.done)
}

// Describe renders the human-readable action text for an event.
func Describe(ev core.Event) string {
	switch ev.Kind {
	case core.EventSessionStarted:
		return fmt.Sprintf("розпочав тест «%s»", ev.Category)
	case core.EventSessionCompleted:
		return fmt.Sprintf("завершив тест «%s»: %d з %d", ev.Category, ev.Score, ev.Total)
	}
	return ev.Kind.String()
}

func (l *Logger) append(line string) {
	f, err := os.OpenFile(l.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.WithError(err).WithField("file", l.file).Error("Audit append failed")
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		logrus.WithError(err).WithField("file", l.file).Error("Audit write failed")
	}
}

func (l *Logger) notify(ev core.Event) {
	if l.notifier == nil {
		return
	}
	switch ev.Kind {
	case core.EventSessionStarted:
		l.notifier.Notify(fmt.Sprintf("🏁 Користувач розпочав тест.\n\nКористувач: %s\nРозділ: %s", ev.User, ev.Category))
	case core.EventSessionCompleted:
		l.notifier.Notify(fmt.Sprintf("✅ Користувач завершив тест.\n\nКористувач: %s\nРозділ: %s\nПравильних відповідей: %d/%d", ev.User, ev.Category, ev.Score, ev.Total))
	}
}
