package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the keep-alive router.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Bot is running!"))
	})
	return r
}

// Serve starts the keep-alive endpoint in the background. A bind
// failure must not take the bot down, so it is only logged.
func Serve(addr string) {
	go func() {
		logrus.WithField("addr", addr).Info("Health endpoint listening")
		if err := http.ListenAndServe(addr, NewRouter()); err != nil {
			logrus.WithError(err).WithField("addr", addr).Error("Health server stopped")
		}
	}()
}
