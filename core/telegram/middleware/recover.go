package middleware

import (
	"runtime/debug"

	"github.com/m3rciful/classbot/core/logger"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// RecoverMiddleware catches panics in handlers and prevents the bot from
// crashing. The user gets a generic error reply; the panic is logged with
// its stack and the process keeps serving updates.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(tghelpers.BuildContext(c), "tg", "tg.panic",
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
				_ = c.Send("An error occurred. Please try again.")
			}
		}()
		return next(c)
	}
}
