// Package broadcast implements the fan-out of one message to every
// registered user. Delivery is fire-once: failures are counted per
// recipient and never abort the remaining sends.
package broadcast

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/core/logger"
)

// Sender is the outbound slice of *tele.Bot the fan-out needs.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Run sends text to every recipient id, counting failures without
// stopping. It returns how many sends succeeded and how many failed.
func Run(sender Sender, recipients []int64, text string) (sent, failed int) {
	for _, id := range recipients {
		if _, err := sender.Send(tele.ChatID(id), text); err != nil {
			failed++
			logger.Warn(logger.Background(), "svc.broadcast", "fanout.send",
				slog.Int64("user_id", id),
				slog.String("err", err.Error()),
			)
			continue
		}
		sent++
	}
	logger.Info(logger.Background(), "svc.broadcast", "fanout.done",
		slog.Int("recipients", len(recipients)),
		slog.Int("failed", failed),
	)
	return sent, failed
}
