package dialogs

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/core/logger"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
)

// Start registers the sender in the user store and shows the role menu.
// Registration is idempotent: a returning user changes nothing.
func (h *Handlers) Start(c tele.Context) error {
	user := c.Sender()
	ctx := tghelpers.BuildContext(c)
	h.Sessions.Clear(user.ID)

	added, err := h.Stores.Users.Add(user.ID)
	if err != nil {
		logger.Error(ctx, "store", "register.save",
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
	}
	if added {
		logger.Info(ctx, "tg", "user.register",
			slog.Int64("user_id", user.ID),
			slog.String("username", logger.SanitizeLimit(user.Username, 64)),
		)
	}

	greeting := "Hello, " + tghelpers.DisplayName(user) + "! I am the class assistant. Please choose an option:"
	return c.Send(greeting, MainMenu(h.isAdmin(user.ID)))
}
