package helpers

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// DisplayName builds a human-readable name for a Telegram user:
// first and last name when present, otherwise @username, otherwise "Unknown".
func DisplayName(u *tele.User) string {
	if u == nil {
		return "Unknown"
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return "Unknown"
}
