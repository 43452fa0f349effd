package dialogs

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// MenuDispatch is the text fallback: it runs when no dialog is in progress
// and the text is not a registered command. It maps main-menu button labels
// to dialog entry points.
func (h *Handlers) MenuDispatch(c tele.Context) error {
	switch strings.TrimSpace(c.Text()) {
	case BtnSubmitGroup, BtnSubmitIndividual:
		return h.onSubmitAssignment(c)
	case BtnExamAnnouncement:
		return h.onExamAnnouncement(c)
	case BtnManageFiles:
		return h.onManageFiles(c)
	case BtnViewAssignments:
		return h.requireAdmin(c, h.onViewAssignments)
	case BtnAddExamDate:
		return h.requireAdmin(c, h.onAddExamDate)
	case BtnDeleteExam:
		return h.requireAdmin(c, h.onDeleteExam)
	case BtnPostMessage:
		return h.requireAdmin(c, h.onPostMessage)
	case BtnFilterByDate:
		return h.requireAdmin(c, h.onFilterByDate)
	case BtnBuyCoffee:
		return h.onBuyCoffee(c)
	case BtnExit:
		return h.exitToMenu(c)
	default:
		return h.UnknownText(c)
	}
}

// UnknownText answers text that matched nothing.
func (h *Handlers) UnknownText(c tele.Context) error {
	return c.Send("I did not understand that. Please use the menu.", MainMenu(h.isAdmin(c.Sender().ID)))
}

// UnknownCallback answers callbacks with no registered handler.
func (h *Handlers) UnknownCallback(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
}

func (h *Handlers) onBuyCoffee(c tele.Context) error {
	if h.DonateURL == "" {
		return c.Send("Thank you for the thought! Donations are not set up right now.")
	}
	return c.Send("If this bot helps you, you can buy me a coffee here: " + h.DonateURL)
}
