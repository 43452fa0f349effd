package dialogs

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/broadcast"
)

// onPostMessage starts the broadcast dialog.
func (h *Handlers) onPostMessage(c tele.Context) error {
	h.Sessions.SetState(c.Sender().ID, StatePendingBroadcast)
	return c.Send("Send the message to broadcast to all registered users, or Exit.")
}

// handlePendingBroadcast stores the candidate message and asks for
// confirmation with a preview.
func (h *Handlers) handlePendingBroadcast(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if text == "" {
		return c.Send("The broadcast message cannot be empty. Send the message, or Exit.")
	}

	h.Sessions.SetTemp(userID, tmpBroadcastMessage, text)
	h.Sessions.SetState(userID, StateConfirmBroadcast)
	return c.Send("You are about to send:\n\n" + text + "\n\nReply \"yes\" to confirm, anything else to cancel.")
}

// handleConfirmBroadcast triggers the fan-out on "yes" and cancels on any
// other input. Both paths drop the candidate message and the mode.
func (h *Handlers) handleConfirmBroadcast(c tele.Context) error {
	userID := c.Sender().ID
	confirmed := strings.EqualFold(strings.TrimSpace(c.Text()), "yes")
	message := h.tempString(userID, tmpBroadcastMessage)
	h.Sessions.Clear(userID)

	if !confirmed || message == "" {
		return c.Send("Broadcast cancelled.", MainMenu(true))
	}

	recipients := h.Stores.Users.All()
	tr := h.transport(c)
	initiator := tele.ChatID(c.Chat().ID)

	// The fan-out can take a while with many recipients; it runs off the
	// event-handling path and reports back to the initiator on completion.
	go func() {
		sent, failed := broadcast.Run(tr, recipients, message)
		_, _ = tr.Send(initiator, fmt.Sprintf("Broadcast finished: delivered to %d users, %d failures.", sent, failed))
	}()

	return c.Send(fmt.Sprintf("Broadcasting to %d users...", len(recipients)), MainMenu(true))
}
