// Package dialogs implements the per-user conversational state machine:
// menu dispatch, subject-scoped submission, the exam-creation wizard, exam
// deletion, file viewing and management, and the broadcast confirmation
// dialog. Handlers advance one dialog step per inbound event and hand the
// session back to the FSM manager.
package dialogs

import (
	"io"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/files"
	"github.com/m3rciful/classbot/bot/store"
	tg "github.com/m3rciful/classbot/core/telegram"
	"github.com/m3rciful/classbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
	"github.com/m3rciful/classbot/core/telegram/state"
)

// Transport is the slice of *tele.Bot the handlers need for out-of-band
// sends (admin notifications, broadcast, re-sends) and file downloads.
// Tests substitute a stub.
type Transport interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	File(file *tele.File) (io.ReadCloser, error)
}

// Handlers owns the dialog state machine and its collaborators.
type Handlers struct {
	Sessions  state.Manager
	Stores    *store.Stores
	Storage   files.Storage
	AdminID   int64
	DonateURL string

	// Transport overrides c.Bot() when set; used by tests.
	Transport Transport

	clock func() time.Time
}

// New wires the dialog handlers.
func New(sessions state.Manager, stores *store.Stores, storage files.Storage, adminID int64, donateURL string) *Handlers {
	return &Handlers{
		Sessions:  sessions,
		Stores:    stores,
		Storage:   storage,
		AdminID:   adminID,
		DonateURL: donateURL,
	}
}

// Register binds commands, callbacks, FSM state handlers, and the text
// fallback to the registry.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Register and show the main menu",
	})

	_ = reg.RegisterCallback("exam", h.onExamDetail)
	_ = reg.RegisterCallback("delete_file", h.onDeleteFile)
	_ = reg.RegisterCallback("exit_manage_files", h.onExitManageFiles)

	reg.SetTextFallback(h.MenuDispatch)

	state.RegisterHandler(StateSelectingSubject, h.handleSelectingSubject)
	state.RegisterHandler(StateViewingSubject, h.handleViewingSubject)
	state.RegisterHandler(StateFilteringByDate, h.handleFilteringByDate)
	state.RegisterHandler(StateAddingExamName, h.handleAddingExamName)
	state.RegisterHandler(StateAddingExamDate, h.handleAddingExamDate)
	state.RegisterHandler(StateAddingExamTime, h.handleAddingExamTime)
	state.RegisterHandler(StateAddingExamContent, h.handleAddingExamContent)
	state.RegisterHandler(StateAddingExamVerify, h.handleAddingExamVerify)
	state.RegisterHandler(StateDeletingExam, h.handleDeletingExam)
	state.RegisterHandler(StatePendingBroadcast, h.handlePendingBroadcast)
	state.RegisterHandler(StateConfirmBroadcast, h.handleConfirmBroadcast)
}

func (h *Handlers) transport(c tele.Context) Transport {
	if h.Transport != nil {
		return h.Transport
	}
	return c.Bot()
}

func (h *Handlers) now() time.Time {
	if h.clock != nil {
		return h.clock()
	}
	return time.Now()
}

func (h *Handlers) isAdmin(userID int64) bool {
	return h.AdminID != 0 && userID == h.AdminID
}

// requireAdmin guards admin-only dialog entry points: non-administrators
// get a denial and no state change.
func (h *Handlers) requireAdmin(c tele.Context, next tele.HandlerFunc) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Send("This action is only available to the administrator.")
	}
	return next(c)
}

// exitToMenu clears the whole session and re-sends the role menu. The
// send goes through the async dispatcher when one is running.
func (h *Handlers) exitToMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.Sessions.Clear(userID)
	return tghelpers.SendText(c, "Main menu:", &tele.SendOptions{ReplyMarkup: MainMenu(h.isAdmin(userID))})
}

func (h *Handlers) tempString(userID int64, key string) string {
	v, ok := h.Sessions.GetTemp(userID, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
