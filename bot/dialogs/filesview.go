package dialogs

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/bot/files"
	"github.com/m3rciful/classbot/core/logger"
	"github.com/m3rciful/classbot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
	"github.com/m3rciful/classbot/core/telegram/keyboard"
)

// onViewAssignments starts the admin subject-view dialog.
func (h *Handlers) onViewAssignments(c tele.Context) error {
	h.Sessions.SetState(c.Sender().ID, StateViewingSubject)
	return c.Send("Which subject do you want to view?", SubjectPicker())
}

// handleViewingSubject delivers every submission for the chosen subject as
// documents, followed by a summary. Non-subject text re-prompts.
func (h *Handlers) handleViewingSubject(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if !domain.IsSubject(text) {
		return c.Send("Please choose a subject from the list.", SubjectPicker())
	}

	h.Sessions.ClearState(userID)
	return h.deliverFiles(c, h.Stores.Files.BySubject(text), text)
}

// onFilterByDate starts the date-based retrieval dialog.
func (h *Handlers) onFilterByDate(c tele.Context) error {
	h.Sessions.SetState(c.Sender().ID, StateFilteringByDate)
	return c.Send("Send a submission date to filter by (YYYY-MM-DD):")
}

// handleFilteringByDate delivers submissions for the given date. Unlike
// the exam wizard's date step, a parse failure exits the mode instead of
// retrying in place.
func (h *Handlers) handleFilteringByDate(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if text == BtnExit {
		return h.exitToMenu(c)
	}

	h.Sessions.ClearState(userID)
	if _, ok := tghelpers.ParseDate(text); !ok {
		return c.Send("Invalid date format, expected YYYY-MM-DD. Filtering cancelled.")
	}
	return h.deliverFiles(c, h.Stores.Files.ByDate(text), "date "+text)
}

// deliverFiles re-sends each record as a document to the requester and
// closes with a summary. Per-file transport failures are counted and do
// not abort the remaining sends.
func (h *Handlers) deliverFiles(c tele.Context, recs []domain.SubmittedFile, scope string) error {
	if len(recs) == 0 {
		return c.Send(fmt.Sprintf("No submissions found for %s.", scope))
	}

	delivered := 0
	for _, rec := range recs {
		doc := &tele.Document{
			File:     tele.File{FileID: rec.FileID},
			FileName: rec.FileName,
			Caption:  fmt.Sprintf("%s — %s (%s)", rec.SubmittedBy, rec.Subject, rec.SubmissionDate),
		}
		if err := c.Send(doc); err != nil {
			logger.Warn(tghelpers.BuildContext(c), "svc.files", "view.resend",
				slog.String("file_name", logger.SanitizeLimit(rec.FileName, 128)),
				slog.String("err", err.Error()),
			)
			continue
		}
		delivered++
	}
	return c.Send(fmt.Sprintf("Delivered %d of %d submissions for %s.", delivered, len(recs), scope))
}

// --- file management ---

// onManageFiles lists the requester's own submissions as an inline
// pick-list keyed by position.
func (h *Handlers) onManageFiles(c tele.Context) error {
	owner := tghelpers.DisplayName(c.Sender())
	recs := h.Stores.Files.ByOwner(owner)
	if len(recs) == 0 {
		return c.Send("You have no submitted files.")
	}

	buttons := make([]keyboard.InlineBtn, 0, len(recs)+1)
	for i, rec := range recs {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%d. %s (%s)", i+1, rec.FileName, rec.Subject),
			Unique: "delete_file",
			Data:   fmt.Sprintf("%d", i),
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: BtnExit, Unique: "exit_manage_files"})
	return c.Send("Your submitted files — select one to delete:", keyboard.InlineButtons(buttons))
}

// onDeleteFile removes the selected record and, best-effort, its stored
// content. Missing content is reported but never blocks record removal.
func (h *Handlers) onDeleteFile(c tele.Context) error {
	owner := tghelpers.DisplayName(c.Sender())
	idx, err := callbacks.PayloadInt(c)
	if err != nil {
		return c.Edit("File not found.")
	}
	rec, ok := h.Stores.Files.RemoveOwned(owner, idx)
	if !ok {
		return c.Edit("File not found.")
	}

	note := ""
	location := h.Storage.PathFor(rec.Subject, rec.FileName)
	if err := h.Storage.Delete(location); err != nil {
		if errors.Is(err, files.ErrNotFound) {
			note = " The stored copy was already missing."
		} else {
			logger.Warn(tghelpers.BuildContext(c), "svc.files", "manage.delete.content",
				slog.String("file_name", logger.SanitizeLimit(rec.FileName, 128)),
				slog.String("err", err.Error()),
			)
			note = " The stored copy could not be removed."
		}
	}

	logger.Info(tghelpers.BuildContext(c), "svc.files", "manage.delete",
		slog.String("subject", rec.Subject),
		slog.String("file_name", logger.SanitizeLimit(rec.FileName, 128)),
	)
	return c.Edit(fmt.Sprintf("File %q has been deleted.%s", rec.FileName, note))
}

func (h *Handlers) onExitManageFiles(c tele.Context) error {
	return c.Edit("File management closed.")
}
