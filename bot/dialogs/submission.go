package dialogs

import (
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/logger"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
)

// onSubmitAssignment starts the subject-scoped submission dialog.
func (h *Handlers) onSubmitAssignment(c tele.Context) error {
	userID := c.Sender().ID
	h.Sessions.ClearTemp(userID, tmpSelectedSubject)
	h.Sessions.SetState(userID, StateSelectingSubject)
	return c.Send("Which subject is this assignment for?", SubjectPicker())
}

// handleSelectingSubject consumes the next text while the user is picking
// a subject. An exact subject match records the selection and prompts for
// the upload; anything else except Exit re-prompts.
func (h *Handlers) handleSelectingSubject(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if !domain.IsSubject(text) {
		return c.Send("Please choose a subject from the list.", SubjectPicker())
	}

	h.Sessions.ClearState(userID)
	h.Sessions.SetTemp(userID, tmpSelectedSubject, text)
	return c.Send("Now send the document for " + text + ".")
}

// HandleDocument correlates an inbound document with the sender's selected
// subject. Documents are routed here regardless of any active text dialog.
func (h *Handlers) HandleDocument(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Document == nil {
		return c.Send("Please send a valid file.")
	}
	doc := msg.Document
	user := c.Sender()

	subject := h.tempString(user.ID, tmpSelectedSubject)
	if subject == "" {
		return c.Send("Please choose a subject first: use \"" + BtnSubmitGroup + "\" or \"" + BtnSubmitIndividual + "\".")
	}

	// Declared size is checked before any storage call. The dialog state is
	// left untouched so the user may retry with a smaller file.
	if doc.FileSize > domain.MaxUploadBytes {
		logger.Warn(tghelpers.BuildContext(c), "svc.files", "upload.reject",
			slog.String("subject", subject),
			slog.String("file_name", logger.SanitizeLimit(doc.FileName, 128)),
			slog.Int64("file_size", doc.FileSize),
		)
		return c.Send("That file is too large: the limit is 50 MB. Please send a smaller file.")
	}

	fileName := doc.FileName
	if fileName == "" {
		fileName = "document"
	}

	tr := h.transport(c)
	rc, err := tr.File(&doc.File)
	if err != nil {
		logger.Error(tghelpers.BuildContext(c), "svc.files", "upload.download",
			slog.String("file_name", logger.SanitizeLimit(fileName, 128)),
			slog.String("err", err.Error()),
		)
		return c.Send("There was an error receiving your file. Please try again later.")
	}
	defer rc.Close()

	location, err := h.Storage.Store(subject, fileName, rc)
	if err != nil {
		logger.Error(tghelpers.BuildContext(c), "svc.files", "upload.store",
			slog.String("subject", subject),
			slog.String("file_name", logger.SanitizeLimit(fileName, 128)),
			slog.String("err", err.Error()),
		)
		return c.Send("There was an error saving your file. Please try again later.")
	}

	submitter := tghelpers.DisplayName(user)
	rec := domain.SubmittedFile{
		FileName:       fileName,
		FileID:         doc.File.FileID,
		SubmittedBy:    submitter,
		Subject:        subject,
		SubmissionDate: h.now().Format(tghelpers.DateLayout),
	}
	if err := h.Stores.Files.Add(rec); err != nil {
		return c.Send("There was an error recording your submission. Please try again later.")
	}
	h.Sessions.ClearTemp(user.ID, tmpSelectedSubject)

	logger.Info(tghelpers.BuildContext(c), "svc.files", "upload.accept",
		slog.String("subject", subject),
		slog.String("file_name", logger.SanitizeLimit(fileName, 128)),
		slog.String("location", location),
	)

	h.notifyAdmin(tr, rec)

	return c.Send(
		fmt.Sprintf("Your file %q has been submitted for %s.", fileName, subject),
		MainMenu(h.isAdmin(user.ID)),
	)
}

// notifyAdmin re-sends the accepted document to the administrator.
// Failures are logged and never surfaced to the submitter.
func (h *Handlers) notifyAdmin(tr Transport, rec domain.SubmittedFile) {
	if h.AdminID == 0 {
		return
	}
	forward := &tele.Document{
		File:     tele.File{FileID: rec.FileID},
		FileName: rec.FileName,
		Caption:  fmt.Sprintf("New %s submission from %s: %s", rec.Subject, rec.SubmittedBy, rec.FileName),
	}
	if _, err := tr.Send(tele.ChatID(h.AdminID), forward); err != nil {
		logger.Warn(logger.Background(), "svc.files", "upload.notify",
			slog.String("file_name", logger.SanitizeLimit(rec.FileName, 128)),
			slog.String("err", err.Error()),
		)
	}
}
