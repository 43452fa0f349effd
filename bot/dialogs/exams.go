package dialogs

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/logger"
	"github.com/m3rciful/classbot/core/telegram/callbacks"
	"github.com/m3rciful/classbot/core/telegram/format"
	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
	"github.com/m3rciful/classbot/core/telegram/keyboard"
)

// onExamAnnouncement lists the scheduled exams with inline detail buttons.
// Available to every user.
func (h *Handlers) onExamAnnouncement(c tele.Context) error {
	exams := h.Stores.Exams.All()
	if len(exams) == 0 {
		return c.Send("No exams have been announced yet.")
	}

	var b strings.Builder
	b.WriteString("Scheduled exams:\n")
	buttons := make([]keyboard.InlineBtn, 0, len(exams))
	for i, exam := range exams {
		fmt.Fprintf(&b, "%d. %s — %s %s\n", i+1, exam.Name, exam.Date, exam.Time)
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%d. %s", i+1, exam.Name),
			Unique: "exam",
			Data:   strconv.Itoa(i),
		})
	}
	b.WriteString("\nSelect an exam for details.")
	return c.Send(b.String(), keyboard.InlineButtons(buttons))
}

// onExamDetail answers an exam_<i> inline button by editing the list
// message into the full record.
func (h *Handlers) onExamDetail(c tele.Context) error {
	idx, err := callbacks.PayloadInt(c)
	if err != nil {
		return c.Edit("Exam not found.")
	}
	exam, ok := h.Stores.Exams.Get(idx)
	if !ok {
		return c.Edit("Exam not found.")
	}
	detail := fmt.Sprintf("*%s*\nDate: %s\nTime: %s\n\n%s",
		format.EscapeMarkdownV2(exam.Name),
		format.EscapeMarkdownV2(exam.Date),
		format.EscapeMarkdownV2(exam.Time),
		format.EscapeMarkdownV2(exam.Content),
	)
	return c.Edit(detail, tele.ModeMarkdownV2)
}

// --- exam-creation wizard ---

// onAddExamDate starts the admin wizard at the name step.
func (h *Handlers) onAddExamDate(c tele.Context) error {
	userID := c.Sender().ID
	h.Sessions.Clear(userID)
	h.Sessions.SetState(userID, StateAddingExamName)
	return c.Send("Enter the exam name (or Exit to cancel):")
}

func (h *Handlers) handleAddingExamName(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if text == "" {
		return c.Send("The exam name cannot be empty. Enter the exam name:")
	}
	h.Sessions.SetTemp(userID, tmpExamName, text)
	h.Sessions.SetState(userID, StateAddingExamDate)
	return c.Send("Enter the exam date (YYYY-MM-DD):")
}

func (h *Handlers) handleAddingExamDate(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if _, ok := tghelpers.ParseDate(text); !ok {
		return c.Send("Invalid date. Please use the format YYYY-MM-DD, e.g. 2024-05-01:")
	}
	h.Sessions.SetTemp(userID, tmpExamDate, text)
	h.Sessions.SetState(userID, StateAddingExamTime)
	return c.Send("Enter the exam time (HH:MM, 24-hour):")
}

func (h *Handlers) handleAddingExamTime(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if _, ok := tghelpers.ParseClock(text); !ok {
		return c.Send("Invalid time. Please use the 24-hour format HH:MM, e.g. 14:30:")
	}
	h.Sessions.SetTemp(userID, tmpExamTime, text)
	h.Sessions.SetState(userID, StateAddingExamContent)
	return c.Send("Describe the exam content:")
}

func (h *Handlers) handleAddingExamContent(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if text == "" {
		return c.Send("The content cannot be empty. Describe the exam content:")
	}
	h.Sessions.SetTemp(userID, tmpExamContent, text)
	h.Sessions.SetState(userID, StateAddingExamVerify)

	summary := fmt.Sprintf(
		"Please verify:\nName: %s\nDate: %s\nTime: %s\nContent: %s\n\nReply \"yes\" to confirm, anything else to cancel.",
		h.tempString(userID, tmpExamName),
		h.tempString(userID, tmpExamDate),
		h.tempString(userID, tmpExamTime),
		text,
	)
	return c.Send(summary)
}

// handleAddingExamVerify commits or cancels the wizard. Either outcome is
// terminal: the wizard state and accumulated input are dropped.
func (h *Handlers) handleAddingExamVerify(c tele.Context) error {
	userID := c.Sender().ID
	confirmed := strings.EqualFold(strings.TrimSpace(c.Text()), "yes")

	name := h.tempString(userID, tmpExamName)
	date := h.tempString(userID, tmpExamDate)
	clock := h.tempString(userID, tmpExamTime)
	content := h.tempString(userID, tmpExamContent)
	h.Sessions.Clear(userID)

	if !confirmed {
		return c.Send("Exam creation cancelled.", MainMenu(true))
	}

	rec := domain.NewExamRecord(name, date, clock, content)
	if err := h.Stores.Exams.Add(rec); err != nil {
		return c.Send("There was an error saving the exam. Please try again.")
	}
	logger.Info(tghelpers.BuildContext(c), "svc.exams", "exam.create",
		slog.String("exam_id", rec.ID),
	)
	return c.Send(fmt.Sprintf("Exam %q has been scheduled for %s at %s.", name, date, clock), MainMenu(true))
}

// --- exam deletion ---

// onDeleteExam lists exams numbered and enters the deletion dialog.
func (h *Handlers) onDeleteExam(c tele.Context) error {
	exams := h.Stores.Exams.All()
	if len(exams) == 0 {
		return c.Send("No exams to delete.")
	}

	var b strings.Builder
	b.WriteString("Which exam should be deleted?\n")
	for i, exam := range exams {
		fmt.Fprintf(&b, "%d. %s — %s %s\n", i+1, exam.Name, exam.Date, exam.Time)
	}
	b.WriteString("\nSend the exam number, or Exit.")
	h.Sessions.SetState(c.Sender().ID, StateDeletingExam)
	return c.Send(b.String())
}

// handleDeletingExam stays in the dialog after each removal so the admin
// can delete several exams in a row. The mode ends on Exit or once the
// collection runs dry.
func (h *Handlers) handleDeletingExam(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	if text == BtnExit {
		return h.exitToMenu(c)
	}
	if h.Stores.Exams.Len() == 0 {
		h.Sessions.ClearState(userID)
		return c.Send("No exams to delete.", MainMenu(true))
	}

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return c.Send("Please send a valid exam number, or Exit.")
	}
	exam, ok := h.Stores.Exams.Remove(n - 1)
	if !ok {
		return c.Send(fmt.Sprintf("There is no exam number %d. Please send a valid number, or Exit.", n))
	}

	logger.Info(tghelpers.BuildContext(c), "svc.exams", "exam.delete",
		slog.String("exam_id", exam.ID),
	)
	return c.Send(fmt.Sprintf("Exam %q has been deleted. Send another number, or Exit.", exam.Name))
}
