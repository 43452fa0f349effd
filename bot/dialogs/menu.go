package dialogs

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/telegram/keyboard"
)

// Main-menu button labels. The dialog router matches inbound text against
// these exact strings.
const (
	BtnSubmitGroup      = "Submit Group Assignment"
	BtnSubmitIndividual = "Submit Individual Assignment"
	BtnExamAnnouncement = "Exam Announcement"
	BtnManageFiles      = "Manage Files"
	BtnViewAssignments  = "View Assignments"
	BtnAddExamDate      = "Add Exam Date"
	BtnDeleteExam       = "Delete Exam"
	BtnPostMessage      = "Post Message"
	BtnFilterByDate     = "Filter by Date"
	BtnBuyCoffee        = "Buy me a coffee"
	BtnExit             = "Exit"
)

// MainMenu builds the role-dependent main menu. It is a pure function of
// the role and is re-sent whenever a dialog exits.
func MainMenu(isAdmin bool) *tele.ReplyMarkup {
	if isAdmin {
		return keyboard.ReplyButtons(
			[]string{BtnExamAnnouncement},
			[]string{BtnViewAssignments, BtnAddExamDate},
			[]string{BtnDeleteExam, BtnPostMessage},
			[]string{BtnFilterByDate},
			[]string{BtnBuyCoffee},
		)
	}
	return keyboard.ReplyButtons(
		[]string{BtnSubmitGroup, BtnSubmitIndividual},
		[]string{BtnExamAnnouncement, BtnManageFiles},
		[]string{BtnBuyCoffee},
	)
}

// SubjectPicker builds the fixed subject list with a trailing Exit entry.
func SubjectPicker() *tele.ReplyMarkup {
	rows := make([][]string, 0, len(domain.Subjects)+1)
	for _, subj := range domain.Subjects {
		rows = append(rows, []string{subj})
	}
	rows = append(rows, []string{BtnExit})
	return keyboard.ReplyButtons(rows...)
}
