package dialogs

import (
	"strings"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/telegram/state"
)

func TestExamWizardCommit(t *testing.T) {
	fx := newFixture(t)

	fx.step(t, adminCtx(BtnAddExamDate))
	if st := fx.h.Sessions.GetState(testAdminID); st != StateAddingExamName {
		t.Fatalf("state = %q, expected adding_exam_name", st)
	}

	fx.step(t, adminCtx("Networking Final"))

	// A malformed date re-prompts without leaving the date step.
	bad := adminCtx("01-05-2024")
	fx.step(t, bad)
	if st := fx.h.Sessions.GetState(testAdminID); st != StateAddingExamDate {
		t.Fatalf("state after bad date = %q, expected to stay", st)
	}
	if !strings.Contains(bad.lastText(t), "YYYY-MM-DD") {
		t.Fatalf("date re-prompt = %q", bad.lastText(t))
	}
	fx.step(t, adminCtx("2026-12-15"))

	badTime := adminCtx("25:61")
	fx.step(t, badTime)
	if st := fx.h.Sessions.GetState(testAdminID); st != StateAddingExamTime {
		t.Fatalf("state after bad time = %q, expected to stay", st)
	}
	fx.step(t, adminCtx("09:30"))

	content := adminCtx("Chapters 1-7, closed book")
	fx.step(t, content)
	if !strings.Contains(content.lastText(t), "Networking Final") {
		t.Fatalf("verification summary missing name: %q", content.lastText(t))
	}

	confirm := adminCtx("YES")
	fx.step(t, confirm)

	recs := fx.stores.Exams.All()
	if len(recs) != 1 {
		t.Fatalf("committed %d records, expected exactly 1", len(recs))
	}
	rec := recs[0]
	if rec.Name != "Networking Final" || rec.Date != "2026-12-15" || rec.Time != "09:30" || rec.Content != "Chapters 1-7, closed book" {
		t.Fatalf("wrong record: %+v", rec)
	}
	if rec.ID == "" {
		t.Fatal("record has no id")
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after commit = %q, expected idle", st)
	}
}

func TestExamWizardCancel(t *testing.T) {
	fx := newFixture(t)
	fx.step(t, adminCtx(BtnAddExamDate))
	fx.step(t, adminCtx("Midterm"))
	fx.step(t, adminCtx("2026-10-01"))
	fx.step(t, adminCtx("14:00"))
	fx.step(t, adminCtx("Everything so far"))

	cancel := adminCtx("no thanks")
	fx.step(t, cancel)

	if got := fx.stores.Exams.Len(); got != 0 {
		t.Fatalf("cancelled wizard committed %d records", got)
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after cancel = %q, expected idle", st)
	}
	if !strings.Contains(cancel.lastText(t), "cancelled") {
		t.Fatalf("cancel reply = %q", cancel.lastText(t))
	}
}

func TestExamWizardAdminOnly(t *testing.T) {
	fx := newFixture(t)
	denied := studentCtx(BtnAddExamDate)
	fx.step(t, denied)
	if st := fx.h.Sessions.GetState(5); st != state.StateIdle {
		t.Fatalf("non-admin entered the wizard: state %q", st)
	}
	if !strings.Contains(denied.lastText(t), "administrator") {
		t.Fatalf("denial = %q", denied.lastText(t))
	}
}

func TestExamAnnouncementListAndDetail(t *testing.T) {
	fx := newFixture(t)

	empty := studentCtx(BtnExamAnnouncement)
	fx.step(t, empty)
	if !strings.Contains(empty.lastText(t), "No exams") {
		t.Fatalf("empty list reply = %q", empty.lastText(t))
	}

	fx.stores.Exams.Add(domain.NewExamRecord("Final", "2026-12-15", "09:30", "rooms 1-3"))
	list := studentCtx(BtnExamAnnouncement)
	fx.step(t, list)
	if !strings.Contains(list.lastText(t), "1. Final") {
		t.Fatalf("list = %q", list.lastText(t))
	}

	detail := studentCtx("")
	detail.callback = &tele.Callback{Data: "\fexam|0"}
	if err := fx.h.onExamDetail(detail); err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.edited) != 1 {
		t.Fatalf("detail edits = %d", len(detail.edited))
	}
	body, _ := detail.edited[0].(string)
	if !strings.Contains(body, "*Final*") {
		t.Fatalf("detail body missing bold name: %q", body)
	}
	// User-provided fields are escaped for MarkdownV2 rendering.
	if !strings.Contains(body, `rooms 1\-3`) {
		t.Fatalf("detail body = %q", body)
	}

	stale := studentCtx("")
	stale.callback = &tele.Callback{Data: "\fexam|9"}
	if err := fx.h.onExamDetail(stale); err != nil {
		t.Fatalf("stale detail: %v", err)
	}
	if body, _ := stale.edited[0].(string); body != "Exam not found." {
		t.Fatalf("stale detail body = %q", body)
	}
}

func TestDeleteExamFlow(t *testing.T) {
	fx := newFixture(t)

	empty := adminCtx(BtnDeleteExam)
	fx.step(t, empty)
	if got := empty.lastText(t); got != "No exams to delete." {
		t.Fatalf("empty reply = %q", got)
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("empty list still entered deletion mode: %q", st)
	}

	fx.stores.Exams.Add(domain.NewExamRecord("A", "2026-10-01", "10:00", ""))
	fx.stores.Exams.Add(domain.NewExamRecord("B", "2026-11-01", "10:00", ""))

	fx.step(t, adminCtx(BtnDeleteExam))
	if st := fx.h.Sessions.GetState(testAdminID); st != StateDeletingExam {
		t.Fatalf("state = %q, expected deleting_exam", st)
	}

	// Out-of-range and junk input keep the dialog open.
	junk := adminCtx("first one")
	fx.step(t, junk)
	if st := fx.h.Sessions.GetState(testAdminID); st != StateDeletingExam {
		t.Fatalf("state after junk = %q", st)
	}
	outOfRange := adminCtx("7")
	fx.step(t, outOfRange)
	if st := fx.h.Sessions.GetState(testAdminID); st != StateDeletingExam {
		t.Fatalf("state after out-of-range = %q", st)
	}
	if fx.stores.Exams.Len() != 2 {
		t.Fatal("invalid input deleted a record")
	}

	pick := adminCtx("2")
	fx.step(t, pick)
	if !strings.Contains(pick.lastText(t), `"B" has been deleted`) {
		t.Fatalf("confirmation = %q", pick.lastText(t))
	}
	recs := fx.stores.Exams.All()
	if len(recs) != 1 || recs[0].Name != "A" {
		t.Fatalf("wrong record deleted: %v", recs)
	}

	// The dialog stays open so the admin can keep deleting.
	if st := fx.h.Sessions.GetState(testAdminID); st != StateDeletingExam {
		t.Fatalf("state after delete = %q, expected deleting_exam", st)
	}

	last := adminCtx("1")
	fx.step(t, last)
	if !strings.Contains(last.lastText(t), `"A" has been deleted`) {
		t.Fatalf("confirmation = %q", last.lastText(t))
	}
	if fx.stores.Exams.Len() != 0 {
		t.Fatalf("records left: %d", fx.stores.Exams.Len())
	}

	// Repeating the number against the now-empty collection ends the mode.
	drained := adminCtx("1")
	fx.step(t, drained)
	if got := drained.lastText(t); got != "No exams to delete." {
		t.Fatalf("reply on empty collection = %q", got)
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after drain = %q, expected idle", st)
	}
}
