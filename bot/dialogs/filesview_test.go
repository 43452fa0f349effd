package dialogs

import (
	"strings"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/telegram/state"
)

func seedFiles(fx *fixture, t *testing.T) {
	t.Helper()
	recs := []domain.SubmittedFile{
		{FileName: "hw1.pdf", FileID: "f1", SubmittedBy: "Alice", Subject: "Databases", SubmissionDate: "2026-08-20"},
		{FileName: "hw2.pdf", FileID: "f2", SubmittedBy: "Bob", Subject: "Databases", SubmissionDate: "2026-08-21"},
		{FileName: "lab.zip", FileID: "f3", SubmittedBy: "Alice", Subject: "Networking", SubmissionDate: "2026-08-21"},
	}
	for _, rec := range recs {
		if err := fx.stores.Files.Add(rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestViewAssignmentsDeliversSubjectFiles(t *testing.T) {
	fx := newFixture(t)
	seedFiles(fx, t)

	fx.step(t, adminCtx(BtnViewAssignments))
	if st := fx.h.Sessions.GetState(testAdminID); st != StateViewingSubject {
		t.Fatalf("state = %q, expected viewing_subject", st)
	}

	view := adminCtx("Databases")
	fx.step(t, view)

	docs := 0
	for _, what := range view.sent {
		if _, ok := what.(*tele.Document); ok {
			docs++
		}
	}
	if docs != 2 {
		t.Fatalf("delivered %d documents, expected 2", docs)
	}
	if !strings.Contains(view.lastText(t), "Delivered 2 of 2") {
		t.Fatalf("summary = %q", view.lastText(t))
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after delivery = %q, expected idle", st)
	}
}

func TestViewAssignmentsEmptySubject(t *testing.T) {
	fx := newFixture(t)
	seedFiles(fx, t)
	fx.step(t, adminCtx(BtnViewAssignments))
	view := adminCtx("Mathematics")
	fx.step(t, view)
	if !strings.Contains(view.lastText(t), "No submissions found") {
		t.Fatalf("empty reply = %q", view.lastText(t))
	}
}

func TestFilterByDateBadInputExitsMode(t *testing.T) {
	fx := newFixture(t)
	seedFiles(fx, t)

	fx.step(t, adminCtx(BtnFilterByDate))
	if st := fx.h.Sessions.GetState(testAdminID); st != StateFilteringByDate {
		t.Fatalf("state = %q, expected filtering_by_date", st)
	}

	// A malformed date cancels the dialog instead of re-prompting.
	bad := adminCtx("21/08/2026")
	fx.step(t, bad)
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after bad date = %q, expected idle", st)
	}
	if !strings.Contains(bad.lastText(t), "Filtering cancelled") {
		t.Fatalf("cancel reply = %q", bad.lastText(t))
	}
}

func TestFilterByDateDelivers(t *testing.T) {
	fx := newFixture(t)
	seedFiles(fx, t)

	fx.step(t, adminCtx(BtnFilterByDate))
	pick := adminCtx("2026-08-21")
	fx.step(t, pick)
	if !strings.Contains(pick.lastText(t), "Delivered 2 of 2") {
		t.Fatalf("summary = %q", pick.lastText(t))
	}
}

func TestManageFilesDelete(t *testing.T) {
	fx := newFixture(t)

	none := studentCtx(BtnManageFiles)
	fx.step(t, none)
	if got := none.lastText(t); got != "You have no submitted files." {
		t.Fatalf("empty reply = %q", got)
	}

	seedFiles(fx, t)
	list := studentCtx(BtnManageFiles)
	fx.step(t, list)
	if len(list.sent) == 0 {
		t.Fatal("pick-list not sent")
	}

	// Alice deletes her second file; the record goes even though the
	// stored copy never existed.
	del := studentCtx("")
	del.callback = &tele.Callback{Data: "\fdelete_file|1"}
	if err := fx.h.onDeleteFile(del); err != nil {
		t.Fatalf("delete: %v", err)
	}
	body, _ := del.edited[0].(string)
	if !strings.Contains(body, `"lab.zip" has been deleted`) {
		t.Fatalf("confirmation = %q", body)
	}
	if !strings.Contains(body, "already missing") {
		t.Fatalf("missing-content note absent: %q", body)
	}
	if got := len(fx.stores.Files.ByOwner("Alice")); got != 1 {
		t.Fatalf("Alice still owns %d files, expected 1", got)
	}
	if got := len(fx.stores.Files.ByOwner("Bob")); got != 1 {
		t.Fatal("another user's file was deleted")
	}

	stale := studentCtx("")
	stale.callback = &tele.Callback{Data: "\fdelete_file|9"}
	if err := fx.h.onDeleteFile(stale); err != nil {
		t.Fatalf("stale delete: %v", err)
	}
	if body, _ := stale.edited[0].(string); body != "File not found." {
		t.Fatalf("stale delete body = %q", body)
	}
}
