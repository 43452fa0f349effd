package dialogs

import (
	"os"
	"strconv"
	"strings"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/core/telegram/state"
)

func document(name string, size int64) *tele.Message {
	return &tele.Message{Document: &tele.Document{
		File:     tele.File{FileID: "remote-" + name, FileSize: size},
		FileName: name,
	}}
}

func TestSubmissionEndToEnd(t *testing.T) {
	fx := newFixture(t)
	user := studentCtx(BtnSubmitGroup)
	fx.step(t, user)
	if st := fx.h.Sessions.GetState(user.sender.ID); st != StateSelectingSubject {
		t.Fatalf("state = %q, expected selecting_subject", st)
	}

	pick := studentCtx("Networking")
	fx.step(t, pick)
	if st := fx.h.Sessions.GetState(pick.sender.ID); st != state.StateIdle {
		t.Fatalf("state after subject pick = %q, expected idle", st)
	}

	up := studentCtx("")
	up.message = document("hw1.pdf", 2*1024*1024)
	if err := fx.h.HandleDocument(up); err != nil {
		t.Fatalf("handle document: %v", err)
	}

	recs := fx.stores.Files.All()
	if len(recs) != 1 {
		t.Fatalf("recorded %d submissions, expected 1", len(recs))
	}
	rec := recs[0]
	if rec.Subject != "Networking" || rec.FileName != "hw1.pdf" || rec.SubmittedBy != "Alice" {
		t.Fatalf("wrong record: %+v", rec)
	}
	if rec.SubmissionDate != "2026-08-29" {
		t.Fatalf("submission date = %q", rec.SubmissionDate)
	}

	data, err := os.ReadFile(fx.storage.PathFor("Networking", "hw1.pdf"))
	if err != nil {
		t.Fatalf("stored content missing: %v", err)
	}
	if string(data) != "document body" {
		t.Fatalf("stored content = %q", data)
	}

	// The admin gets the document re-sent out of band.
	sends := fx.tr.sends()
	if len(sends) != 1 {
		t.Fatalf("admin notifications = %d, expected 1", len(sends))
	}
	if sends[0].to.Recipient() != strconv.FormatInt(testAdminID, 10) {
		t.Fatalf("notification went to %s", sends[0].to.Recipient())
	}
	if _, ok := sends[0].what.(*tele.Document); !ok {
		t.Fatalf("notification payload = %T, expected document", sends[0].what)
	}

	if !strings.Contains(up.lastText(t), "has been submitted for Networking") {
		t.Fatalf("confirmation missing: %q", up.lastText(t))
	}
}

func TestOversizeDocumentRejectedBeforeStorage(t *testing.T) {
	fx := newFixture(t)
	fx.h.Sessions.SetTemp(5, "selected_subject", "Databases")

	up := studentCtx("")
	up.message = document("huge.iso", domain.MaxUploadBytes+1)
	if err := fx.h.HandleDocument(up); err != nil {
		t.Fatalf("handle document: %v", err)
	}

	if got := fx.stores.Files.Len(); got != 0 {
		t.Fatalf("oversize upload was recorded: %d", got)
	}
	if len(fx.tr.sends()) != 0 {
		t.Fatal("oversize upload was forwarded to the admin")
	}
	if !strings.Contains(up.lastText(t), "too large") {
		t.Fatalf("rejection message = %q", up.lastText(t))
	}
	// The subject selection survives so the user can retry.
	if got := fx.h.tempString(5, "selected_subject"); got != "Databases" {
		t.Fatalf("selected subject = %q after rejection", got)
	}
}

func TestDocumentWithoutSubjectPrompts(t *testing.T) {
	fx := newFixture(t)
	up := studentCtx("")
	up.message = document("hw.pdf", 100)
	if err := fx.h.HandleDocument(up); err != nil {
		t.Fatalf("handle document: %v", err)
	}
	if fx.stores.Files.Len() != 0 {
		t.Fatal("document without a subject was recorded")
	}
	if !strings.Contains(up.lastText(t), "choose a subject first") {
		t.Fatalf("prompt = %q", up.lastText(t))
	}
}

func TestSelectingSubjectRejectsUnknownAndExits(t *testing.T) {
	fx := newFixture(t)
	fx.step(t, studentCtx(BtnSubmitIndividual))

	wrong := studentCtx("Astrology")
	fx.step(t, wrong)
	if st := fx.h.Sessions.GetState(5); st != StateSelectingSubject {
		t.Fatalf("state after unknown subject = %q, expected to stay", st)
	}

	exit := studentCtx(BtnExit)
	fx.step(t, exit)
	if st := fx.h.Sessions.GetState(5); st != state.StateIdle {
		t.Fatalf("state after exit = %q, expected idle", st)
	}
	if !strings.Contains(exit.lastText(t), "Main menu") {
		t.Fatalf("exit reply = %q", exit.lastText(t))
	}
}
