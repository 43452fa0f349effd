package dialogs

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/classbot/core/telegram/state"
)

func TestBroadcastConfirmFansOut(t *testing.T) {
	fx := newFixture(t)
	for _, id := range []int64{10, 11, 12} {
		if _, err := fx.stores.Users.Add(id); err != nil {
			t.Fatalf("register %d: %v", id, err)
		}
	}
	fx.tr.failFor = map[string]bool{"11": true}

	fx.step(t, adminCtx(BtnPostMessage))
	fx.step(t, adminCtx("Class moved to room 204"))
	if st := fx.h.Sessions.GetState(testAdminID); st != StateConfirmBroadcast {
		t.Fatalf("state = %q, expected confirm_broadcast", st)
	}

	confirm := adminCtx("yes")
	fx.step(t, confirm)
	if !strings.Contains(confirm.lastText(t), "Broadcasting to 3 users") {
		t.Fatalf("ack = %q", confirm.lastText(t))
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after confirm = %q, expected idle", st)
	}

	// The fan-out runs off the handler path: 3 recipient sends plus the
	// completion report back to the initiator.
	deadline := time.Now().Add(2 * time.Second)
	for len(fx.tr.sends()) < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("fan-out incomplete: %d sends", len(fx.tr.sends()))
		}
		time.Sleep(5 * time.Millisecond)
	}

	sends := fx.tr.sends()
	byRecipient := make(map[string]interface{})
	for _, s := range sends {
		byRecipient[s.to.Recipient()] = s.what
	}
	for _, id := range []int64{10, 11, 12} {
		if _, ok := byRecipient[strconv.FormatInt(id, 10)]; !ok {
			t.Fatalf("user %d never got a send attempt", id)
		}
	}
	report, ok := byRecipient[strconv.FormatInt(testAdminID, 10)].(string)
	if !ok {
		t.Fatal("no completion report to the initiator")
	}
	if !strings.Contains(report, "delivered to 2 users, 1 failures") {
		t.Fatalf("report = %q", report)
	}
}

func TestBroadcastAnythingButYesCancels(t *testing.T) {
	fx := newFixture(t)
	fx.stores.Users.Add(10)

	fx.step(t, adminCtx(BtnPostMessage))
	fx.step(t, adminCtx("Never mind"))
	cancel := adminCtx("no")
	fx.step(t, cancel)

	if !strings.Contains(cancel.lastText(t), "Broadcast cancelled") {
		t.Fatalf("cancel reply = %q", cancel.lastText(t))
	}
	if got := len(fx.tr.sends()); got != 0 {
		t.Fatalf("cancelled broadcast produced %d sends", got)
	}
	if st := fx.h.Sessions.GetState(testAdminID); st != state.StateIdle {
		t.Fatalf("state after cancel = %q", st)
	}
}

func TestBroadcastEmptyMessageReprompts(t *testing.T) {
	fx := newFixture(t)
	fx.step(t, adminCtx(BtnPostMessage))
	empty := adminCtx("   ")
	fx.step(t, empty)
	if st := fx.h.Sessions.GetState(testAdminID); st != StatePendingBroadcast {
		t.Fatalf("state after empty message = %q, expected to stay", st)
	}
	if !strings.Contains(empty.lastText(t), "cannot be empty") {
		t.Fatalf("re-prompt = %q", empty.lastText(t))
	}
}
