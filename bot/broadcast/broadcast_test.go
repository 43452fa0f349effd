package broadcast

import (
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"
)

type recordingSender struct {
	sent   []tele.Recipient
	failOn map[string]bool
}

func (r *recordingSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	r.sent = append(r.sent, to)
	if r.failOn[to.Recipient()] {
		return nil, errors.New("blocked by user")
	}
	return &tele.Message{}, nil
}

func TestRunCountsFailuresWithoutAborting(t *testing.T) {
	sender := &recordingSender{failOn: map[string]bool{"2": true, "4": true}}

	sent, failed := Run(sender, []int64{1, 2, 3, 4, 5}, "class cancelled")
	if sent != 3 || failed != 2 {
		t.Fatalf("sent=%d failed=%d, expected 3/2", sent, failed)
	}
	// Every recipient gets an attempt even after earlier failures.
	if len(sender.sent) != 5 {
		t.Fatalf("attempted %d sends, expected 5", len(sender.sent))
	}
}

func TestRunEmptyRecipientList(t *testing.T) {
	sender := &recordingSender{}
	sent, failed := Run(sender, nil, "hello")
	if sent != 0 || failed != 0 {
		t.Fatalf("sent=%d failed=%d, expected 0/0", sent, failed)
	}
}
