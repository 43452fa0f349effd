package dialogs

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/classbot/bot/files"
	"github.com/m3rciful/classbot/bot/store"
	"github.com/m3rciful/classbot/core/telegram/state"
)

const testAdminID int64 = 1000

// fakeContext implements the slice of tele.Context the handlers touch.
// Calling anything else panics, which is what we want in a test.
type fakeContext struct {
	tele.Context

	sender   *tele.User
	text     string
	message  *tele.Message
	callback *tele.Callback

	kv     map[string]interface{}
	sent   []interface{}
	edited []interface{}

	sendErr error
}

func (f *fakeContext) Sender() *tele.User { return f.sender }

func (f *fakeContext) Chat() *tele.Chat {
	if f.sender == nil {
		return nil
	}
	return &tele.Chat{ID: f.sender.ID}
}

func (f *fakeContext) Text() string             { return f.text }
func (f *fakeContext) Message() *tele.Message   { return f.message }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }
func (f *fakeContext) Update() tele.Update      { return tele.Update{ID: 1} }

func (f *fakeContext) Get(key string) interface{} { return f.kv[key] }

func (f *fakeContext) Set(key string, val interface{}) {
	if f.kv == nil {
		f.kv = make(map[string]interface{})
	}
	f.kv[key] = val
}

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what)
	return f.sendErr
}

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.edited = append(f.edited, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error { return nil }

// lastText returns the most recent string sent through the context.
func (f *fakeContext) lastText(t *testing.T) string {
	t.Helper()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if s, ok := f.sent[i].(string); ok {
			return s
		}
	}
	t.Fatal("no text was sent")
	return ""
}

type outbound struct {
	to   tele.Recipient
	what interface{}
}

// fakeTransport records out-of-band sends and serves file downloads.
type fakeTransport struct {
	mu       sync.Mutex
	outbox   []outbound
	fileBody string
	fileErr  error
	failFor  map[string]bool
}

func (f *fakeTransport) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outbox = append(f.outbox, outbound{to: to, what: what})
	if f.failFor[to.Recipient()] {
		return nil, errors.New("blocked")
	}
	return &tele.Message{}, nil
}

func (f *fakeTransport) File(file *tele.File) (io.ReadCloser, error) {
	if f.fileErr != nil {
		return nil, f.fileErr
	}
	return io.NopCloser(strings.NewReader(f.fileBody)), nil
}

func (f *fakeTransport) sends() []outbound {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]outbound, len(f.outbox))
	copy(out, f.outbox)
	return out
}

type fixture struct {
	h       *Handlers
	stores  *store.Stores
	tr      *fakeTransport
	storage *files.DiskStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stores := store.Open(store.Options{Dir: t.TempDir()})
	storage := files.NewDiskStorage(t.TempDir())
	tr := &fakeTransport{fileBody: "document body"}
	h := New(state.NewMemoryManager(), stores, storage, testAdminID, "")
	h.Transport = tr
	h.clock = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	}
	return &fixture{h: h, stores: stores, tr: tr, storage: storage}
}

func studentCtx(text string) *fakeContext {
	return &fakeContext{sender: &tele.User{ID: 5, FirstName: "Alice"}, text: text}
}

func adminCtx(text string) *fakeContext {
	return &fakeContext{sender: &tele.User{ID: testAdminID, FirstName: "Admin"}, text: text}
}

// step runs one text input through the dispatcher the way the router does:
// an active dialog state consumes it, otherwise it falls back to the menu.
func (fx *fixture) step(t *testing.T, c *fakeContext) {
	t.Helper()
	h := fx.h
	if st := h.Sessions.GetState(c.sender.ID); st != state.StateIdle {
		handler := map[state.State]tele.HandlerFunc{
			StateSelectingSubject:  h.handleSelectingSubject,
			StateViewingSubject:    h.handleViewingSubject,
			StateFilteringByDate:   h.handleFilteringByDate,
			StateAddingExamName:    h.handleAddingExamName,
			StateAddingExamDate:    h.handleAddingExamDate,
			StateAddingExamTime:    h.handleAddingExamTime,
			StateAddingExamContent: h.handleAddingExamContent,
			StateAddingExamVerify:  h.handleAddingExamVerify,
			StateDeletingExam:      h.handleDeletingExam,
			StatePendingBroadcast:  h.handlePendingBroadcast,
			StateConfirmBroadcast:  h.handleConfirmBroadcast,
		}[st]
		if handler == nil {
			t.Fatalf("no handler for state %q", st)
		}
		if err := handler(c); err != nil {
			t.Fatalf("state %q: %v", st, err)
		}
		return
	}
	if err := h.MenuDispatch(c); err != nil {
		t.Fatalf("dispatch %q: %v", c.text, err)
	}
}
