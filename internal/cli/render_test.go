package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
	"github.com/matzehuels/asciiflag/pkg/flag"
	"github.com/matzehuels/asciiflag/pkg/observability"
)

type renderEvent struct {
	n, rows int
	err     error
}

type recordingHooks struct {
	mu       sync.Mutex
	started  []int
	finished []renderEvent
}

func (h *recordingHooks) OnRenderStart(_ context.Context, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, n)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, n, rows int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finished = append(h.finished, renderEvent{n: n, rows: rows, err: err})
}

func TestRenderFlagHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	if _, err := renderFlag(context.Background(), 4, flag.DefaultCharacters()); err != nil {
		t.Fatalf("renderFlag(4) error = %v", err)
	}
	if _, err := renderFlag(context.Background(), 5, flag.DefaultCharacters()); err == nil {
		t.Fatal("renderFlag(5) expected error")
	}

	if len(hooks.started) != 2 || hooks.started[0] != 4 || hooks.started[1] != 5 {
		t.Errorf("started = %v, want [4 5]", hooks.started)
	}
	if len(hooks.finished) != 2 {
		t.Fatalf("finished = %v, want 2 events", hooks.finished)
	}
	if ev := hooks.finished[0]; ev.rows != 10 || ev.err != nil {
		t.Errorf("first event = %+v, want 10 rows and no error", ev)
	}
	if ev := hooks.finished[1]; ev.rows != 0 || !apperr.Is(ev.err, apperr.ErrCodeInvalidArgument) {
		t.Errorf("second event = %+v, want 0 rows and %s", ev, apperr.ErrCodeInvalidArgument)
	}
}

func TestRenderFlagDebugLog(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))

	text, err := renderFlag(ctx, 2, flag.DefaultCharacters())
	if err != nil {
		t.Fatalf("renderFlag(2) error = %v", err)
	}
	if want, _ := flag.Render(2, flag.DefaultCharacters()); text != want {
		t.Errorf("renderFlag(2) =\n%s\nwant\n%s", text, want)
	}
	if !strings.Contains(buf.String(), "rendered flag") {
		t.Errorf("debug log = %q, want a render entry", buf.String())
	}
}

func TestRootHooksPerSize(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	if _, err := execute(t); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if len(hooks.started) != 3 {
		t.Errorf("started = %v, want one render per default size", hooks.started)
	}
}
