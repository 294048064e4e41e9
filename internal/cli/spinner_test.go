package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFileSpinnerCounts(t *testing.T) {
	var out syncBuffer
	s := newFileSpinner(context.Background(), &out, 3)
	s.start()
	s.fileDone()
	s.fileDone()
	time.Sleep(3 * spinnerTick)
	s.stop()

	if got := out.String(); !strings.Contains(got, "2/3") {
		t.Errorf("spinner output = %q, want the 2/3 count", got)
	}
}

func TestFileSpinnerParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newFileSpinner(ctx, &syncBuffer{}, 1)
	s.start()
	cancel()

	select {
	case <-s.exited:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after its context was cancelled")
	}
	s.stop()
}

func TestFileSpinnerStopTwice(t *testing.T) {
	s := newFileSpinner(context.Background(), &syncBuffer{}, 2)
	s.start()
	s.stop()
	s.stop()
	s.fail("Render failed")
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		done, total int
		want        string
	}{
		{0, 1, "Rendering..."},
		{0, 4, "Rendering 0/4 files..."},
		{4, 4, "Rendering 4/4 files..."},
	}
	for _, tt := range tests {
		if got := renderMessage(tt.done, tt.total); got != tt.want {
			t.Errorf("renderMessage(%d, %d) = %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}
