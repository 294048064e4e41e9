package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTick = 80 * time.Millisecond

// fileSpinner animates on out while a batch of files renders. Workers call
// fileDone as they finish; the line shows the running count.
type fileSpinner struct {
	out   io.Writer
	total int
	done  atomic.Int32

	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}
	once   sync.Once
	width  int // widest line drawn, for clearing
}

func newFileSpinner(ctx context.Context, out io.Writer, total int) *fileSpinner {
	ctx, cancel := context.WithCancel(ctx)
	return &fileSpinner{
		out:    out,
		total:  total,
		ctx:    ctx,
		cancel: cancel,
		exited: make(chan struct{}),
	}
}

// start launches the animation. It ends on stop or when the parent context
// is cancelled.
func (s *fileSpinner) start() {
	go func() {
		defer close(s.exited)
		ticker := time.NewTicker(spinnerTick)
		defer ticker.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				line := renderMessage(int(s.done.Load()), s.total)
				s.width = max(s.width, len(line))
				fmt.Fprintf(s.out, "\r%s %s",
					styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]),
					StyleDim.Render(line))
			}
		}
	}()
}

func (s *fileSpinner) fileDone() { s.done.Add(1) }

// stop ends the animation and clears its line. Calling it again is a no-op.
func (s *fileSpinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.exited
	})
}

// fail stops the spinner and reports msg.
func (s *fileSpinner) fail(msg string) {
	s.stop()
	printError("%s", msg)
}

func (s *fileSpinner) clear() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width+4))
}

func renderMessage(done, total int) string {
	if total == 1 {
		return "Rendering..."
	}
	return fmt.Sprintf("Rendering %d/%d files...", done, total)
}
