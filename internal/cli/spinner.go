package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

const spinnerInterval = 90 * time.Millisecond

// Spinner animates a status line on stderr while a slow step (rsvg
// conversion) runs. It stops by itself when its context ends.
type Spinner struct {
	w       io.Writer
	message string
	started time.Time

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	stopOnce sync.Once
	stopped  chan struct{}
	mu       sync.Mutex
	width    int // length of the last line drawn
}

func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start draws the first frame and animates until Stop or cancellation.
func (s *Spinner) Start() {
	s.started = time.Now()
	s.draw(0)
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 1; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(i)
			}
		}
	}()
}

func (s *Spinner) draw(i int) {
	line := fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
	if d := time.Since(s.started); d >= time.Second {
		line += fmt.Sprintf(" (%ds)", int(d.Seconds()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	frame, rest, _ := strings.Cut(line, " ")
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(rest))
	s.width = len([]rune(line))
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

// Stop halts the animation and erases the line. It is safe to call twice,
// and before Start.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		running := !s.started.IsZero()
		s.cancel()
		if running {
			<-s.stopped
		}
	})
}

// StopWithSuccess stops and prints message as a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops and prints message as an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the parent context ended the spinner.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
