package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

var (
	Dots   = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	Blocks = []string{"▖", "▘", "▝", "▗"}
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var (
	s             = &spinner.Spinner{}
	spinnerActive bool
)

func StartSpinner(cfg *SpinnerCfg) {
	if cfg.Tokens == nil {
		cfg.Tokens = Dots
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	if SupportsANSICodes() {
		s.Start()
		spinnerActive = true
	}
}

func StopSpinner(msg string) {
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	if spinnerActive {
		s.Stop()
		spinnerActive = false
	} else if msg != "" {
		fmt.Fprintln(os.Stdout, msg)
	}
}

// Progress reports a completed count out of a known total. It animates a
// spinner on terminals and is silent otherwise.
type Progress struct {
	mu      sync.Mutex
	total   int
	done    int
	spinner *spinner.Spinner
}

func NewProgress(total int, w io.Writer) *Progress {
	p := &Progress{total: total}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		p.spinner = spinner.New(Blocks, 100*time.Millisecond)
		p.spinner.Writer = w
		p.spinner.Suffix = p.suffix()
	}
	return p
}

func (p *Progress) suffix() string {
	return fmt.Sprintf(" Completed %d/%d", p.done, p.total)
}

func (p *Progress) Start() {
	if p.spinner != nil {
		p.spinner.Start()
	}
}

// Advance records one more completed member and returns the new count.
func (p *Progress) Advance() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done < p.total {
		p.done++
	}
	if p.spinner != nil {
		p.spinner.Lock()
		p.spinner.Suffix = p.suffix()
		p.spinner.Unlock()
	}
	return p.done
}

func (p *Progress) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Progress) Stop() {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}
