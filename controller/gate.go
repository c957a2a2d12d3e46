package controller

import (
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/ui"
)

type Verdict int

const (
	Denied Verdict = iota
	Allowed
)

func (v Verdict) String() string {
	if v == Allowed {
		return "allowed"
	}
	return "denied"
}

// Gate asks for explicit confirmation before destructive operations.
type Gate struct {
	prompter    Prompter
	interactive func() bool
}

func NewGate(prompter Prompter, interactive func() bool) *Gate {
	if interactive == nil {
		interactive = ui.IsInteractive
	}
	return &Gate{prompter: prompter, interactive: interactive}
}

// Guard returns Allowed when forced, or when the operator answers yes. A
// missing terminal, a prompt error or any other answer is Denied.
func (g *Gate) Guard(action, target string, forced bool) Verdict {
	if forced {
		return Allowed
	}
	if g.prompter == nil || !g.interactive() {
		ui.Debug("No terminal to confirm %s of %s", action, target)
		return Denied
	}
	ok, err := g.prompter.ConfirmDestructive(action, target)
	if err != nil {
		ui.Debug("Confirmation failed: %v", err)
		return Denied
	}
	if ok {
		return Allowed
	}
	return Denied
}

// confirm is Guard as an error: nil when allowed, ConfirmationDenied otherwise.
func (c *Controller) confirm(action, target string) error {
	if c.gate.Guard(action, target, c.force) == Denied {
		return CLIErrors.ConfirmationDenied
	}
	return nil
}
