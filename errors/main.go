package errors

import (
	"fmt"
	"strings"

	"github.com/cwbdev/cwb/ui"
)

type CLIError error

var (
	ConfigNotFound     CLIError = fmt.Errorf("%s\nRun %s to create one, or pass %s.", ui.RedText("No config.yaml found in this directory or any parent."), ui.Bold("cwb init"), ui.Bold("--config"))
	ConfirmationDenied CLIError = fmt.Errorf("operation cancelled")
	StackNotFound      CLIError = fmt.Errorf("%s\nRun %s to see the available stacks.", ui.RedText("Stack not found."), ui.Bold("cwb deploy status"))
	CDKDirNotFound     CLIError = fmt.Errorf("%s\nExpected the CDK app under %s.", ui.RedText("CDK directory not found."), ui.Bold("infrastructure/cdk"))
)

type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

type UnknownEnvironmentError struct {
	Name  string
	Valid []string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

type UnknownComponentError struct {
	Name  string
	Known []string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

type DuplicateComponentError struct {
	Name string
}

func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("component %q is already registered", e.Name)
}

type UnsupportedPackageManagerError struct {
	Component string
}

func (e *UnsupportedPackageManagerError) Error() string {
	return fmt.Sprintf("component %q has no supported package manager", e.Component)
}

type SpawnFailedError struct {
	Command string
	Err     error
}

func (e *SpawnFailedError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
}

func (e *SpawnFailedError) Unwrap() error { return e.Err }

// ExecutionFailedError is a non-zero exit. Stdout and Stderr are empty for
// streamed commands.
type ExecutionFailedError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// outputTail bounds how much captured output an error message carries.
const outputTail = 20

func (e *ExecutionFailedError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	for _, out := range []string{e.Stdout, e.Stderr} {
		if out = tail(out, outputTail); out != "" {
			msg += "\n" + out
		}
	}
	return msg
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = append([]string{"..."}, lines[len(lines)-n:]...)
	}
	return strings.Join(lines, "\n")
}

type TaskPanickedError struct {
	Command string
	Value   interface{}
}

func (e *TaskPanickedError) Error() string {
	return fmt.Sprintf("task %s panicked: %v", e.Command, e.Value)
}

// BatchFailure is one failed member of a batch.
type BatchFailure struct {
	Index   int
	Command string
	Err     error
}

type BatchError struct {
	Total    int
	Failures []BatchFailure
}

func (e *BatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d of %d commands failed", len(e.Failures), e.Total)
	for _, f := range e.Failures {
		msg := f.Err.Error()
		if !strings.Contains(msg, f.Command) {
			msg = f.Command + ": " + msg
		}
		fmt.Fprintf(&sb, "\n  [%d] %s", f.Index+1, strings.ReplaceAll(msg, "\n", "\n      "))
	}
	return sb.String()
}

// Unwrap exposes every member error to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

type EnvironmentExistsError struct {
	Name string
}

func (e *EnvironmentExistsError) Error() string {
	return fmt.Sprintf("environment %q already exists", e.Name)
}

type InvalidEnvironmentError struct {
	Name   string
	Reason string
}

func (e *InvalidEnvironmentError) Error() string {
	return fmt.Sprintf("invalid environment %q: %s", e.Name, e.Reason)
}

type DefaultEnvironmentDeleteError struct {
	Name string
}

func (e *DefaultEnvironmentDeleteError) Error() string {
	return fmt.Sprintf("cannot delete %q: it is the default environment, switch first", e.Name)
}
