package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// Prompts answers questions on the terminal.
type Prompts struct{}

func (Prompts) Confirm(label string, defaultYes bool) (bool, error) {
	return PromptConfirm(label, defaultYes)
}

func (Prompts) ConfirmDestructive(action, target string) (bool, error) {
	return PromptConfirmDestructive(action, target)
}

func (Prompts) Text(label, defaultValue string) (string, error) {
	return PromptText(label, defaultValue)
}

func (Prompts) Select(label string, items []string) (string, error) {
	return PromptSelect(label, items)
}

func PromptConfirm(label string, defaultYes bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultYes {
		prompt.Default = "y"
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PromptConfirmDestructive always defaults to no.
func PromptConfirmDestructive(action, target string) (bool, error) {
	return PromptConfirm(DestructiveQuestion(action, target), false)
}

func DestructiveQuestion(action, target string) string {
	return fmt.Sprintf("Are you sure you want to %s '%s'? This action cannot be undone", action, target)
}

func PromptText(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	return prompt.Run()
}

func PromptSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ . | underline }}`,
			Inactive: `{{ . }}`,
			Selected: fmt.Sprintf("%s %s: {{ . | blue | bold }} ", GreenText("✔"), label),
		},
	}
	_, selection, err := prompt.Run()
	return selection, err
}
