package entity

import "strings"

// AllComponents selects every registered component.
const AllComponents = "all"

type Language int

const (
	LanguageUnknown Language = iota
	LanguagePython
	LanguageTypeScript
)

func ParseLanguage(s string) Language {
	switch strings.ToLower(s) {
	case "python":
		return LanguagePython
	case "typescript", "javascript":
		return LanguageTypeScript
	default:
		return LanguageUnknown
	}
}

func (l Language) String() string {
	switch l {
	case LanguagePython:
		return "python"
	case LanguageTypeScript:
		return "typescript"
	default:
		return "unknown"
	}
}

type Action string

const (
	ActionTest   Action = "test"
	ActionLint   Action = "lint"
	ActionBuild  Action = "build"
	ActionFormat Action = "format"
	ActionDev    Action = "dev"
)

// Template is an argv list. A nil template means the action is not supported.
type Template []string

func (t Template) Supported() bool {
	return len(t) > 0
}

func (t Template) String() string {
	return strings.Join(t, " ")
}

type ComponentConfig struct {
	Name           string
	Path           string
	Language       Language
	PackageManager PackageManager
	Test           Template
	Lint           Template
	Build          Template
	Format         Template
	Dev            Template
}

// Template returns the argv template for action, or nil when unsupported.
func (c *ComponentConfig) Template(action Action) Template {
	switch action {
	case ActionTest:
		return c.Test
	case ActionLint:
		return c.Lint
	case ActionBuild:
		return c.Build
	case ActionFormat:
		return c.Format
	case ActionDev:
		return c.Dev
	default:
		return nil
	}
}

// Request builds an ExecRequest for action with extra trailing arguments.
// ok is false when the component does not support the action.
func (c *ComponentConfig) Request(action Action, extra ...string) (req ExecRequest, ok bool) {
	tmpl := c.Template(action)
	if !tmpl.Supported() {
		return ExecRequest{}, false
	}
	args := make([]string, 0, len(tmpl)-1+len(extra))
	args = append(args, tmpl[1:]...)
	args = append(args, extra...)
	return ExecRequest{
		Name:  tmpl[0],
		Args:  args,
		Dir:   c.Path,
		Label: c.Name,
	}, true
}
