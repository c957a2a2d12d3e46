package configs

import (
	"strings"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
)

// Resolve returns a copy of the named environment, or of the document's
// default environment when name is empty, together with the resolved name.
func Resolve(doc *entity.ConfigDocument, name string) (*entity.EnvironmentConfig, string, error) {
	resolved := strings.ToLower(strings.TrimSpace(name))
	if resolved == "" {
		resolved = doc.DefaultEnvironment
	}

	env, ok := doc.Environments[resolved]
	if !ok {
		return nil, resolved, &CLIErrors.UnknownEnvironmentError{
			Name:  resolved,
			Valid: doc.EnvironmentNames(),
		}
	}

	out := env.Clone()
	return &out, resolved, nil
}

// Resolve is a shorthand for Resolve(c.Document(), name).
func (c *Configs) Resolve(name string) (*entity.EnvironmentConfig, string, error) {
	return Resolve(c.document, name)
}
