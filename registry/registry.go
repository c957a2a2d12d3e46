package registry

import (
	"iter"
	"strings"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
)

// Registry maps component names to their configuration. It is filled once at
// startup and read-only afterwards.
type Registry struct {
	order      []string
	components map[string]entity.ComponentConfig
}

func New() *Registry {
	return &Registry{
		components: map[string]entity.ComponentConfig{},
	}
}

// Register adds c. A name can only be registered once.
func (r *Registry) Register(c entity.ComponentConfig) error {
	name := strings.ToLower(c.Name)
	if _, ok := r.components[name]; ok {
		return &CLIErrors.DuplicateComponentError{Name: name}
	}
	c.Name = name
	r.order = append(r.order, name)
	r.components[name] = c
	return nil
}

func (r *Registry) Lookup(name string) (*entity.ComponentConfig, error) {
	c, ok := r.components[strings.ToLower(name)]
	if !ok {
		return nil, &CLIErrors.UnknownComponentError{Name: name, Known: r.Names()}
	}
	return &c, nil
}

// All yields every component in registration order.
func (r *Registry) All() iter.Seq[*entity.ComponentConfig] {
	return func(yield func(*entity.ComponentConfig) bool) {
		for _, name := range r.order {
			c := r.components[name]
			if !yield(&c) {
				return
			}
		}
	}
}

// Select resolves a command argument: "all" yields every component,
// anything else exactly one.
func (r *Registry) Select(name string) (iter.Seq[*entity.ComponentConfig], error) {
	if name == "" || strings.EqualFold(name, entity.AllComponents) {
		return r.All(), nil
	}
	c, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return func(yield func(*entity.ComponentConfig) bool) {
		yield(c)
	}, nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) Len() int {
	return len(r.order)
}
