package gateway

import (
	"path/filepath"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/entity"
	"github.com/google/go-github/github"
)

// Gateway builds and runs invocations of the external tools cwb wraps.
type Gateway struct {
	runner entity.CommandRunner
	github *github.Client
	root   string
}

// New returns a gateway rooted at the project directory root.
func New(runner entity.CommandRunner, root string) *Gateway {
	return &Gateway{
		runner: runner,
		github: github.NewClient(nil),
		root:   root,
	}
}

func (g *Gateway) Root() string {
	return g.root
}

func (g *Gateway) CDKDir() string {
	return filepath.Join(g.root, filepath.FromSlash(constants.CDKDir))
}
