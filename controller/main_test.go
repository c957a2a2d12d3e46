package controller_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/controller"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/cwbdev/cwb/gateway"
	"github.com/cwbdev/cwb/registry"
	"github.com/stretchr/testify/require"
)

const projectConfig = `defaultEnvironment: dev
environments:
  dev:
    deploymentName: cwb-dev
    accountNumber: "111111111111"
    region: us-east-1
    awsProfile: dev
    loadBalancerConfig:
      albPlacement: public
  prod:
    accountNumber: "222222222222"
    region: eu-west-1
`

// fakePrompter answers from canned values and records every question.
type fakePrompter struct {
	confirm   bool
	err       error
	texts     []string
	selection string
	asked     []string
}

func (p *fakePrompter) Confirm(label string, defaultYes bool) (bool, error) {
	p.asked = append(p.asked, label)
	return p.confirm, p.err
}

func (p *fakePrompter) ConfirmDestructive(action, target string) (bool, error) {
	p.asked = append(p.asked, action+" "+target)
	return p.confirm, p.err
}

func (p *fakePrompter) Text(label, defaultValue string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.texts) == 0 {
		return defaultValue, p.err
	}
	next := p.texts[0]
	p.texts = p.texts[1:]
	if next == "" {
		next = defaultValue
	}
	return next, p.err
}

func (p *fakePrompter) Select(label string, items []string) (string, error) {
	p.asked = append(p.asked, label)
	return p.selection, p.err
}

type fixture struct {
	ctrl     *controller.Controller
	rec      *executortest.Recorder
	prompter *fakePrompter
	root     string
	config   string
}

type fixtureOptions struct {
	force          bool
	nonInteractive bool
	env            string
}

// newFixture lays out a project with every component directory and a config.
func newFixture(t *testing.T, rec *executortest.Recorder, p *fakePrompter, o fixtureOptions) *fixture {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"backend", "ui", filepath.Join("infrastructure", "cdk")} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "ui", "yarn.lock"), nil, 0o644))

	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(projectConfig), 0o644))

	cfg, err := configs.Load(path)
	require.NoError(t, err)
	env, name, err := cfg.Resolve(o.env)
	require.NoError(t, err)
	reg, err := registry.Discover(root)
	require.NoError(t, err)

	var prompter controller.Prompter
	if p != nil {
		prompter = p
	}

	ctrl := controller.New(controller.Options{
		Runner:      rec,
		Prompter:    prompter,
		Interactive: func() bool { return !o.nonInteractive },
		Registry:    reg,
		Gateway:     gateway.New(rec, root),
		Config:      cfg,
		Environment: env,
		EnvName:     name,
		Root:        root,
		Force:       o.force,
	})
	return &fixture{ctrl: ctrl, rec: rec, prompter: p, root: root, config: path}
}

func (f *fixture) reload(t *testing.T) *configs.Configs {
	t.Helper()
	cfg, err := configs.Load(f.config)
	require.NoError(t, err)
	return cfg
}

// raw returns the config file as it is on disk.
func (f *fixture) raw(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.config)
	require.NoError(t, err)
	return string(data)
}
