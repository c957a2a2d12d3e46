package entity_test

import (
	"testing"

	"github.com/cwbdev/cwb/entity"
	"github.com/stretchr/testify/require"
)

var packageManagerTest = []struct {
	in       string
	pm       entity.PackageManager
	install  [][]string
	update   [][]string
	outdated [][]string
	sync     [][]string
}{
	{
		in:       "uv",
		pm:       entity.PackageManagerUv,
		install:  [][]string{{"uv", "sync"}},
		update:   [][]string{{"uv", "lock", "--upgrade"}, {"uv", "sync"}},
		outdated: [][]string{{"uv", "lock", "--dry-run"}},
		sync:     [][]string{{"uv", "sync", "--locked"}},
	},
	{
		in:       "NPM",
		pm:       entity.PackageManagerNpm,
		install:  [][]string{{"npm", "install"}},
		update:   [][]string{{"npm", "update"}},
		outdated: [][]string{{"npm", "outdated"}},
		sync:     [][]string{{"npm", "ci"}},
	},
	{
		in:       "yarn",
		pm:       entity.PackageManagerYarn,
		install:  [][]string{{"yarn", "install"}},
		update:   [][]string{{"yarn", "upgrade"}},
		outdated: [][]string{{"yarn", "outdated"}},
		sync:     [][]string{{"yarn", "install", "--frozen-lockfile"}},
	},
	{
		in:       "pnpm",
		pm:       entity.PackageManagerPnpm,
		install:  [][]string{{"pnpm", "install"}},
		update:   [][]string{{"pnpm", "update"}},
		outdated: [][]string{{"pnpm", "outdated"}},
		sync:     [][]string{{"pnpm", "install", "--frozen-lockfile"}},
	},
	{
		in:       "bun",
		pm:       entity.PackageManagerBun,
		install:  [][]string{{"bun", "install"}},
		update:   [][]string{{"bun", "update"}},
		outdated: [][]string{{"bun", "outdated"}},
		sync:     [][]string{{"bun", "install", "--frozen-lockfile"}},
	},
	{
		in: "poetry",
		pm: entity.PackageManagerUnknown,
	},
}

func TestPackageManagerOperations(t *testing.T) {
	for _, tt := range packageManagerTest {
		t.Run(tt.in, func(t *testing.T) {
			pm := entity.ParsePackageManager(tt.in)
			require.Equal(t, tt.pm, pm)
			require.Equal(t, tt.install, pm.InstallArgs())
			require.Equal(t, tt.update, pm.UpdateArgs())
			require.Equal(t, tt.outdated, pm.OutdatedArgs())
			require.Equal(t, tt.sync, pm.SyncArgs())
		})
	}
}

func TestComponentRequest(t *testing.T) {
	c := entity.ComponentConfig{
		Name: "backend",
		Path: "backend",
		Test: entity.Template{"uv", "run", "pytest"},
	}

	req, ok := c.Request(entity.ActionTest, "-k", "smoke")
	require.True(t, ok)
	require.Equal(t, "uv run pytest -k smoke", req.CommandLine())
	require.Equal(t, "backend", req.Dir)

	_, ok = c.Request(entity.ActionLint)
	require.False(t, ok)
}
