package git_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/cwbdev/cwb/executor/executortest"
	"github.com/cwbdev/cwb/lib/git"
	"github.com/stretchr/testify/require"
)

func fakeGit(outputs map[string]string) *executortest.Recorder {
	return &executortest.Recorder{
		Handler: func(req entity.ExecRequest, mode entity.ExecMode) (*entity.ExecResult, error) {
			key := strings.Join(req.Args[2:], " ")
			out, ok := outputs[key]
			if !ok {
				return &entity.ExecResult{ExitCode: 128}, &CLIErrors.ExecutionFailedError{Command: req.CommandLine(), ExitCode: 128}
			}
			return &entity.ExecResult{Stdout: out}, nil
		},
	}
}

var repoNameTest = []struct {
	name   string
	remote string
	out    string
}{
	{name: "SSH remote", remote: "git@github.com:cwbdev/cwb.git\n", out: "cwbdev/cwb"},
	{name: "HTTPS remote without suffix", remote: "https://github.com/cwbdev/workbench\n", out: "cwbdev/workbench"},
}

func TestRepoName(t *testing.T) {
	for _, tt := range repoNameTest {
		t.Run(tt.name, func(t *testing.T) {
			rec := fakeGit(map[string]string{
				"remote":                "origin\n",
				"remote get-url origin": tt.remote,
			})
			name, err := git.New(rec, "/work/project").RepoName(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.out, name)
		})
	}
}

func TestRepoNameFallsBackToDirectory(t *testing.T) {
	rec := fakeGit(map[string]string{"remote": ""})
	name, err := git.New(rec, "/work/project").RepoName(context.Background())
	require.NoError(t, err)
	require.Equal(t, "project", name)
}

func TestGetAllMetadata(t *testing.T) {
	rec := fakeGit(map[string]string{
		"rev-parse --is-inside-work-tree":  "true\n",
		"remote":                           "origin\n",
		"remote get-url origin":            "git@github.com:cwbdev/cwb.git\n",
		"branch --show-current":            "main\n",
		"log -1 --format=format:%h":        "abc1234",
		"log -1 --format=format:%s":        "Add deploy command",
		"log -1 --format=format:%an <%ae>": "Dev <dev@example.com>",
		"status --porcelain":               " M config.yaml\n",
	})

	meta, err := git.New(rec, ".").GetAllMetadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, git.GitMetadata{
		IsRepo:   true,
		RepoName: "cwbdev/cwb",
		Branch:   "main",
		Commit: git.CommitInfo{
			Hash:    "abc1234",
			Message: "Add deploy command",
			Author:  "Dev <dev@example.com>",
		},
		HasLocalChanges: true,
	}, meta)

	for _, call := range rec.Calls() {
		require.Equal(t, "0", call.Request.Env["GIT_TERMINAL_PROMPT"])
		require.Equal(t, []string{"-C", "."}, call.Request.Args[:2])
	}
}

func TestNotARepo(t *testing.T) {
	rec := fakeGit(map[string]string{})
	meta, err := git.New(rec, ".").GetAllMetadata(context.Background())
	require.NoError(t, err)
	require.False(t, meta.IsRepo)

	_, err = git.New(rec, ".").GetBranch(context.Background())
	var failed *CLIErrors.ExecutionFailedError
	require.True(t, errors.As(err, &failed))
}

var revisionTest = []struct {
	name string
	meta git.GitMetadata
	out  string
}{
	{name: "Clean short hash", meta: git.GitMetadata{Commit: git.CommitInfo{Hash: "abc1234"}}, out: "abc1234"},
	{name: "Long hash is shortened", meta: git.GitMetadata{Commit: git.CommitInfo{Hash: "abc1234def5678"}}, out: "abc1234"},
	{name: "Dirty tree", meta: git.GitMetadata{Commit: git.CommitInfo{Hash: "abc1234"}, HasLocalChanges: true}, out: "abc1234-dirty"},
}

func TestRevision(t *testing.T) {
	for _, tt := range revisionTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, tt.meta.Revision())
		})
	}
}
