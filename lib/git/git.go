package git

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cwbdev/cwb/entity"
)

/**
 * Parses url with the given regular expression and returns the
 * group values defined in the expression.
 */
func getParams(regEx, test string) (paramsMap map[string]string) {
	var compRegEx = regexp.MustCompile(regEx)
	match := compRegEx.FindStringSubmatch(test)

	paramsMap = make(map[string]string)
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

// Repo runs read-only git queries against one working tree.
type Repo struct {
	runner entity.CommandRunner
	path   string
}

func New(runner entity.CommandRunner, path string) *Repo {
	return &Repo{runner: runner, path: path}
}

func (r *Repo) execGit(ctx context.Context, cmd ...string) (string, error) {
	args := []string{"-C", r.path}
	args = append(args, cmd...)
	res, err := r.runner.Run(ctx, entity.ExecRequest{
		Name:  "git",
		Args:  args,
		Env:   map[string]string{"GIT_TERMINAL_PROMPT": "0"},
		Label: "git",
	}, entity.ExecCaptured)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func (r *Repo) IsRepo(ctx context.Context) bool {
	_, err := r.execGit(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

func (r *Repo) RepoName(ctx context.Context) (string, error) {
	remoteRegex := `(?:(?:.*?\@.*?\..*?\:)|(?:https\:\/\/.*?\..*?\/))(?P<User>.*?)\/(?P<Repo>.*?)\.git`
	remotes, err := r.execGit(ctx, "remote")
	if err == nil {
		for _, remote := range strings.Split(remotes, "\n") {
			if strings.TrimSpace(remote) != "origin" {
				continue
			}
			remoteURL, err := r.execGit(ctx, "remote", "get-url", "origin")
			if err != nil {
				break
			}
			remoteURL = strings.TrimSpace(remoteURL)
			if !strings.HasSuffix(remoteURL, ".git") {
				remoteURL += ".git"
			}
			match := getParams(remoteRegex, remoteURL)
			if match["User"] != "" && match["Repo"] != "" {
				return match["User"] + "/" + match["Repo"], nil
			}
		}
	}
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

func (r *Repo) GetBranch(ctx context.Context) (string, error) {
	branch, err := r.execGit(ctx, "branch", "--show-current")
	return strings.TrimSpace(branch), err
}

func (r *Repo) GetCommit(ctx context.Context) (CommitInfo, error) {
	hash, err := r.execGit(ctx, "log", "-1", "--format=format:%h")
	if err != nil {
		return CommitInfo{}, err
	}
	message, err := r.execGit(ctx, "log", "-1", "--format=format:%s")
	if err != nil {
		return CommitInfo{}, err
	}
	author, err := r.execGit(ctx, "log", "-1", "--format=format:%an <%ae>")
	if err != nil {
		return CommitInfo{}, err
	}
	return CommitInfo{
		Hash:    strings.TrimSpace(hash),
		Message: strings.TrimSpace(message),
		Author:  strings.TrimSpace(author),
	}, nil
}

func (r *Repo) HasLocalChanges(ctx context.Context) (bool, error) {
	status, err := r.execGit(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(status) != "", nil
}

func (r *Repo) GetAllMetadata(ctx context.Context) (GitMetadata, error) {
	if !r.IsRepo(ctx) {
		return GitMetadata{IsRepo: false}, nil
	}

	name, err := r.RepoName(ctx)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	branch, err := r.GetBranch(ctx)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	commit, err := r.GetCommit(ctx)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	dirty, err := r.HasLocalChanges(ctx)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	return GitMetadata{
		IsRepo:          true,
		RepoName:        name,
		Branch:          branch,
		Commit:          commit,
		HasLocalChanges: dirty,
	}, nil
}
