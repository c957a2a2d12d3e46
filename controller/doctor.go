package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/lib/git"
	"github.com/cwbdev/cwb/ui"
	gitignore "github.com/monochromegane/go-gitignore"
)

// RequiredTools are the executables the wrapped workflows call.
var RequiredTools = []string{"git", "docker", "node", "npm", "python3", "uv", "aws", "cdk"}

// Diagnosis collects what doctor found, grouped by check.
type Diagnosis struct {
	Passed []string
	Issues []string
}

func (d *Diagnosis) pass(format string, args ...interface{}) {
	d.Passed = append(d.Passed, fmt.Sprintf(format, args...))
}

func (d *Diagnosis) fail(format string, args ...interface{}) {
	d.Issues = append(d.Issues, fmt.Sprintf(format, args...))
}

// Doctor reports environment and project problems. Findings never fail the
// command.
func (c *Controller) Doctor(ctx context.Context) error {
	ui.Info("Running diagnostics...")
	d := c.Diagnose(ctx)

	for _, p := range d.Passed {
		ui.Success("%s", p)
	}
	if len(d.Issues) == 0 {
		ui.Success("No issues found")
		return nil
	}

	ui.Warning("Found %s issue(s):", ui.YellowText(fmt.Sprint(len(d.Issues))))
	fmt.Print(ui.PrefixLines(ui.OrderedList(d.Issues), "  "))
	return nil
}

func (c *Controller) Diagnose(ctx context.Context) *Diagnosis {
	d := &Diagnosis{}
	c.checkConfig(d)
	c.checkTools(d)
	c.checkStructure(d)
	c.checkIdentity(ctx, d)
	c.checkGit(ctx, d)
	c.checkIgnored(d)
	return d
}

func (c *Controller) checkConfig(d *Diagnosis) {
	doc := c.cfg.Document()
	if _, ok := doc.Environments[doc.DefaultEnvironment]; ok {
		d.pass("Default environment '%s' is defined", doc.DefaultEnvironment)
	} else {
		d.fail("default environment '%s' is not defined in %s", doc.DefaultEnvironment, c.cfg.Path())
	}

	for _, name := range doc.EnvironmentNames() {
		account := doc.Environments[name].AccountNumber
		if !configs.ValidAccountNumber(account) {
			d.fail("environment '%s' has an invalid account number %q (expected 12 digits)", name, account)
		}
	}
}

func (c *Controller) checkTools(d *Diagnosis) {
	var missing []string
	for _, tool := range RequiredTools {
		if !c.runner.Probe(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) == 0 {
		d.pass("All required tools are installed")
		return
	}
	for _, tool := range missing {
		d.fail("%s is not installed or not on PATH", tool)
	}
}

func (c *Controller) checkStructure(d *Diagnosis) {
	for comp := range c.components.All() {
		if info, err := os.Stat(comp.Path); err != nil || !info.IsDir() {
			d.fail("component '%s' directory %s is missing", comp.Name, comp.Path)
			continue
		}
		d.pass("Found %s component at %s", comp.Name, comp.Path)
	}
	if c.components.Len() == 0 {
		d.fail("no components detected under %s", c.root)
	}
}

func (c *Controller) checkIdentity(ctx context.Context, d *Diagnosis) {
	identity, err := c.gtwy.CallerIdentity(ctx, c.env)
	if err != nil {
		d.fail("AWS credentials for profile '%s' are not usable: %s", c.env.Profile(), ui.Truncate(err.Error(), 120))
		return
	}
	if identity.Account != c.env.AccountNumber {
		d.fail("AWS profile '%s' is for account %s, but '%s' deploys to %s",
			c.env.Profile(), identity.Account, c.envName, c.env.AccountNumber)
		return
	}
	d.pass("AWS credentials match account %s", identity.Account)
}

func (c *Controller) checkGit(ctx context.Context, d *Diagnosis) {
	if c.runner.DryRun() {
		return
	}
	meta, err := git.New(c.runner, c.root).GetAllMetadata(ctx)
	if err != nil || !meta.IsRepo {
		d.fail("%s is not a git repository", c.root)
		return
	}
	d.pass("Git repository %s on branch %s", meta.RepoName, meta.Branch)
	if meta.HasLocalChanges {
		ui.Debug("Working tree has uncommitted changes")
	}
}

// checkIgnored makes sure the real config file, which names accounts and
// profiles, is not committed.
func (c *Controller) checkIgnored(d *Diagnosis) {
	if filepath.Base(c.cfg.Path()) != constants.ConfigFileName {
		return
	}
	ignored, err := isIgnored(c.root, c.cfg.Path())
	if err != nil {
		d.fail("cannot read .gitignore: %v", err)
		return
	}
	if !ignored {
		d.fail("%s is not listed in .gitignore", constants.ConfigFileName)
		return
	}
	d.pass("%s is git-ignored", constants.ConfigFileName)
}

func isIgnored(root, path string) (bool, error) {
	ignoreFile := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(ignoreFile); os.IsNotExist(err) {
		return false, nil
	}
	matcher, err := gitignore.NewGitIgnore(ignoreFile, root)
	if err != nil {
		return false, err
	}
	return matcher.Match(path, false), nil
}
