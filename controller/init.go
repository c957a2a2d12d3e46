package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbdev/cwb/configs"
	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/registry"
	"github.com/cwbdev/cwb/ui"
)

const starterEnvironment = "dev"

// Init writes a starter config.yaml in the project root and reports what was
// detected there.
func (c *Controller) Init(ctx context.Context) error {
	path := filepath.Join(c.root, constants.ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		if err := c.confirm("overwrite", path); err != nil {
			return err
		}
	}

	detection := registry.Detect(c.root)
	if len(detection.Findings) > 0 {
		ui.Info("Detected:")
		fmt.Print(ui.PrefixLines(ui.UnorderedList(detection.Findings), "  "))
	}

	fields, err := c.promptEnvironment(starterEnvironment)
	if err != nil {
		return err
	}
	fields["appName"] = filepath.Base(c.root)

	if err := configs.ValidateEnvironment(starterEnvironment, fields); err != nil {
		return err
	}
	if c.dryRun("write %s", path) {
		return nil
	}
	if err := configs.NewStore(path).Create(starterEnvironment, fields); err != nil {
		return err
	}

	ui.Success("Created %s with environment '%s'", path, starterEnvironment)
	if ignored, err := isIgnored(c.root, path); err == nil && !ignored {
		ui.Warning("Add %s to .gitignore to keep account details out of git", constants.ConfigFileName)
	}
	return nil
}
