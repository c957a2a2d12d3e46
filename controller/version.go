package controller

import (
	"context"
	"fmt"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/ui"
)

func (c *Controller) Version(ctx context.Context) error {
	fmt.Printf("cwb version %s\n", ui.MagentaText(constants.Version))
	if c.cfg != nil {
		fmt.Print(ui.KeyValues(map[string]string{
			"Environment": c.envName,
			"Config":      c.cfg.Path(),
		}))
	}

	if constants.Version == "source" {
		return nil
	}
	latest, err := c.gtwy.LatestRelease(ctx)
	if err != nil {
		ui.Debug("Checking for a newer release failed: %v", err)
		return nil
	}
	if latest != "" && latest != constants.Version {
		ui.Info("A newer version of cwb is available: %s", latest)
	}
	return nil
}
