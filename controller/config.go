package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwbdev/cwb/ui"
)

func (c *Controller) ShowConfig(ctx context.Context) error {
	fmt.Print(ui.Heading("Configuration"))
	fmt.Print(ui.KeyValues(map[string]string{
		"Config file":         c.cfg.Path(),
		"Active environment":  c.envName,
		"Default environment": c.cfg.Document().DefaultEnvironment,
	}))
	fmt.Println()
	fmt.Print(ui.KeyValues(environmentSummary(c.env)))

	if c.verbose {
		all := map[string]string{}
		for _, key := range c.cfg.Keys(c.envName) {
			value, _ := c.cfg.Lookup(c.envName, key)
			all[key] = ui.Truncate(formatValue(value), 60)
		}
		fmt.Println()
		fmt.Print(ui.Heading("All settings"))
		fmt.Print(ui.KeyValues(all))
	}
	return nil
}

// ConfigValue returns a fixed key or a dotted path inside the active environment.
func (c *Controller) ConfigValue(key string) (string, error) {
	switch key {
	case "env":
		return c.envName, nil
	case "default_env":
		return c.cfg.Document().DefaultEnvironment, nil
	case "deployment_name":
		return c.env.DeploymentName, nil
	case "account_number":
		return c.env.AccountNumber, nil
	case "region":
		return c.env.Region, nil
	case "app_name":
		return c.env.AppName, nil
	case "log_level":
		return c.env.LogLevel, nil
	case "aws_profile":
		return c.env.Profile(), nil
	}

	value, ok := c.cfg.Lookup(c.envName, key)
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return formatValue(value), nil
}

func (c *Controller) GetConfig(ctx context.Context, key string) error {
	value, err := c.ConfigValue(key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case []interface{}:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = formatValue(p)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
