package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/cwbdev/cwb/constants"
	"github.com/cwbdev/cwb/entity"
	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/spf13/viper"
)

const (
	canonicalDefaultKey = "defaultEnvironment"
	canonicalEnvsKey    = "environments"
	legacyDefaultKey    = "env"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

// Configs is a loaded config document together with the per-environment
// viper trees it was decoded from.
type Configs struct {
	file         *Config
	environments map[string]*viper.Viper
	document     *entity.ConfigDocument
}

// FindConfigFile walks from startDir up to the filesystem root and returns the
// nearest config.yaml, falling back to config.yaml.example in the same directory.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{constants.ConfigFileName, constants.ExampleConfigFileName} {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", CLIErrors.ConfigNotFound
		}
		dir = parent
	}
}

// Locate returns path when set, otherwise searches upward from the working directory.
func Locate(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", &CLIErrors.ConfigParseError{Path: path, Err: err}
		}
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindConfigFile(wd)
}

// Load reads and validates the document at path.
func Load(path string) (*Configs, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, &CLIErrors.ConfigParseError{Path: path, Err: err}
	}

	defaultEnv, prefixes := layout(v)
	if len(prefixes) == 0 {
		return nil, &CLIErrors.ConfigParseError{Path: path, Err: fmt.Errorf("no environments defined")}
	}

	c := &Configs{
		file:         &Config{viper: v, configPath: path},
		environments: make(map[string]*viper.Viper, len(prefixes)),
		document: &entity.ConfigDocument{
			Path:               path,
			DefaultEnvironment: strings.ToLower(defaultEnv),
			Environments:       make(map[string]entity.EnvironmentConfig, len(prefixes)),
		},
	}

	for name, prefix := range prefixes {
		sub := v.Sub(prefix)
		if sub == nil {
			return nil, &CLIErrors.ConfigParseError{Path: path, Err: fmt.Errorf("environment %q is not a mapping", name)}
		}
		applyDefaults(sub)

		var cfg entity.EnvironmentConfig
		if err := sub.Unmarshal(&cfg); err != nil {
			return nil, &CLIErrors.ConfigParseError{Path: path, Err: fmt.Errorf("environment %q: %w", name, err)}
		}
		if err := validate(&cfg); err != nil {
			return nil, &CLIErrors.ConfigParseError{Path: path, Err: fmt.Errorf("environment %q: %w", name, err)}
		}

		c.environments[name] = sub
		c.document.Environments[name] = cfg
	}

	return c, nil
}

// layout returns the default environment selector and the viper key of each
// environment block. Keys come back lower-cased from viper.
func layout(v *viper.Viper) (string, map[string]string) {
	prefixes := map[string]string{}

	if v.IsSet(canonicalEnvsKey) {
		for name := range v.GetStringMap(canonicalEnvsKey) {
			prefixes[strings.ToLower(name)] = canonicalEnvsKey + "." + name
		}
		return v.GetString(canonicalDefaultKey), prefixes
	}

	for key, value := range v.AllSettings() {
		if strings.EqualFold(key, legacyDefaultKey) {
			continue
		}
		if _, ok := value.(map[string]interface{}); ok {
			prefixes[strings.ToLower(key)] = key
		}
	}
	return v.GetString(legacyDefaultKey), prefixes
}

var accountNumberPattern = regexp.MustCompile(`^\d{12}$`)

// reservedNames are keys the file layout uses for itself.
var reservedNames = []string{canonicalDefaultKey, canonicalEnvsKey, legacyDefaultKey}

// ValidAccountNumber reports whether account is a 12 digit AWS account id.
func ValidAccountNumber(account string) bool {
	return accountNumberPattern.MatchString(account)
}

// Load only requires the fields to be present so that doctor can still
// report a malformed account on a file written by hand.
func validate(cfg *entity.EnvironmentConfig) error {
	return requireFields(cfg.AccountNumber, cfg.Region)
}

func requireFields(account, region string) error {
	var missing []string
	if strings.TrimSpace(account) == "" {
		missing = append(missing, "accountNumber")
	}
	if strings.TrimSpace(region) == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvironment checks a block before it is written, so a write never
// produces a file that Load rejects.
func ValidateEnvironment(name string, fields map[string]string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := requireFields(fields["accountNumber"], fields["region"]); err != nil {
		return &CLIErrors.InvalidEnvironmentError{Name: name, Reason: err.Error()}
	}
	if !ValidAccountNumber(fields["accountNumber"]) {
		return &CLIErrors.InvalidEnvironmentError{
			Name:   name,
			Reason: fmt.Sprintf("accountNumber %q is not a 12 digit AWS account id", fields["accountNumber"]),
		}
	}
	return nil
}

// ValidateName rejects names that would collide with the layout keys or
// break dotted key lookups.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &CLIErrors.InvalidEnvironmentError{Name: name, Reason: "name is empty"}
	case strings.ContainsAny(name, ". \t"):
		return &CLIErrors.InvalidEnvironmentError{Name: name, Reason: "name must not contain dots or spaces"}
	}
	for _, reserved := range reservedNames {
		if strings.EqualFold(name, reserved) {
			return &CLIErrors.InvalidEnvironmentError{Name: name, Reason: "name is reserved"}
		}
	}
	return nil
}

func (c *Configs) Path() string {
	return c.file.configPath
}

func (c *Configs) Document() *entity.ConfigDocument {
	return c.document
}

// Lookup returns the value at a dotted key inside one environment, with
// defaults applied. Keys are case-insensitive.
func (c *Configs) Lookup(env, key string) (interface{}, bool) {
	sub, ok := c.environments[strings.ToLower(env)]
	if !ok || !sub.IsSet(key) {
		return nil, false
	}
	return sub.Get(key), true
}

// Keys lists every dotted key available in one environment.
func (c *Configs) Keys(env string) []string {
	sub, ok := c.environments[strings.ToLower(env)]
	if !ok {
		return nil
	}
	keys := sub.AllKeys()
	sort.Strings(keys)
	return keys
}
