// Package config is the flag/env configuration surface for the rps
// binaries, backed by viper. Flags win over RPS_* environment variables,
// which win over defaults.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

func (c *Config) ensure() {
	if c.v == nil {
		c.v = viper.New()
		c.v.SetEnvPrefix("rps")
		c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		c.v.AutomaticEnv()
		c.v.SetDefault("debug", false)
		c.v.SetDefault("variant-file", "")
		c.v.SetDefault("default-variant", "classic")
	}
}

// Load parses command-line arguments. Only flags the caller actually passed
// override the environment.
func (c *Config) Load(args []string) error {
	c.ensure()
	fs := flag.NewFlagSet("rps", flag.ContinueOnError)
	fs.Bool("debug", false, "debug logging on")
	fs.String("variant-file", "", "YAML variant definition compiled on top of classic at startup")
	fs.String("default-variant", "classic", "built-in variant to start with: classic or lizardspock")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		c.v.Set(f.Name, f.Value.String())
	})
	return nil
}

func (c *Config) GetString(key string) string {
	c.ensure()
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	c.ensure()
	return c.v.GetBool(key)
}

// SanitizedSettings renders the resolved settings for the startup log line.
func (c *Config) SanitizedSettings() string {
	c.ensure()
	return fmt.Sprintf("%v", c.v.AllSettings())
}
