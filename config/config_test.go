package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetBool("debug"), false)
	is.Equal(c.GetString("default-variant"), "classic")
	is.Equal(c.GetString("variant-file"), "")
}

func TestFlagsOverride(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{
		"-debug",
		"-default-variant", "lizardspock",
		"-variant-file", "/tmp/variant.yaml",
	}))
	is.Equal(c.GetBool("debug"), true)
	is.Equal(c.GetString("default-variant"), "lizardspock")
	is.Equal(c.GetString("variant-file"), "/tmp/variant.yaml")
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.True(c.Load([]string{"-no-such-flag"}) != nil)
}
