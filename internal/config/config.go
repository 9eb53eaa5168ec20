// Package config loads settings for the pulse command from YAML.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

// Settings is the content of a configuration file. Signal parameters sit at
// the top level; server and log settings are nested.
type Settings struct {
	core.Config `yaml:",inline"`

	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr string `yaml:"addr"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"` // logrus level name
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Config: core.DefaultConfig(),
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result. Keys absent
// from the file keep their default values; unknown keys are an error. An
// empty path returns the defaults.
func Load(path string) (Settings, error) {
	s, err := Read(path)
	if err != nil {
		return Settings{}, err
	}
	if err := s.Config.Validate(); err != nil {
		return Settings{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return s, nil
}

// Read is Load without validation, for callers that apply further
// overrides first.
func Read(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Settings{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read %s", path)
	}
	return s, nil
}

// Decode reads YAML from r over the defaults.
func Decode(r io.Reader) (Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, errors.Wrap(err, "decode yaml")
	}
	return s, nil
}
