// Package config loads asciiflag settings from a TOML file.
//
// The file is optional. When it is absent every field keeps its default, so
// the CLI behaves the same with or without a config:
//
//	sizes = [2, 4, 6]
//
//	[characters]
//	border = "#"
//	body = " "
//	circle_border = "*"
//	circle_body = "0"
//
// Fields left out of the file also keep their defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
	"github.com/matzehuels/asciiflag/pkg/flag"
)

const (
	// appName is the directory name used under the XDG config home.
	appName = "asciiflag"

	// fileName is the config file name inside the app directory.
	fileName = "config.toml"
)

// DefaultSizes are rendered when the CLI is run without a size.
var DefaultSizes = []int{2, 4, 6}

// Config is the decoded configuration.
type Config struct {
	Sizes      []int      `toml:"sizes"`
	Characters Characters `toml:"characters"`
}

// Characters mirrors flag.Characters with one string per symbol, since TOML
// has no character type.
type Characters struct {
	Border       string `toml:"border"`
	Body         string `toml:"body"`
	CircleBorder string `toml:"circle_border"`
	CircleBody   string `toml:"circle_body"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := flag.DefaultCharacters()
	return Config{
		Sizes: append([]int(nil), DefaultSizes...),
		Characters: Characters{
			Border:       string(d.Border),
			Body:         string(d.Body),
			CircleBorder: string(d.CircleBorder),
			CircleBody:   string(d.CircleBody),
		},
	}
}

// Load reads the config at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data on top of base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.Sizes = append([]int(nil), base.Sizes...)
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks every size and character in the config.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "sizes cannot be empty")
	}
	for _, n := range c.Sizes {
		if err := flag.Validate(n); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "invalid size %d in config", n)
		}
	}
	_, err := c.FlagCharacters()
	return err
}

// FlagCharacters converts the configured symbols into flag.Characters.
func (c Config) FlagCharacters() (flag.Characters, error) {
	var out flag.Characters
	symbols := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"border", c.Characters.Border, &out.Border},
		{"body", c.Characters.Body, &out.Body},
		{"circle_border", c.Characters.CircleBorder, &out.CircleBorder},
		{"circle_body", c.Characters.CircleBody, &out.CircleBody},
	}

	for _, s := range symbols {
		if err := apperr.ValidateSymbol(s.name, s.value); err != nil {
			return flag.Characters{}, err
		}
		*s.dst = []rune(s.value)[0]
	}
	return out, nil
}

// DefaultPath returns the config file path using the XDG standard
// (~/.config/asciiflag/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}
