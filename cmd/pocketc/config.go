package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"pocketc/pkg/interp"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Description: `The dumpconfig command shows configuration values.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Config collects every tunable of the tool.
type Config struct {
	// MaxSteps bounds statements and loop iterations per run; 0 means
	// unlimited.
	MaxSteps int64
	// HistoryFile is where executions are recorded.
	HistoryFile string
	// HistoryLimit caps the number of recorded executions.
	HistoryLimit int
	// NoColor disables colored diagnostics.
	NoColor bool
}

func defaultConfig() Config {
	return Config{
		MaxSteps:     interp.DefaultMaxSteps,
		HistoryFile:  defaultHistoryFile(),
		HistoryLimit: 100,
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+clientIdentifier, "history.json")
	}
	return filepath.Join(home, "."+clientIdentifier, "history.json")
}

func loadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads defaults, then the config file, then applies the
// command-line flags on top.
func makeConfig(ctx *cli.Context) (*Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, err
		}
	}

	if ctx.GlobalIsSet(maxStepsFlag.Name) {
		cfg.MaxSteps = ctx.GlobalInt64(maxStepsFlag.Name)
	}
	if ctx.GlobalIsSet(historyFileFlag.Name) {
		cfg.HistoryFile = ctx.GlobalString(historyFileFlag.Name)
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.NoColor = true
	}
	return &cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
