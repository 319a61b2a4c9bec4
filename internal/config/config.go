// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package config resolves command line settings. Environment variables with
// the GQLSDL_ prefix set the defaults and flags override them.
package config

import (
	"errors"
	"runtime"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"

	"gopkg.microglot.org/gqlsdl.go/internal/dump"
)

const envPrefix = "GQLSDL"

type Config struct {
	LogLevel     string `split_words:"true" default:"info"`
	LogFormat    string `split_words:"true" default:"text"`
	Output       string `default:"json"`
	Descriptions bool
	// Concurrency bounds the number of files parsed at once. Values below
	// one select GOMAXPROCS.
	Concurrency int
	// SourceName overrides the name given to sources in locations and
	// errors. Empty means the file path.
	SourceName string `split_words:"true"`
	Root       string `default:"."`
	// Watch keeps running after the first pass and parses again whenever a
	// schema file in a target directory changes.
	Watch bool
}

// Load reads the environment and then args, which excludes the program name.
// It returns the settings and the remaining positional arguments.
func Load(name string, args []string) (*Config, []string, error) {
	c := &Config{}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, nil, err
	}

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: text or json.")
	flags.StringVarP(&c.Output, "output", "o", c.Output, "Tree output format: json, yaml or none.")
	flags.BoolVar(&c.Descriptions, "descriptions", c.Descriptions, "Print descriptions collected from comments.")
	flags.IntVarP(&c.Concurrency, "concurrency", "j", c.Concurrency, "Maximum number of files parsed at once.")
	flags.StringVar(&c.SourceName, "source-name", c.SourceName, "Source name used in locations instead of the file path.")
	flags.StringVar(&c.Root, "root", c.Root, "Directory that target paths are relative to.")
	flags.BoolVarP(&c.Watch, "watch", "w", c.Watch, "Parse again when schema files change.")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if _, err := dump.ParseFormat(c.Output); err != nil {
		return nil, nil, err
	}
	if c.Concurrency < 1 {
		c.Concurrency = runtime.GOMAXPROCS(0)
	}
	targets := flags.Args()
	if c.Watch && slices.Contains(targets, "-") {
		return nil, nil, errors.New("standard input cannot be watched")
	}
	return c, targets, nil
}
