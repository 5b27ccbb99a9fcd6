// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/zosmac/gocore"
	"gopkg.in/yaml.v3"
)

// applyConfig sets flags from a YAML mapping of flag names to values. Flags set on the command
// line keep their values.
//
//	sort: mem
//	limit: 10
//	interval: 2s
//	source: gopsutil
func applyConfig(fs *flag.FlagSet, r io.Reader) error {
	var config map[string]any
	if err := yaml.NewDecoder(r).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return gocore.Error("config", err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	names := make([]string, 0, len(config))
	for name := range config {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "config" || fs.Lookup(name) == nil {
			return gocore.Error("config", fmt.Errorf("unknown flag %q", name))
		}
		if set[name] {
			continue
		}
		if err := fs.Set(name, fmt.Sprint(config[name])); err != nil {
			return gocore.Error("config", err, map[string]string{
				"flag": name,
			})
		}
	}
	return nil
}
