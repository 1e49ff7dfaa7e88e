package main

import (
	"encoding/json"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// JSONConfig mirrors the command line flags so a cross can be described in
// a file. Any flag given explicitly on the command line wins.
type JSONConfig struct {
	ConfigPath string `json:"-"`

	Parent1    string `json:"parent1"`
	Parent2    string `json:"parent2"`
	Offspring  int    `json:"offspring"`
	Seed       *int64 `json:"seed"`
	Workers    int    `json:"workers"`
	Replicates int    `json:"replicates"`
	Chart      string `json:"chart"`
	Table      string `json:"table"`
	Bars       bool   `json:"bars"`
	BarWidth   int    `json:"bar_width"`
	Stats      bool   `json:"stats"`
	Batch      string `json:"batch"`
}

func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := JSONConfig{ConfigPath: expandHomeDir(path)}

	f, err := os.Open(out.ConfigPath)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return out, pfx.Err(err)
	}

	// Interpret ~ if present
	out.Chart = expandHomeDir(out.Chart)
	out.Table = expandHomeDir(out.Table)
	out.Batch = expandHomeDir(out.Batch)

	return out, nil
}

// apply copies every value the config sets into opts, unless the flag of the
// same name was set on the command line.
func (c JSONConfig) apply(opts *Options, explicit map[string]bool) {
	setString := func(flagName string, dst *string, v string) {
		if v != "" && !explicit[flagName] {
			*dst = v
		}
	}
	setInt := func(flagName string, dst *int, v int) {
		if v != 0 && !explicit[flagName] {
			*dst = v
		}
	}
	setBool := func(flagName string, dst *bool, v bool) {
		if v && !explicit[flagName] {
			*dst = v
		}
	}

	setString("parent1", &opts.Parent1, c.Parent1)
	setString("parent2", &opts.Parent2, c.Parent2)
	setInt("offspring", &opts.Offspring, c.Offspring)
	setInt("workers", &opts.Workers, c.Workers)
	setInt("replicates", &opts.Replicates, c.Replicates)
	setString("chart", &opts.Chart, c.Chart)
	setString("table", &opts.Table, c.Table)
	setBool("bars", &opts.Bars, c.Bars)
	setInt("bar-width", &opts.BarWidth, c.BarWidth)
	setBool("stats", &opts.Stats, c.Stats)
	setString("batch", &opts.Batch, c.Batch)

	if c.Seed != nil && !explicit["seed"] {
		opts.Seed = *c.Seed
		opts.SeedSet = true
	}
}

// Via https://stackoverflow.com/a/17617721/199475
func expandHomeDir(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}

	if path == "~" {
		return usr.HomeDir
	} else if strings.HasPrefix(path, "~/") {
		return filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
