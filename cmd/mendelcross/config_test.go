package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSONConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.json")
	body := `{"parent1": "AA", "parent2": "aa", "offspring": 500, "seed": 0, "bars": true, "bar_width": 20, "chart": "out.svg"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseJSONConfigFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Parent1 != "AA" || cfg.Parent2 != "aa" || cfg.Offspring != 500 || cfg.Seed == nil || *cfg.Seed != 0 || !cfg.Bars || cfg.BarWidth != 20 || cfg.Chart != "out.svg" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseJSONConfigSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"parent1": `), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJSONConfigFromPath(path); err == nil {
		t.Fatal("expected an error for a truncated config")
	}
}

func TestConfigApplyRespectsExplicitFlags(t *testing.T) {
	seed := int64(0)
	cfg := JSONConfig{Parent1: "AA", Parent2: "aa", Offspring: 500, Seed: &seed, Stats: true}

	opts := defaultOptions()
	opts.SeedSet = false
	opts.Parent2 = "Bb"
	cfg.apply(&opts, map[string]bool{"parent2": true})

	if opts.Parent1 != "AA" || opts.Parent2 != "Bb" || opts.Offspring != 500 || !opts.Stats {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !opts.SeedSet || opts.Seed != 0 {
		t.Fatalf("explicit zero seed from config not honored: %+v", opts)
	}
}

func TestExpandHomeDir(t *testing.T) {
	if got := expandHomeDir("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path changed to %s", got)
	}
	if got := expandHomeDir("~/x.png"); got == "~/x.png" {
		t.Skip("no home directory available")
	} else if filepath.Base(got) != "x.png" || !filepath.IsAbs(got) {
		t.Fatalf("got %s", got)
	}
}
