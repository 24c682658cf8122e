package extract

import (
	"testing"

	"llbc/internal/names"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
crate = "demo"
mode = "inline"
opaque_modules = ["ffi", "vendor::raw"]
`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Crate != "demo" {
		t.Errorf("crate = %q, want %q", cfg.Crate, "demo")
	}
	if cfg.Mode != ModeInline {
		t.Errorf("mode = %s, want inline", cfg.Mode)
	}

	tests := []struct {
		name names.Name
		want bool
	}{
		{names.New("demo", "ffi", "bind"), true},
		{names.New("demo", "vendor", "raw", "sys"), true},
		{names.New("demo", "vendor", "cooked"), false},
		{names.New("demo", "core", "item"), false},
		{names.New("other", "ffi", "bind"), false},
	}
	for _, tt := range tests {
		if got := cfg.IsOpaque(tt.name); got != tt.want {
			t.Errorf("IsOpaque(%s) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestParseConfigDefaultsToTopLevel(t *testing.T) {
	cfg, err := ParseConfig(`crate = "demo"`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Mode != ModeTopLevel {
		t.Errorf("mode = %s, want top-level", cfg.Mode)
	}
}

func TestParseConfigRejectsMissingCrate(t *testing.T) {
	if _, err := ParseConfig(`mode = "inline"`); err == nil {
		t.Fatal("ParseConfig accepted a config without a crate name")
	}
}

func TestParseConfigRejectsBadMode(t *testing.T) {
	if _, err := ParseConfig("crate = \"demo\"\nmode = \"sideways\"\n"); err == nil {
		t.Fatal("ParseConfig accepted an unknown mode")
	}
}
