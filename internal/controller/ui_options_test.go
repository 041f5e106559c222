package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := applyStartOptions(nil)
	if cfg.mode != ModeRun {
		t.Fatalf("default mode = %v, want %v", cfg.mode, ModeRun)
	}

	WithBrowseMode()(&cfg)
	if cfg.mode != ModeBrowse {
		t.Fatalf("WithBrowseMode() mode = %v, want %v", cfg.mode, ModeBrowse)
	}

	WithRunMode()(&cfg)
	if cfg.mode != ModeRun {
		t.Fatalf("WithRunMode() mode = %v, want %v", cfg.mode, ModeRun)
	}
}
