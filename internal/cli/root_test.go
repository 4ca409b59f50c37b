package cli

import (
	"bytes"
	"testing"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRoot()
	if cmd == nil || cmd.Use != "promptopt" {
		t.Fatalf("expected root command")
	}

	want := []string{"render", "advise", "schema", "serve", "presets", "init"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %s command", name)
		}
	}
}

func TestRootRunLaunchesTUI(t *testing.T) {
	origRun := runTUI
	called := false
	runTUI = func() error {
		called = true
		return nil
	}
	defer func() { runTUI = origRun }()

	cmd := NewRoot()
	cmd.SetArgs([]string{})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected TUI run")
	}
}
