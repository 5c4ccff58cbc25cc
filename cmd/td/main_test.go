package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "td" {
		t.Fatalf("expected root command name td, got %q", rootCmd.Use)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"add":    false,
		"list":   false,
		"done":   false,
		"delete": false,
		"edit":   false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
