package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"render":     false,
		"play":       false,
		"topology":   false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	if c.Logger.GetLevel() != log.InfoLevel {
		t.Fatalf("initial level = %v, want info", c.Logger.GetLevel())
	}

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level after SetLogLevel = %v, want debug", c.Logger.GetLevel())
	}
}

func TestRootCommandVerboseFlag(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root command should define a persistent --verbose flag")
	}
}
