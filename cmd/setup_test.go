package cmd

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/theirongolddev/fixgrocery/internal/config"
)

func TestPromptSetup(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantGoal  string
		wantTheme string
	}{
		{"picks both", "1\n4\n", "sewing-machine", "terminal"},
		{"blank keeps defaults", "\n\n", "roof", "flexoki-dark"},
		{"out of range keeps defaults", "9\nx\n", "roof", "flexoki-dark"},
		{"eof keeps defaults", "", "roof", "flexoki-dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tt.input))
			cfg := promptSetup(in, io.Discard, config.DefaultConfig())
			if cfg.General.Goal != tt.wantGoal {
				t.Errorf("goal = %q, want %q", cfg.General.Goal, tt.wantGoal)
			}
			if cfg.Appearance.Theme != tt.wantTheme {
				t.Errorf("theme = %q, want %q", cfg.Appearance.Theme, tt.wantTheme)
			}
		})
	}
}
