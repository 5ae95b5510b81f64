package command

import (
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		cmd    string
		args   string
		want   string
		wantOK bool
	}{
		{"calc with expression", "calc", "5 + 3", "Calculate 5 + 3", true},
		{"calculate alias", "calculate", "10 * 2", "Calculate 10 * 2", true},
		{"calc without args", "calc", "", CalcPrompt, true},
		{"products with query", "products", "tumbler", "Show me tumbler", true},
		{"products without args", "products", "", "Show me all products", true},
		{"product alias", "product", "glass cup", "Show me glass cup", true},
		{"outlets with location", "outlets", "Petaling Jaya", "Find outlets in Petaling Jaya", true},
		{"outlets without args", "outlets", "", "Show me all outlets", true},
		{"locations alias", "locations", "KL", "Find outlets in KL", true},
		{"unknown command", "unknown", "x", "", false},
		{"reset not translated", "reset", "", "", false},
		{"clear not translated", "clear", "", "", false},
		{"case insensitive", "CALC", "1+1", "Calculate 1+1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.cmd, tt.args)
			if ok != tt.wantOK {
				t.Fatalf("Translate(%q, %q) ok = %v, want %v", tt.cmd, tt.args, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.cmd, tt.args, got, tt.want)
			}
		})
	}
}

func TestTranslateHelpIsLocal(t *testing.T) {
	got, ok := Translate("help", "")
	if !ok {
		t.Fatal("expected help to translate")
	}
	if got != HelpText() {
		t.Error("help should return the full help text")
	}
	if ActionFor("help") != ActionLocal {
		t.Error("help must be classified as a local action")
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		cmd  string
		want Action
	}{
		{"calc", ActionSend},
		{"calculate", ActionSend},
		{"products", ActionSend},
		{"product", ActionSend},
		{"outlets", ActionSend},
		{"outlet", ActionSend},
		{"locations", ActionSend},
		{"help", ActionLocal},
		{"reset", ActionClear},
		{"clear", ActionClear},
		{"bogus", ActionUnknown},
		{"RESET", ActionClear},
	}

	for _, tt := range tests {
		if got := ActionFor(tt.cmd); got != tt.want {
			t.Errorf("ActionFor(%q) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestHelpTextCoversRegistry(t *testing.T) {
	help := HelpText()
	for _, cmd := range Registry {
		if cmd.Description == "" {
			continue
		}
		line := "• /" + cmd.Name + " - "
		if !strings.Contains(help, line) {
			t.Errorf("help text missing line for /%s", cmd.Name)
		}
	}
}

func TestRegistryInvariants(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range Registry {
		if cmd.Name != strings.ToLower(cmd.Name) {
			t.Errorf("command %q is not lowercase", cmd.Name)
		}
		if seen[cmd.Name] {
			t.Errorf("duplicate command %q", cmd.Name)
		}
		seen[cmd.Name] = true
	}
}
