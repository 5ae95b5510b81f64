package command

import "testing"

func TestSuggestFullMenu(t *testing.T) {
	got := Suggest("/")
	if len(got) != len(Registry) {
		t.Fatalf("expected %d suggestions for bare slash, got %d", len(Registry), len(got))
	}
	// Registry order must be preserved.
	for i, s := range got {
		if s.Command != Registry[i].Name {
			t.Errorf("suggestion %d = %q, want %q", i, s.Command, Registry[i].Name)
		}
		if s.Display != "/"+Registry[i].Name {
			t.Errorf("display %d = %q, want %q", i, s.Display, "/"+Registry[i].Name)
		}
	}
}

func TestSuggestPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"ca prefix", "/ca", []string{"calc", "calculate"}},
		{"case folded", "/CA", []string{"calc", "calculate"}},
		{"product prefix", "/product", []string{"products", "product"}},
		{"single match", "/he", []string{"help"}},
		{"no match", "/zzz", nil},
		{"not a command", "ca", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Suggest(%q) returned %d entries, want %d", tt.input, len(got), len(tt.want))
			}
			for i, s := range got {
				if s.Command != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, s.Command, tt.want[i])
				}
			}
		})
	}
}

func TestSuggestSubsetOfRegistry(t *testing.T) {
	for _, s := range Suggest("/o") {
		if Lookup(s.Command) == nil {
			t.Errorf("suggestion %q not in registry", s.Command)
		}
	}
}
