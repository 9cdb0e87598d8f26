package target

import (
	"errors"
	"testing"

	"github.com/korreman/sway-overfocus/internal/geometry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Target
		hasError bool
	}{
		{"split-rs", Target{KindSplit, geometry.DirRight, EdgeStop}, false},
		{"split-lt", Target{KindSplit, geometry.DirLeft, EdgeTraverse}, false},
		{"split-li", Target{KindSplit, geometry.DirLeft, EdgeInactive}, false},
		{"group-rw", Target{KindGroup, geometry.DirRight, EdgeWrap}, false},
		{"group-us", Target{KindGroup, geometry.DirUp, EdgeStop}, false},
		{"float-ds", Target{KindFloat, geometry.DirDown, EdgeStop}, false},
		{"workspace-dw", Target{KindWorkspace, geometry.DirDown, EdgeWrap}, false},
		{"output-ri", Target{KindOutput, geometry.DirRight, EdgeInactive}, false},
		{"output-ut", Target{KindOutput, geometry.DirUp, EdgeTraverse}, false},
		{"", Target{}, true},
		{"split", Target{}, true},
		{"split-", Target{}, true},
		{"split-r", Target{}, true},
		{"split-rss", Target{}, true},
		{"window-rs", Target{}, true},
		{"split-xs", Target{}, true},
		{"split-rx", Target{}, true},
		{"SPLIT-rs", Target{}, true},
		{"split-rs ", Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.hasError {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				var bad *BadTargetError
				if !errors.As(err, &bad) {
					t.Errorf("Parse(%q) error is %T, want *BadTargetError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	tokens := []string{"split-rs", "group-lw", "float-ui", "workspace-dt", "output-rw"}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			tg, err := Parse(tok)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tok, err)
			}
			if got := tg.String(); got != tok {
				t.Errorf("String() = %q, want %q", got, tok)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	targets, err := ParseAll([]string{"group-rs", "float-rs"})
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("ParseAll returned %d targets, want 2", len(targets))
	}
	if targets[0].Kind != KindGroup || targets[1].Kind != KindFloat {
		t.Errorf("ParseAll order not preserved: %v", targets)
	}
}

func TestParseAllEmpty(t *testing.T) {
	if _, err := ParseAll(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("ParseAll(nil) = %v, want ErrEmpty", err)
	}
}

func TestParseAllBadToken(t *testing.T) {
	_, err := ParseAll([]string{"split-rs", "bogus"})
	var bad *BadTargetError
	if !errors.As(err, &bad) {
		t.Fatalf("ParseAll error is %T, want *BadTargetError", err)
	}
	if bad.Token != "bogus" {
		t.Errorf("BadTargetError.Token = %q, want %q", bad.Token, "bogus")
	}
}
