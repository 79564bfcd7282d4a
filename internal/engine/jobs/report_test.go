package jobs

import (
	"context"
	"testing"
)

func TestToBulleted(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want string
	}{
		{"nil", nil, ""},
		{"empty", map[string]any{}, ""},
		{"single", map[string]any{"reputation": 9001}, "- reputation: 9001"},
		{
			"sorted keys",
			map[string]any{"zeta": "z", "alpha": 1, "mid": true},
			"- alpha: 1\n- mid: true\n- zeta: z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toBulleted(tt.in); got != tt.want {
				t.Errorf("toBulleted(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateReportEmptyResume(t *testing.T) {
	if _, err := CreateReport(context.Background(), "   "); err == nil {
		t.Fatal("CreateReport expected error for empty resume text")
	}
}

func TestRewriteResumeEmpty(t *testing.T) {
	if _, err := RewriteResume(context.Background(), ""); err == nil {
		t.Fatal("RewriteResume expected error for empty resume text")
	}
}
