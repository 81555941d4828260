package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lawnchairsociety/amazeing/internal/output"
)

func parse(t *testing.T, content string) *output.Artifact {
	t.Helper()
	a, err := output.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestReport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		strict  bool
		code    int
		want    []string
	}{
		{
			name:    "valid",
			content: "d17\nd6f\n\n0,0\n2,0\nEE\n",
			code:    0,
			want:    []string{"Validation PASSED: 3x2 maze", "Topology: perfect", "Path: OK, 2 steps"},
		},
		{
			name:    "incoherent",
			content: "f17\nd6f\n\n0,0\n2,0\nEE\n",
			code:    1,
			want:    []string{"Incoherent E/W wall at (0,0)<->(1,0)", "Validation FAILED: 1 wall coherence error(s)."},
		},
		{
			name:    "wrong path",
			content: "d17\nd6f\n\n0,0\n2,0\nES\n",
			code:    1,
			want:    []string{"Path: FAILED"},
		},
		{
			name:    "ring",
			content: "93\nc6\n\n0,0\n1,1\nES\n",
			code:    0,
			want:    []string{"Cycles: 1", "Topology: not perfect"},
		},
		{
			name:    "ring strict",
			content: "93\nc6\n\n0,0\n1,1\nES\n",
			strict:  true,
			code:    1,
		},
		{
			name:    "open border",
			content: "c3\n\n0,0\n1,0\nE\n",
			code:    1,
			want:    []string{"Border openings: 2", "Border: FAILED"},
		},
		{
			name:    "unreachable",
			content: "d7\nd7\n\n0,0\n1,1\n\n",
			code:    0,
			want:    []string{"Components: 2", "Path: none"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := report(&out, parse(t, tt.content), false, tt.strict)
			if code != tt.code {
				t.Errorf("report() = %d, want %d\n%s", code, tt.code, out.String())
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestReportMap(t *testing.T) {
	var out bytes.Buffer
	report(&out, parse(t, "d17\nd6f\n\n0,0\n2,0\nEE\n"), true, false)
	if !strings.Contains(out.String(), "#E...X#") {
		t.Errorf("map missing solved corridor:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "#@#") {
		t.Errorf("map missing sealed cell:\n%s", out.String())
	}
}
