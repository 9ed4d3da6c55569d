package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"TargetPath":    "target_path",
		"DetectRunning": "detect_running",
		"Format":        "format",
	}
	for in, want := range tests {
		assert.Equal(t, want, CamelToSnake(in))
	}
}

func TestPrintStructKeyVal(t *testing.T) {
	var buf bytes.Buffer
	PrintStructKeyVal(&buf, struct {
		TargetPath string
		Running    bool
		Pids       []int32
		Count      int
	}{"/Applications", true, []int32{4, 2}, 7})

	assert.Equal(t, strings.Join([]string{
		"  - target_path: /Applications",
		"  - running: true",
		"  - pids:",
		"    - 4",
		"    - 2",
		"  - count: 7",
		"",
	}, "\n"), buf.String())
}

func TestShowTable(t *testing.T) {
	var buf bytes.Buffer
	ShowTable(&buf, []string{"Name", "Path"}, [][]string{
		{"Safari", "/Applications/Safari.app"},
	})

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "/Applications/Safari.app")
	assert.True(t, strings.HasPrefix(out, "\n"))
}

func TestConfirmOperation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmOperation(strings.NewReader(tt.input), &out, "Delete?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Delete? [y/N]: ", out.String())
	}
}

func TestNewProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 2, "Saving")
	assert.NoError(t, bar.Add(1))
	assert.NoError(t, bar.Add(1))
	assert.Contains(t, buf.String(), "Saving")
}
