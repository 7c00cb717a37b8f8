package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lixenwraith/bee-sim/render"
)

func TestRunModes(t *testing.T) {
	for _, mode := range []string{modeSequential, modeConcurrent} {
		t.Run(mode, func(t *testing.T) {
			var out bytes.Buffer
			opts := options{mode: mode, ticks: 4, interval: 0, seed: 42}
			if err := run(context.Background(), opts, &out); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			text := out.String()
			for _, want := range []string{"Time 0 sec:", "Time 3 sec:", "  WorkerBee: (", "  DroneBee: ("} {
				if !strings.Contains(text, want) {
					t.Errorf("Expected output to contain %q", want)
				}
			}
			if got := strings.Count(text, render.Separator+"\n"); got != 4 {
				t.Errorf("Expected 4 blocks, got %d", got)
			}
		})
	}
}

func TestRunSequentialDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	opts := options{mode: modeSequential, ticks: 30, seed: 7}
	if err := run(context.Background(), opts, &a); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := run(context.Background(), opts, &b); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if a.String() != b.String() {
		t.Error("Expected identical output for identical seeds")
	}
	if !strings.Contains(a.String(), "Time 14 sec:\n  WorkerBee: (0, 0)\n") {
		t.Error("Expected worker to reach the corner on tick 14")
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"Unknown mode", options{mode: "warp", ticks: 1}},
		{"Negative ticks", options{mode: modeSequential, ticks: -1}},
		{"Negative interval", options{mode: modeSequential, ticks: 1, interval: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.opts, &bytes.Buffer{}); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
