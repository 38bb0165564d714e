package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/green-vs-red/input"
	"github.com/sheikhrachel/green-vs-red/model"
	"github.com/sheikhrachel/green-vs-red/utils"
)

func strictScenario(t *testing.T, lines ...string) *input.Scenario {
	t.Helper()
	s, err := input.NewStrictReader(strings.NewReader(strings.Join(lines, "\n"))).ReadScenario()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTrackTargetCell(t *testing.T) {
	for _, tc := range []struct {
		name  string
		lines []string
		want  int64
	}{
		{"single green cell dies", []string{"1, 1", "1", "0, 0, 1"}, 1},
		{"all red stays red", []string{"3, 3", "000", "000", "000", "1, 1, 5"}, 0},
		{"oscillating line", []string{"3, 3", "000", "111", "000", "1, 0, 10"}, 5},
		{"four by four", []string{"4, 4", "1001", "1111", "0100", "1010", "2, 2, 15"}, 14},
		{"stable block", []string{"3, 3", "110", "100", "000", "1, 1, 4"}, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := strictScenario(t, tc.lines...)
			for _, pool := range []*model.GridPool{nil, model.NewGridPool()} {
				got, err := trackTargetCell(context.Background(), s.Grid, s.Tracking.X, s.Tracking.Y, s.Tracking.Target, pool, nil)
				if err != nil {
					t.Fatal(err)
				}
				if got != tc.want {
					t.Fatalf("got %d, want %d (pooled=%v)", got, tc.want, pool != nil)
				}
			}
		})
	}
}

func TestTrackTargetCellRejectsOutOfBounds(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	target, _ := model.NewTargetGeneration(3)
	if _, err := trackTargetCell(context.Background(), g, 2, 0, target, nil, nil); !errors.Is(err, model.ErrOutOfBounds) {
		t.Fatalf("got err %v, want ErrOutOfBounds", err)
	}
}

func TestTrackTargetCellRecordsStats(t *testing.T) {
	s := strictScenario(t, "3, 3", "000", "111", "000", "1, 0, 10")
	stats := utils.NewStats()
	count, err := trackTargetCell(context.Background(), s.Grid, s.Tracking.X, s.Tracking.Y, s.Tracking.Target, nil, stats)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalGenerations != 10 {
		t.Fatalf("got %d generations, want 10", stats.TotalGenerations)
	}
	if stats.GreenObservations != count {
		t.Fatalf("stats saw %d green observations, count is %d", stats.GreenObservations, count)
	}
}

func TestRunInteractive(t *testing.T) {
	in := strings.Join([]string{"3, 3", "000", "111", "000", "1, 0, 0", "1, 0, 10"}, "\n")
	var out bytes.Buffer
	if err := runInteractive(context.Background(), strings.NewReader(in), &out, io.Discard, utils.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if last := lines[len(lines)-1]; last != "5" {
		t.Fatalf("got final line %q, want 5", last)
	}
	if len(lines) != 2 {
		t.Fatalf("expected one rejection message before the result, got:\n%s", out.String())
	}
}

func writeScenario(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeScenario(t, dir, "a.txt", "3, 3", "000", "111", "000", "1, 0, 10"),
		writeScenario(t, dir, "b.txt", "4, 4", "1001", "1111", "0100", "1010", "2, 2, 15"),
		writeScenario(t, dir, "c.txt", "1, 1", "1", "0, 0, 1"),
	}

	config := utils.DefaultConfig()
	config.BatchWorkers = 2

	var out bytes.Buffer
	if err := runBatch(context.Background(), files, &out, io.Discard, config); err != nil {
		t.Fatal(err)
	}

	want := files[0] + ": 5\n" + files[1] + ": 14\n" + files[2] + ": 1\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunBatchFailsOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeScenario(t, dir, "ok.txt", "1, 1", "1", "0, 0, 1"),
		writeScenario(t, dir, "bad.txt", "3, 2", "000", "000", "0, 0, 1"),
	}

	var out bytes.Buffer
	err := runBatch(context.Background(), files, &out, io.Discard, utils.DefaultConfig())
	if !errors.Is(err, model.ErrIncompatibleShape) {
		t.Fatalf("got err %v, want ErrIncompatibleShape", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no results on failure, got %q", out.String())
	}
}

func TestTrackTargetCellStopsOnCancel(t *testing.T) {
	s := strictScenario(t, "3, 3", "000", "111", "000", "1, 0, 1000000000000")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	count, err := trackTargetCell(ctx, s.Grid, s.Tracking.X, s.Tracking.Y, s.Tracking.Target, model.NewGridPool(), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got err %v, want context.DeadlineExceeded", err)
	}
	if count <= 0 {
		t.Fatalf("got count %d, expected the simulation to have started", count)
	}
}

func TestRunInteractiveStopsWhileWaitingForInput(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runInteractive(ctx, in, io.Discard, io.Discard, utils.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got err %v, want context.Canceled", err)
	}
}

func TestRunBatchStopsMidSimulation(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeScenario(t, dir, "long.txt", "3, 3", "000", "111", "000", "1, 0, 1000000000000"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := runBatch(ctx, files, &out, io.Discard, utils.DefaultConfig())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got err %v, want context.DeadlineExceeded", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no results after cancellation, got %q", out.String())
	}
}
