package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cloudeng.io/logging/ctxlog"
	"github.com/google/go-cmp/cmp"
)

const wantUsage = `Usage: weekenddays <start_date> <end_date>

Example:
  weekenddays 31/12/2023 05/01/2024
Ensure the dates are in the correct format (DD/MM/YYYY or YYYY-MM-DD).
`

func TestRun(t *testing.T) {
	const line = "The period between 2023-12-31 and 2024-01-05 includes 1 weekend days.\n"
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"in order", []string{"31/12/2023", "05/01/2024"}, line},
		{"swapped", []string{"05/01/2024", "31/12/2023"}, line},
		{"mixed formats", []string{"2024-01-05", "31/12/2023"}, line},
		{"same day", []string{"2024-01-06", "06/01/2024"}, "The period between 2024-01-06 and 2024-01-06 includes 1 weekend days.\n"},
		{"leap year", []string{"2024-02-24", "2024-03-02"}, "The period between 2024-02-24 and 2024-03-02 includes 3 weekend days.\n"},
		{"no arguments", nil, wantUsage},
		{"one argument", []string{"31/12/2023"}, wantUsage},
		{"three arguments", []string{"31/12/2023", "05/01/2024", "06/01/2024"}, wantUsage},
		{"bad format", []string{"not-a-date", "05/01/2024"}, wantUsage},
		{"non-leap February", []string{"31/12/2023", "29/02/2023"}, wantUsage},
		{"April 31", []string{"31/04/2024", "05/01/2024"}, wantUsage},
		{"month 13", []string{"13/13/2024", "05/01/2024"}, wantUsage},
		{"negative day", []string{"-1/02/2024", "05/01/2024"}, wantUsage},
		{"unknown flag", []string{"-x", "31/12/2023", "05/01/2024"}, wantUsage},
		{"help flag", []string{"-h"}, wantUsage},
		{"flag only", []string{"-v"}, wantUsage},
		{"verbose", []string{"-v", "31/12/2023", "05/01/2024"}, line},
		{"year zero", []string{"31/12/-1", "0000-01-03"}, "The period between -0001-12-31 and 0000-01-03 includes 2 weekend days.\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, logged bytes.Buffer
			run(context.Background(), "weekenddays", c.args, &out, &logged)
			if diff := cmp.Diff(c.want, out.String()); diff != "" {
				t.Errorf("run(%q) mismatch (-want +got):\n%s", c.args, diff)
			}
		})
	}
}

func TestRun_LogsRejectedArguments(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var out bytes.Buffer
	run(ctx, "weekenddays", []string{"2024-13-01", "31/04/2024"}, &out, io.Discard)

	if out.String() != wantUsage {
		t.Errorf("run printed %q, want usage", out.String())
	}
	for _, want := range []string{"invalid arguments", "argument 1", "invalid month 13", "argument 2", "invalid day 31"} {
		if !strings.Contains(logged.String(), want) {
			t.Errorf("log output does not contain %q:\n%s", want, logged.String())
		}
	}
}

func TestRun_LogsSwap(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var out bytes.Buffer
	run(ctx, "weekenddays", []string{"05/01/2024", "31/12/2023"}, &out, io.Discard)

	for _, want := range []string{"swapping", "weekend_days=1", "days=6", "start=2023-12-31"} {
		if !strings.Contains(logged.String(), want) {
			t.Errorf("log output does not contain %q:\n%s", want, logged.String())
		}
	}
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	var out, logged bytes.Buffer
	run(context.Background(), "weekenddays", []string{"-v", "2024-01-05", "2023-12-31"}, &out, &logged)

	for _, want := range []string{"swapping", "weekend_days=1"} {
		if !strings.Contains(logged.String(), want) {
			t.Errorf("stderr does not contain %q:\n%s", want, logged.String())
		}
	}
	if strings.Contains(out.String(), "swapping") {
		t.Errorf("diagnostics written to stdout: %q", out.String())
	}
}

func TestRun_InvalidFlagLogged(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var out bytes.Buffer
	run(ctx, "weekenddays", []string{"-1/02/2024", "05/01/2024"}, &out, io.Discard)

	if out.String() != wantUsage {
		t.Errorf("run printed %q, want usage", out.String())
	}
	if !strings.Contains(logged.String(), "invalid flags") {
		t.Errorf("log output does not contain %q:\n%s", "invalid flags", logged.String())
	}
}
