// Command weekenddays prints the number of Saturdays and Sundays between two dates,
// both dates included.
//
// Usage:
//
//	weekenddays [-v] <start_date> <end_date>
//
// Dates are given as DD/MM/YYYY or YYYY-MM-DD. The dates may be given in either order.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"

	"github.com/ngrash/weekenddays/calendar"
	"github.com/ngrash/weekenddays/weekend"
)

func main() {
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	run(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr)
}

// run prints the weekend day count for args to stdout, or the usage message
// if args are not exactly two valid dates, optionally preceded by flags.
// It never fails. With -v, diagnostics are logged to stderr.
func run(ctx context.Context, prog string, args []string, stdout, stderr io.Writer) {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "Log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		ctxlog.Logger(ctx).Debug("invalid flags", "error", err)
		usage(stdout, prog)
		return
	}
	if *verbose {
		ctx = ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	logger := ctxlog.Logger(ctx)
	args = fs.Args()
	if len(args) != 2 {
		logger.Debug("wrong number of arguments", "want", 2, "got", len(args))
		usage(stdout, prog)
		return
	}

	dates, err := parseArgs(args)
	if err != nil {
		logger.Debug("invalid arguments", "error", err)
		usage(stdout, prog)
		return
	}

	s := weekend.Summarize(dates[0], dates[1])
	if s.Swapped {
		logger.Debug("start date is not before end date, swapping", "start", dates[0], "end", dates[1])
	}
	logger.Debug("counted weekend days", "start", s.Start, "end", s.End, "days", s.Days, "weekend_days", s.WeekendDays)
	fmt.Fprintln(stdout, s)
}

func parseArgs(args []string) ([2]calendar.Date, error) {
	var (
		dates [2]calendar.Date
		errs  errors.M
	)
	for i, arg := range args {
		d, err := calendar.Validate(arg)
		if err != nil {
			errs.Append(fmt.Errorf("argument %d: %w", i+1, err))
			continue
		}
		dates[i] = d
	}
	return dates, errs.Err()
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s <start_date> <end_date>\n", prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintf(w, "  %s 31/12/2023 05/01/2024\n", prog)
	fmt.Fprintln(w, "Ensure the dates are in the correct format (DD/MM/YYYY or YYYY-MM-DD).")
}
