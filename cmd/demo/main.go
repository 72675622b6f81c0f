// Command demo walks through add, conflicting add, list, cancel and list
// against a fresh in-memory store.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/uow"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"

	"github.com/spf13/cobra"
)

type demoOptions struct {
	first     string
	second    string
	room      int
	daysAhead int
	timezone  string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var opts demoOptions

	root := &cobra.Command{
		Use:   "demo",
		Short: "Walk through add, conflicting add, list and cancel on an in-memory store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&opts.first, "first", "Ayberk", "customer who books first")
	root.Flags().StringVar(&opts.second, "second", "Ali", "customer who tries the same slot")
	root.Flags().IntVar(&opts.room, "room", 101, "room number")
	root.Flags().IntVar(&opts.daysAhead, "days-ahead", 30, "booking date as days after today")
	root.Flags().StringVar(&opts.timezone, "timezone", "UTC", "zone that decides what today is")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log admission decisions")
	return root
}

func run(ctx context.Context, out io.Writer, opts demoOptions) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid --timezone %q: %w", opts.timezone, err)
	}

	unit := uow.NewMemoryUoW(repository.NewReservationRepository(logger))
	factory := reservation.NewFactory(clock.NewRealClock(), reservation.DefaultPolicy(), loc)
	cmds := commands.NewReservationCommands(unit, factory, logger)

	date := factory.Today().AddDays(opts.daysAhead)

	added, err := cmds.Add(ctx, commands.AddReservationParams{CustomerName: opts.first, Date: date, RoomNumber: &opts.room, GuestCount: patch.Ref(2)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Were reservations added successfully?", added.Accepted())

	conflict, err := cmds.Add(ctx, commands.AddReservationParams{CustomerName: opts.second, Date: date, RoomNumber: &opts.room, GuestCount: patch.Ref(3)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Were conflicting reservations added?", conflict.Accepted(), conflict.Reason)

	if err := printAll(ctx, out, unit, "Existing reservations:"); err != nil {
		return err
	}

	cancelled, err := cmds.Cancel(ctx, commands.CancelReservationParams{CustomerName: opts.first, Date: date, RoomNumber: &opts.room, GuestCount: patch.Ref(2)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Were reservations cancelled?", cancelled)

	return printAll(ctx, out, unit, "Last reservation list:")
}

func printAll(ctx context.Context, out io.Writer, unit shared.UnitOfWork, title string) error {
	var all reservation.List
	err := unit.WithinReadOnly(ctx, func(_ context.Context, reads shared.ReservationReader) error {
		all = reads.All()
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, title, len(all))
	for _, r := range all {
		fmt.Fprintln(out, r)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
