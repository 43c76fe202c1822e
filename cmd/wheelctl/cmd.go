package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wheelspin-backend/internal/features/wheel/editor"
	"wheelspin-backend/internal/features/wheel/mapper"
	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/models/dto"
	"wheelspin-backend/internal/features/wheel/presentation"
	"wheelspin-backend/internal/features/wheel/run"
	"wheelspin-backend/internal/features/wheel/selector"
)

var errHelp = errors.New("help provided")

type wheelAPI interface {
	run.Drawer
	GetWheel(ctx context.Context, wheelID string) (models.Wheel, error)
	CreateWheel(ctx context.Context, req *dto.WheelCreateRequest) (models.Wheel, error)
	UpdateWheel(ctx context.Context, wheelID string, req *dto.WheelUpdateRequest) (models.Wheel, error)
}

type commandLine struct {
	api         wheelAPI
	out         io.Writer
	revealDelay time.Duration
	extraTurns  int
	logger      zerolog.Logger
}

// entryFlags collects repeated -entry "Label:weight" values
type entryFlags []string

func (e *entryFlags) String() string { return strings.Join(*e, ",") }

func (e *entryFlags) Set(v string) error {
	*e = append(*e, v)
	return nil
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  create -name NAME -winners N [-remove] -entry LABEL:WEIGHT ... - save a new wheel")
	fmt.Fprintln(cli.out, "  show -id ID                                                   - print entries and wedges")
	fmt.Fprintln(cli.out, "  edit -id ID -index I [-label L] [-weight W] [-delete]         - change one entry")
	fmt.Fprintln(cli.out, "  run -id ID [-spins N] [-rounds R] [-delay D]                  - draw winners")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "create":
		fs := flag.NewFlagSet("create", flag.ContinueOnError)
		fs.SetOutput(cli.out)
		name := fs.String("name", "", "Wheel name")
		winners := fs.Int("winners", 1, "How many winners a run draws")
		remove := fs.Bool("remove", false, "Exclude a winner from the following spins")
		var entries entryFlags
		fs.Var(&entries, "entry", "Entry as LABEL:WEIGHT, repeatable")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *name == "" || len(entries) == 0 {
			fs.Usage()
			return errHelp
		}
		return cli.create(ctx, *name, *winners, *remove, entries)

	case "show":
		fs := flag.NewFlagSet("show", flag.ContinueOnError)
		fs.SetOutput(cli.out)
		id := fs.String("id", "", "Wheel ID")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		return cli.show(ctx, *id)

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ContinueOnError)
		fs.SetOutput(cli.out)
		id := fs.String("id", "", "Wheel ID")
		index := fs.Int("index", -1, "Entry index as printed by show")
		label := fs.String("label", "", "New label")
		weight := fs.String("weight", "", "New weight, a positive integer")
		del := fs.Bool("delete", false, "Remove the entry")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" || *index < 0 || (*label == "" && *weight == "" && !*del) {
			fs.Usage()
			return errHelp
		}
		return cli.edit(ctx, *id, *index, *label, *weight, *del)

	case "run":
		fs := flag.NewFlagSet("run", flag.ContinueOnError)
		fs.SetOutput(cli.out)
		id := fs.String("id", "", "Wheel ID")
		spins := fs.Int("spins", 0, "Spins per round, defaults to winners_count")
		rounds := fs.Int("rounds", 1, "Rounds, the run is reset between rounds")
		delay := fs.Duration("delay", cli.revealDelay, "Reveal delay")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *id == "" || *rounds < 1 {
			fs.Usage()
			return errHelp
		}
		return cli.runWheel(ctx, *id, *spins, *rounds, *delay)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) create(ctx context.Context, name string, winners int, remove bool, rawEntries []string) error {
	store := editor.New()
	for _, raw := range rawEntries {
		label, weight := raw, ""
		if i := strings.LastIndex(raw, ":"); i >= 0 {
			label, weight = raw[:i], raw[i+1:]
		}

		idx := store.Add()
		if err := store.Update(idx, editor.FieldLabel, label); err != nil {
			return err
		}
		if weight == "" {
			continue
		}
		if err := store.Update(idx, editor.FieldWeight, weight); err != nil {
			return fmt.Errorf("entry %q: %w", raw, err)
		}
	}

	wheel, err := cli.api.CreateWheel(ctx, &dto.WheelCreateRequest{
		Name:               name,
		WinnersCount:       winners,
		RemoveWinnerOnSpin: remove,
		Entries:            mapper.ToEntryRequests(store.Entries()),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "created wheel %s (%d entries, total weight %d)\n", wheel.ID, store.Count(), store.TotalWeight())
	return nil
}

func (cli *commandLine) show(ctx context.Context, wheelID string) error {
	wheel, err := cli.api.GetWheel(ctx, wheelID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "%s  winners=%d remove_winner_on_spin=%t\n", wheel.Name, wheel.WinnersCount, wheel.RemoveWinnerOnSpin)
	slices := presentation.Slices(wheel.Entries)
	for i, e := range wheel.Entries {
		wedge := ""
		for _, s := range slices {
			if s.EntryID == e.ID {
				wedge = fmt.Sprintf("%6.1f°-%6.1f°", s.Start, s.End)
				break
			}
		}
		fmt.Fprintf(cli.out, "%3d  %-20s weight=%-4d %s\n", i, e.Label, e.Weight, wedge)
	}
	return nil
}

func (cli *commandLine) edit(ctx context.Context, wheelID string, index int, label, weight string, del bool) error {
	wheel, err := cli.api.GetWheel(ctx, wheelID)
	if err != nil {
		return err
	}

	store := editor.New(wheel.Entries...)
	switch {
	case del:
		err = store.Remove(index)
	default:
		if label != "" {
			err = store.Update(index, editor.FieldLabel, label)
		}
		if err == nil && weight != "" {
			err = store.Update(index, editor.FieldWeight, weight)
		}
	}
	if err != nil {
		return err
	}

	entries := mapper.ToEntryRequests(store.Entries())
	if _, err := cli.api.UpdateWheel(ctx, wheelID, &dto.WheelUpdateRequest{Entries: &entries}); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "updated wheel %s (%d entries, total weight %d)\n", wheelID, store.Count(), store.TotalWeight())
	return nil
}

func (cli *commandLine) runWheel(ctx context.Context, wheelID string, spins, rounds int, delay time.Duration) error {
	wheel, err := cli.api.GetWheel(ctx, wheelID)
	if err != nil {
		return err
	}
	if spins <= 0 {
		spins = wheel.WinnersCount
	}

	ctrl := run.NewController(cli.api,
		run.WithRevealDelay(delay),
		run.WithRotator(presentation.NewRotator(cli.extraTurns)),
		run.WithLogger(cli.logger),
		run.WithDrawnHook(func(res run.SpinResult) {
			fmt.Fprintf(cli.out, "  spinning to %.1f°...\n", res.Rotation)
		}),
	)
	ctrl.Select(wheel)

	for round := 1; round <= rounds; round++ {
		if round > 1 {
			ctrl.Reset()
		}
		fmt.Fprintf(cli.out, "round %d\n", round)

	spinLoop:
		for i := 0; i < spins; i++ {
			res, err := ctrl.Spin(ctx)
			switch {
			case errors.Is(err, selector.ErrNoEligibleCandidates):
				fmt.Fprintln(cli.out, "  no more eligible entries")
				break spinLoop
			case err != nil:
				return err
			}

			switch res.Outcome {
			case run.OutcomeWinner:
				fmt.Fprintf(cli.out, "  winner: %s\n", res.Winner.Label)
			case run.OutcomeExhausted:
				fmt.Fprintln(cli.out, "  all winners drawn")
				break spinLoop
			}
		}

		snap := ctrl.Snapshot()
		labels := make([]string, 0, len(snap.Winners))
		for _, w := range snap.Winners {
			labels = append(labels, w.Label)
		}
		fmt.Fprintf(cli.out, "winners (%s): %s\n", snap.State, strings.Join(labels, ", "))
	}
	return nil
}
