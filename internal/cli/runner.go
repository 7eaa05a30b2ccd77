package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
	"github.com/idilsaglam/todo/internal/store/seedstore"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Group  bool       // list grouped by pending/done
	Seed   model.List // nil means the built-in seed
	Logger *slog.Logger

	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Seed == nil {
		o.Seed = model.Seed()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

func (o Options) mount() *provider.Provider {
	return provider.New(o.Seed, provider.WithLogger(o.Logger))
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls":
		return doList(opt)

	case "ui":
		return doUI(opt)

	case "play":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: todo play <script>")
			return 2
		}
		return doPlay(a[0], opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls                 Print the starting list
  ui                 Edit the list interactively (a add, space toggle, d remove)
  play <script>      Apply a YAML/JSON script of create/toggle/remove steps

Flags:
  --group            Group plain output by pending/done
  --seed <file>      Start from a YAML/JSON list instead of the built-in one
  --theme <name>     classic, neon or mono
  --log <file>       Write logs to file
  --debug            Log every dispatched action

Nothing is saved: every run starts from the seed.

Examples:
  todo ls --group
  todo play steps.yaml
  todo --seed work.yaml ui
`)
}

// -------------- subcommand impls ----------------

func doList(opt Options) int {
	p := opt.mount()
	defer p.Close()
	fmt.Fprintln(opt.Stdout, ui.Summary(p.State(), opt.Group))
	return 0
}

func doPlay(path string, opt Options) int {
	steps, err := seedstore.LoadSteps(path)
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return 1
	}
	p := opt.mount()
	defer p.Close()

	dispatch, ids := p.Dispatch(), p.NextID()
	for _, s := range steps {
		dispatch(s.Action(ids))
	}
	fmt.Fprintln(opt.Stdout, ui.Summary(p.State(), opt.Group))
	ui.OK(opt.Stdout, fmt.Sprintf("played %d steps", len(steps)))
	return 0
}

func doUI(opt Options) int {
	p := opt.mount()
	defer p.Close()

	ctx := provider.WithProvider(context.Background(), p)
	if err := tui.Run(ctx); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	done, pending := p.State().Stats()
	ui.OK(opt.Stdout, fmt.Sprintf("%d done, %d pending (not saved)", done, pending))
	return 0
}
