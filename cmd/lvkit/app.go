package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvkit/colors"
	"github.com/katalvlaran/lvkit/random"
	"github.com/katalvlaran/lvkit/timing"
)

// errUsage marks argument errors that exit with status 2.
var errUsage = errors.New("usage")

type app struct {
	out   io.Writer
	log   *logrus.Logger
	paint colors.Painter
	gen   *random.Generator
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"roll":    cmdRoll,
	"draw":    cmdDraw,
	"shuffle": cmdShuffle,
	"pick":    cmdPick,
	"tail":    cmdTail,
	"product": cmdProduct,
}

// run parses args, executes one command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "generator seed (absent = derive from the clock)")
	warmup := fs.Int("warmup", random.DefaultWarmup, "outputs discarded before the first draw")
	colorMode := fs.String("color", "auto", "colorize output: auto|always|never")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lvkit [flags] <%s> [args]\n", commandNames())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	mode, err := colors.ParseMode(*colorMode)
	if err != nil {
		log.WithError(err).Error("invalid -color")
		return 2
	}
	if *warmup < 0 {
		log.WithField("warmup", *warmup).Error("-warmup must be 0 or greater")
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		log.WithField("command", name).Error("unknown command")
		fs.Usage()
		return 2
	}

	s := *seed
	seeded := false
	fs.Visit(func(f *flag.Flag) { seeded = seeded || f.Name == "seed" })
	if !seeded {
		s = random.Seed()
	}
	a := &app{
		out:   stdout,
		log:   log,
		paint: colors.NewPainter(stdout, mode),
		gen:   random.New(s, random.WithWarmup(*warmup)),
	}
	log.WithFields(logrus.Fields{
		"seed":   s,
		"warmup": *warmup,
		"color":  a.paint.On(),
	}).Debug("generator ready")

	start := timing.Now()
	err = cmd(a, fs.Args()[1:])
	entry := log.WithFields(logrus.Fields{
		"command":    name,
		"elapsed_ms": timing.MS(start),
	})
	switch {
	case err == nil:
		entry.Debug("done")
		return 0
	case errors.Is(err, errUsage):
		entry.WithError(err).Error("bad arguments")
		return 2
	default:
		entry.WithError(err).Error("command failed")
		return 1
	}
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
