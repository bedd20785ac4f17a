package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvkit/array"
	"github.com/katalvlaran/lvkit/colors"
	"github.com/katalvlaran/lvkit/queue"
	"github.com/katalvlaran/lvkit/random"
)

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usagef("%s: %q is not an integer", name, s)
	}
	return n, nil
}

// count parses an optional trailing N (default 1, must be positive).
func count(args []string, at int) (int, error) {
	if len(args) <= at {
		return 1, nil
	}
	n, err := atoi("N", args[at])
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, usagef("N must be positive, got %d", n)
	}
	return n, nil
}

func (a *app) println(c colors.Color, s string) {
	fmt.Fprintln(a.out, a.paint.Paint(c, s))
}

func cmdRoll(a *app, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usagef("roll MIN MAX [N]")
	}
	lo, err := atoi("MIN", args[0])
	if err != nil {
		return err
	}
	hi, err := atoi("MAX", args[1])
	if err != nil {
		return err
	}
	n, err := count(args, 2)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		v, err := random.Range(lo, hi, a.gen.Draw())
		if err != nil {
			return err
		}
		a.println(colors.Cyan, strconv.Itoa(v))
	}
	return nil
}

func cmdDraw(a *app, args []string) error {
	if len(args) > 1 {
		return usagef("draw [N]")
	}
	n, err := count(args, 0)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		a.println(colors.Cyan, strconv.FormatFloat(a.gen.Float64(), 'f', -1, 64))
	}
	return nil
}

func cmdShuffle(a *app, args []string) error {
	if len(args) == 0 {
		return usagef("shuffle ITEMS...")
	}
	out, err := array.Shuffle(args, a.gen.Draw())
	if err != nil {
		return err
	}
	a.println(colors.Green, strings.Join(out, " "))
	return nil
}

func cmdPick(a *app, args []string) error {
	if len(args) == 0 {
		return usagef("pick ITEMS...")
	}
	v, err := array.Pick(args, a.gen.Draw())
	if err != nil {
		return err
	}
	a.println(colors.Green, v)
	return nil
}

func cmdTail(a *app, args []string) error {
	if len(args) < 1 {
		return usagef("tail CAP ITEMS...")
	}
	capacity, err := atoi("CAP", args[0])
	if err != nil {
		return err
	}
	q, err := queue.New[string](capacity, nil)
	if err != nil {
		return usagef("%v", err)
	}
	for _, item := range args[1:] {
		q.Push(item)
	}
	a.log.WithField("evicted", max(0, len(args)-1-q.Len())).Debug("tail")
	a.println(colors.Yellow, strings.Join(q.Contents(), " "))
	return nil
}

func cmdProduct(a *app, args []string) error {
	if len(args) == 0 {
		return usagef("product LIST...")
	}
	lists := make([][]string, len(args))
	for i, arg := range args {
		lists[i] = strings.Split(arg, ",")
	}
	for _, tuple := range array.Product(lists[0], lists[1:]...) {
		a.println(colors.Magenta, strings.Join(tuple, ","))
	}
	return nil
}
