// Command lvkit exercises the lvkit library from the shell: seeded dice
// rolls, raw draws, shuffles, picks, revolving tails and Cartesian products.
//
//	lvkit [-seed N] [-warmup N] [-color auto|always|never] [-v] <command> [args]
//
// Commands:
//
//	roll MIN MAX [N]     N integers in [MIN, MAX] (default N=1)
//	draw [N]             N floats in [0, 1)
//	shuffle ITEMS...     ITEMS in random order
//	pick ITEMS...        one of ITEMS
//	tail CAP ITEMS...    the last CAP ITEMS, via a revolving queue
//	product LIST...      Cartesian product of comma-separated LISTs
//
// Without -seed the generator is seeded from the clock; the chosen seed is
// logged at debug level (-v) so a run can be repeated.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
