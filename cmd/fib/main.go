// Command fib prints terms of generalized Fibonacci sequences and runs the
// pair-finding utility.
//
//	fib calc 10 100            # cached, standard sequence
//	fib calc --x 3 --y 4 5 20  # custom starting pair
//	fib recursive --store memdb 90
//	fib pairs --target 10 2 8 1 9
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

func main() {
	a := newApp()
	err := newRootCmd(a).ExecuteContext(context.Background())
	if terr := a.teardown(); terr != nil {
		fmt.Fprintln(os.Stderr, "teardown:", terr)
		err = multierr.Append(err, terr)
	}
	if err != nil {
		os.Exit(1)
	}
}
