// Command draftail-filter restricts raw content JSON to an editor
// configuration and reports what changed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit statuses.
const (
	exitOK      = 0
	exitError   = 1
	exitChanged = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit status. Errors
// other than a failed --check are reported on errOut.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errChanged):
		return exitChanged
	default:
		fmt.Fprintln(errOut, "draftail-filter:", err)
		return exitError
	}
}
