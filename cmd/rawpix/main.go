// Command rawpix applies pixel transforms to image files.
//
// Usage:
//
//	rawpix mirror tree.png mirror.png
//	rawpix merge a.png b.png merged.png
//	rawpix apply --ops mirror,grey,compress tree.png small.jpg
//	rawpix identify tree.png
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		exitCodeError := &ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(ExitCodeInvalidArguments)
	}
}
