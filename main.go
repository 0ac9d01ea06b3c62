package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hexfield/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if len(os.Args) == 1 {
			// Started from a desktop launcher: there is no terminal to read stderr.
			if dErr := zenity.Error(err.Error(), zenity.Title("hexfield")); dErr != nil && !errors.Is(dErr, zenity.ErrCanceled) {
				fmt.Fprintln(os.Stderr, "Error:", dErr)
			}
		}
		os.Exit(1)
	}
}
