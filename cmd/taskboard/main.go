package main

import (
	"fmt"
	"os"

	"github.com/templui/taskboard/cmd/taskboard/cmd"
)

func main() {
	ran, err := cmd.RootCmd().ExecuteC()
	if err != nil {
		if hint := cmd.Hint(ran, err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}
