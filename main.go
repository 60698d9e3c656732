// main is the entry point for the podium CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/podium/cmd"
	"github.com/huangsam/podium/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		// Bad flags or missing referenced paths exit with status 2;
		// everything else (e.g. provisioning failures) exits with 1.
		if errors.Is(err, contract.ErrArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
