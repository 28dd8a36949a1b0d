package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/conneroisu/rfs/cmd"
	"github.com/conneroisu/rfs/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// scaffolding failures were already reported by the notifier
		var se *errors.ScaffoldError
		if !stderrors.As(err, &se) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
