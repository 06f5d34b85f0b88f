// Command coinsim estimates by Monte-Carlo simulation how many people in a
// large population flip a fair coin heads every time in a row.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/coinsim/internal/app"
	apperrors "github.com/agbru/coinsim/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
