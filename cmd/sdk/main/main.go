package main

import (
	"os"

	sdk "github.com/arthur-debert/sdkman/cmd/sdk"
)

func main() {
	rootCmd := sdk.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		sdk.PrintError(sdk.StderrPrinter(), err)
		os.Exit(sdk.ExitCode(err))
	}
}
