// Package main is the entry point for the scriptclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/scriptclean/cmd/scriptclean/commands"
	"github.com/jmylchreest/scriptclean/internal/logger"
)

func main() {
	if err := commands.Execute(); err != nil {
		code := commands.ExitCode(err)
		logger.Debug("command failed", "error", err, "exit_code", code)
		os.Exit(code)
	}
}
