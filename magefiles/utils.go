//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// the race detector needs cgo
var cmdEnv = map[string]string{"CGO_ENABLED": "1"}

// executeCmd runs command with args, streaming its output to stdout.
func executeCmd(command string, args ...string) error {
	fmt.Printf("Executing: %s %s\n", command, strings.Join(args, " "))
	if err := sh.RunWithV(cmdEnv, command, args...); err != nil {
		return fmt.Errorf("error executing %s: %w", command, err)
	}
	return nil
}

// goCmd runs a go subcommand through executeCmd.
func goCmd(args ...string) error {
	return executeCmd(mg.GoCmd(), args...)
}
