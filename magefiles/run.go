//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed once with the config in VECMATH_CONFIG, if set.
func (Run) Testbed() error {
	mg.Deps(Build.Testbed)
	fmt.Println("Run testbed...")
	return executeCmd("bin/testbed", testbedArgs(false)...)
}

// Runs the testbed in watch mode; VECMATH_CONFIG must point at a config file.
func (Run) Watch() error {
	mg.Deps(Build.Testbed)
	if os.Getenv("VECMATH_CONFIG") == "" {
		return fmt.Errorf("VECMATH_CONFIG is not set")
	}
	return executeCmd("bin/testbed", testbedArgs(true)...)
}

func testbedArgs(watch bool) []string {
	var args []string
	if path := os.Getenv("VECMATH_CONFIG"); path != "" {
		args = append(args, "-config", path)
	}
	if watch {
		args = append(args, "-watch")
	}
	return args
}
