//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the testbed binary into bin/.
func (Build) Testbed() error {
	return goCmd("build", "-o", "bin/testbed", ".")
}

type Test mg.Namespace

// Runs every package's unit tests.
func (Test) Unit() error {
	return goCmd("test", "./...")
}

// Runs the tests with the race detector; the config watcher and event system
// are the concurrent parts.
func (Test) Race() error {
	return goCmd("test", "-race", "./engine/...", "./testbed/...")
}
