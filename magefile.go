//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the dumpview binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/dumpview", "./cmd/dumpview")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and staticcheck (when installed).
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("staticcheck not available or failed (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return nil
}

// QA runs lint then tests.
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
