//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ---- Config ------------------------------------------------------------------

var (
	CmdDir   = "cmd/server"
	BuildDir = "bin"
)

// ---- Helpers -----------------------------------------------------------------

func sh(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout, cmd.Stderr, cmd.Stdin = os.Stdout, os.Stderr, os.Stdin
	return cmd.Run()
}

func ensureDir(dir string) error { return os.MkdirAll(dir, 0o755) }

func binaryName() string {
	name := "jobdeck"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// ---- Targets -----------------------------------------------------------------

// Build compiles the server binary into bin/.
func Build() error {
	if err := ensureDir(BuildDir); err != nil {
		return err
	}
	out := filepath.Join(BuildDir, binaryName())
	fmt.Println("building", out)
	return sh("go", "build", "-o", out, "./"+CmdDir)
}

// Test runs the full test suite.
func Test() error {
	return sh("go", "test", "./...")
}

// Run starts the server without building a binary.
func Run() error {
	return sh("go", "run", "./"+CmdDir)
}

// Tidy cleans up go.mod and go.sum.
func Tidy() error {
	return sh("go", "mod", "tidy")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(BuildDir)
}
