//go:build mage

// Package main contains Mage build targets for wiktitrage developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "wiktitrage"
	cmdPkg  = "./cmd/wiktitrage"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/, stamping the version from
// WIKTITRAGE_VERSION or git describe.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + buildVersion()
	return run("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg)
}

// Test runs the unit tests.
func Test() error {
	return run("go", "test", "./...")
}

// Install copies the binary to $GOBIN (or ~/go/bin).
func Install() error {
	mg.Deps(Build)
	dest := os.Getenv("GOBIN")
	if dest == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dest = filepath.Join(home, "go", "bin")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	data, err := os.ReadFile(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	target := filepath.Join(dest, binName)
	if err := os.WriteFile(target, data, 0o755); err != nil {
		return fmt.Errorf("installing %s: %w", target, err)
	}
	fmt.Printf("Installed %s\n", target)
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func buildVersion() string {
	if v := os.Getenv("WIKTITRAGE_VERSION"); v != "" {
		return v
	}
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

// countGoLines walks the tree and counts non-blank lines in Go files,
// either test files only or production files only.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") || info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
