package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified returns the arguments stored in the file named
// by -A, or nil when -A is absent. It runs before flag parsing so the file's
// arguments can be parsed together with the command line.
func loadArgsFromFileIfSpecified() []string {
	args := os.Args[1:]
	for i, arg := range args {
		var name string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 < len(args) {
				name = args[i+1]
			}
		case strings.HasPrefix(arg, "-A="):
			name = strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			name = strings.TrimPrefix(arg, "--A=")
		default:
			continue
		}
		if name == "" {
			return nil
		}
		extra, err := loadArgsFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading arguments file %s: %v\n", name, err)
			os.Exit(1)
		}
		return extra
	}
	return nil
}

// loadArgsFile reads arguments from a file, one or more per line.
// Blank lines and lines starting with '#' are ignored.
func loadArgsFile(name string) ([]string, error) {
	file, err := os.Open(name) //nolint:gosec // G304: the user names the file on the command line
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	return args, scanner.Err()
}

// splitArgsLine splits a line on whitespace, keeping single- or
// double-quoted runs together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
