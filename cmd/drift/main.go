package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/driftlang/driftscript"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev" // set via -ldflags at build time

// ANSI color codes for terminal output
const (
	colorCyan  = "\x1b[36m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigPath returns ~/.drift/drift.toml, or "" if no home dir
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".drift", "drift.toml")
}

func newRootCmd() *cobra.Command {
	var (
		debug      bool
		command    string
		configPath string
	)

	root := &cobra.Command{
		Use:           "drift [script-file]",
		Short:         "DriftScript command interpreter",
		Long:          "drift runs DriftScript files, one-off commands, or an interactive session.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = defaultConfigPath()
			}
			cfg, err := driftscript.LoadConfigFile(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
				cfg.LogLevel = "debug"
			}

			ds := driftscript.New(cfg)
			ds.RegisterStandardLibrary()

			switch {
			case command != "":
				return runScript(ds, command)
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				return runScript(ds, string(data))
			case term.IsTerminal(int(os.Stdin.Fd())):
				return repl(ds, cfg)
			default:
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				return runScript(ds, string(data))
			}
		},
	}

	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.Flags().StringVarP(&command, "command", "c", "", "execute the given commands and exit")
	root.Flags().StringVar(&configPath, "config", "", "path to config file (default ~/.drift/drift.toml)")
	return root
}

// runScript executes a script, printing any result text.
func runScript(ds *driftscript.DriftScript, src string) error {
	status := ds.Execute(src)
	if ds.HasResult() {
		fmt.Println(ds.Result())
	}
	if ok, isBool := status.(driftscript.BoolResult); isBool && !bool(ok) {
		return fmt.Errorf("script failed")
	}
	return nil
}

// repl runs an interactive session on the terminal.
func repl(ds *driftscript.DriftScript, cfg *driftscript.Config) error {
	colors := term.IsTerminal(int(os.Stdout.Fd()))
	prompt := cfg.Prompt
	if colors {
		prompt = colorCyan + prompt + colorReset
	}

	fmt.Printf("drift %s — type commands, exit to leave\n", version)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			return nil
		}

		ds.ClearResult()
		status := ds.Execute(line)
		failed := false
		if ok, isBool := status.(driftscript.BoolResult); isBool && !bool(ok) {
			failed = true
		}
		if ds.HasResult() {
			text := ds.Result()
			if failed && colors {
				fmt.Println(colorRed + text + colorReset)
			} else {
				fmt.Println(text)
			}
		}
	}
}
