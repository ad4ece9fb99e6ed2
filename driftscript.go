// Package driftscript provides an embeddable command interpreter whose
// argument values carry a cached structured interpretation alongside their
// canonical string form.
//
// The cache that motivates the design is the keyword match: a value looked
// up in a table of keywords (with unique abbreviations accepted) remembers
// which entry it resolved to, so repeated lookups against the same table
// cost nothing and diagnostics can expand an abbreviation back to its full
// spelling. The companion WrongNumArgs builder renders the standard
// "wrong # args" usage message from such values.
//
// Basic usage:
//
//	ds := driftscript.New(nil)
//	ds.RegisterStandardLibrary()
//	ds.Execute(`string length "hello"`)
//	fmt.Println(ds.Result()) // 5
package driftscript

import (
	"io"
	"os"
)

// DriftScript is the main interpreter instance
type DriftScript struct {
	config   *Config
	logger   *Logger
	interp   *Interp
	executor *Executor
	out      io.Writer
}

// New creates a new interpreter with the given configuration. A nil config
// selects the defaults.
func New(config *Config) *DriftScript {
	if config == nil {
		config = DefaultConfig()
	}
	logger := NewLogger(config.Debug)
	if config.LogLevel != "" {
		if err := logger.SetLevel(config.LogLevel); err != nil {
			logger.Warn("%v", err)
		}
	}
	interp := NewInterp(config, logger)
	return &DriftScript{
		config:   config,
		logger:   logger,
		interp:   interp,
		executor: NewExecutor(interp, logger),
		out:      os.Stdout,
	}
}

// SetOutput redirects command output (echo and friends)
func (ds *DriftScript) SetOutput(w io.Writer) {
	ds.out = w
}

// Interp returns the evaluation context.
func (ds *DriftScript) Interp() *Interp {
	return ds.interp
}

// Logger returns the interpreter's logger.
func (ds *DriftScript) Logger() *Logger {
	return ds.logger
}

// RegisterCommand registers a command handler
func (ds *DriftScript) RegisterCommand(name string, handler Handler) {
	ds.executor.RegisterCommand(name, handler)
}

// RegisterEnsemble registers a command with keyword-dispatched subcommands
func (ds *DriftScript) RegisterEnsemble(name string, subs []EnsembleSub) {
	ds.executor.RegisterEnsemble(name, subs)
}

// UnregisterCommand removes a registered command
func (ds *DriftScript) UnregisterCommand(name string) bool {
	return ds.executor.UnregisterCommand(name)
}

// SetFallbackHandler sets a handler for unknown commands
func (ds *DriftScript) SetFallbackHandler(handler func(string, []*Value, *Interp) Result) {
	ds.executor.SetFallbackHandler(handler)
}

// Execute runs a script and returns the status of its last command.
func (ds *DriftScript) Execute(script string) Result {
	return ds.executor.Execute(script)
}

// ExecuteCommand dispatches a single pre-parsed argument vector.
func (ds *DriftScript) ExecuteCommand(args []*Value) Result {
	return ds.executor.ExecuteCommand(args)
}

// Result returns the current interpreter result text.
func (ds *DriftScript) Result() string {
	return ds.interp.Result()
}

// HasResult checks if a result text has been set.
func (ds *DriftScript) HasResult() bool {
	return ds.interp.HasResult()
}

// ClearResult clears the interpreter result.
func (ds *DriftScript) ClearResult() {
	ds.interp.ClearResult()
}
