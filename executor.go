package driftscript

import (
	"fmt"
	"strings"
	"sync"
)

// Executor handles command registration and dispatch
type Executor struct {
	mu              sync.RWMutex
	commands        map[string]Handler
	interp          *Interp
	logger          *Logger
	fallbackHandler func(cmdName string, args []*Value, in *Interp) Result
}

// NewExecutor creates a new command executor
func NewExecutor(interp *Interp, logger *Logger) *Executor {
	return &Executor{
		commands: make(map[string]Handler),
		interp:   interp,
		logger:   logger,
	}
}

// RegisterCommand registers a command handler
func (e *Executor) RegisterCommand(name string, handler Handler) {
	e.mu.Lock()
	e.commands[name] = handler
	e.mu.Unlock()
	e.logger.Debug("Registered command: %s", name)
}

// UnregisterCommand unregisters a command
func (e *Executor) UnregisterCommand(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.commands[name]; exists {
		delete(e.commands, name)
		e.logger.Debug("Unregistered command: %s", name)
		return true
	}

	e.logger.Warn("Attempted to unregister unknown command: %s", name)
	return false
}

// SetFallbackHandler sets a fallback handler for unknown commands
func (e *Executor) SetFallbackHandler(handler func(string, []*Value, *Interp) Result) {
	e.mu.Lock()
	e.fallbackHandler = handler
	e.mu.Unlock()
}

// EnsembleSub describes one subcommand of an ensemble command.
type EnsembleSub struct {
	Name    string
	Handler Handler
}

// RegisterEnsemble registers a command whose first argument selects a
// subcommand, matched against a keyword table with unique abbreviations
// accepted. The subcommand handler is invoked with canonical leading words
// while ensemble rewrite metadata records the words the user actually
// typed, so arity diagnostics read back in the user's own spelling.
func (e *Executor) RegisterEnsemble(name string, subs []EnsembleSub) {
	names := make([]string, len(subs))
	for i, sub := range subs {
		names[i] = sub.Name
	}
	table := NewKeywordTable(names...)

	e.RegisterCommand(name, func(ctx *Context) Result {
		in := ctx.interp
		if len(ctx.Args) < 1 {
			in.WrongNumArgs(ctx.Words[:1], "subcommand ?arg ...?")
			return BoolResult(false)
		}

		idx, err := MatchKeyword(in, ctx.Args[0], table, "subcommand", false)
		if err != nil {
			return BoolResult(false)
		}
		sub := subs[idx]

		// Hand the subcommand a canonical call vector and record the
		// typed words for diagnostics.
		words := make([]*Value, 0, len(ctx.Words))
		words = append(words, NewValue(name), NewValue(sub.Name))
		words = append(words, ctx.Args[1:]...)

		prev := in.SetEnsembleRewrite(ctx.Words[:2], 2, 2)
		defer in.RestoreEnsembleRewrite(prev)

		subCtx := &Context{
			Name:   name + " " + sub.Name,
			Words:  words,
			Args:   words[2:],
			interp: in,
			logger: e.logger,
		}
		return sub.Handler(subCtx)
	})
}

// Execute runs a script: newline-separated commands, blank and comment
// lines skipped. The returned status is the status of the last command;
// diagnostic text, if any, is left in the interpreter result.
func (e *Executor) Execute(script string) Result {
	e.logger.Debug("Execute called with %d bytes", len(script))

	var status Result = BoolResult(true)
	for lineNo, line := range strings.Split(script, "\n") {
		args, err := ParseCommand(line)
		if err != nil {
			if scriptErr, ok := err.(*ScriptError); ok {
				scriptErr.Line = lineNo + 1
			}
			e.logger.ScriptError(err.Error(), lineNo+1)
			e.interp.SetResult(err.Error())
			return BoolResult(false)
		}
		if len(args) == 0 {
			continue
		}
		status = e.executeCommand(args, lineNo+1)
	}
	return status
}

// ExecuteCommand dispatches a single pre-parsed argument vector.
func (e *Executor) ExecuteCommand(args []*Value) Result {
	return e.executeCommand(args, 0)
}

func (e *Executor) executeCommand(args []*Value, line int) Result {
	name := args[0].String()

	e.mu.RLock()
	handler, exists := e.commands[name]
	fallback := e.fallbackHandler
	e.mu.RUnlock()

	if !exists {
		if fallback != nil {
			return fallback(name, args[1:], e.interp)
		}
		e.logger.UnknownCommandError(name, line)
		e.interp.SetResult(fmt.Sprintf("unknown command %q", name))
		return BoolResult(false)
	}

	ctx := &Context{
		Name:   name,
		Words:  args,
		Args:   args[1:],
		interp: e.interp,
		logger: e.logger,
	}
	return handler(ctx)
}

// Commands returns the registered command names.
func (e *Executor) Commands() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	return names
}
