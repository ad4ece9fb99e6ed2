package driftscript

import (
	"fmt"
	"strconv"
	"strings"
)

// RegisterStandardLibrary registers the built-in command set
func (ds *DriftScript) RegisterStandardLibrary() {
	// true - sets success state
	ds.RegisterCommand("true", func(ctx *Context) Result {
		return BoolResult(true)
	})

	// false - sets error state
	ds.RegisterCommand("false", func(ctx *Context) Result {
		return BoolResult(false)
	})

	// result - sets the interpreter result text
	ds.RegisterCommand("result", func(ctx *Context) Result {
		switch len(ctx.Args) {
		case 0:
			return BoolResult(true)
		case 1:
			ctx.SetResult(ctx.Args[0].String())
			return BoolResult(true)
		default:
			ctx.WrongNumArgs(1, "?text?")
			return BoolResult(false)
		}
	})

	// error - sets the result text and fails
	ds.RegisterCommand("error", func(ctx *Context) Result {
		if len(ctx.Args) != 1 {
			ctx.WrongNumArgs(1, "message")
			return BoolResult(false)
		}
		ctx.SetResult(ctx.Args[0].String())
		return BoolResult(false)
	})

	// echo/print - output arguments to stdout
	outputLineCommand := func(ctx *Context) Result {
		text := ""
		for i, arg := range ctx.Args {
			if i > 0 {
				text += " "
			}
			text += arg.String()
		}
		fmt.Fprintln(ds.out, text)
		return BoolResult(true)
	}
	ds.RegisterCommand("echo", outputLineCommand)
	ds.RegisterCommand("print", outputLineCommand)

	// list - render the arguments as one properly quoted list line
	ds.RegisterCommand("list", func(ctx *Context) Result {
		ctx.SetResult(FormatList(ctx.Args))
		return BoolResult(true)
	})

	// quote - render one argument as a single list element
	ds.RegisterCommand("quote", func(ctx *Context) Result {
		if len(ctx.Args) != 1 {
			ctx.WrongNumArgs(1, "text")
			return BoolResult(false)
		}
		ctx.SetResult(QuoteElement(ctx.Args[0].String()))
		return BoolResult(true)
	})

	ds.registerStringEnsemble()
	ds.registerLogEnsemble()
}

// registerStringEnsemble wires the string command. Its subcommands accept
// unique abbreviations, and their arity errors expand or echo back the
// user's spelling through the keyword cache and rewrite metadata.
func (ds *DriftScript) registerStringEnsemble() {
	ds.RegisterEnsemble("string", []EnsembleSub{
		{Name: "length", Handler: func(ctx *Context) Result {
			if len(ctx.Args) != 1 {
				ctx.WrongNumArgs(2, "string")
				return BoolResult(false)
			}
			ctx.SetResult(strconv.Itoa(len(ctx.Args[0].String())))
			return BoolResult(true)
		}},
		{Name: "tolower", Handler: func(ctx *Context) Result {
			if len(ctx.Args) != 1 {
				ctx.WrongNumArgs(2, "string")
				return BoolResult(false)
			}
			ctx.SetResult(strings.ToLower(ctx.Args[0].String()))
			return BoolResult(true)
		}},
		{Name: "toupper", Handler: func(ctx *Context) Result {
			if len(ctx.Args) != 1 {
				ctx.WrongNumArgs(2, "string")
				return BoolResult(false)
			}
			ctx.SetResult(strings.ToUpper(ctx.Args[0].String()))
			return BoolResult(true)
		}},
		{Name: "trim", Handler: func(ctx *Context) Result {
			if len(ctx.Args) != 1 {
				ctx.WrongNumArgs(2, "string")
				return BoolResult(false)
			}
			ctx.SetResult(strings.TrimSpace(ctx.Args[0].String()))
			return BoolResult(true)
		}},
		{Name: "repeat", Handler: func(ctx *Context) Result {
			if len(ctx.Args) != 2 {
				ctx.WrongNumArgs(2, "string count")
				return BoolResult(false)
			}
			count, err := strconv.Atoi(ctx.Args[1].String())
			if err != nil || count < 0 {
				ctx.SetResult(fmt.Sprintf("expected non-negative integer but got %q", ctx.Args[1].String()))
				return BoolResult(false)
			}
			ctx.SetResult(strings.Repeat(ctx.Args[0].String(), count))
			return BoolResult(true)
		}},
	})
}

// logLevels is the keyword table for the log ensemble; entries follow the
// logger's level names.
var logLevels = NewKeywordTable("debug", "info", "warn", "error", "fatal")

// registerLogEnsemble wires the log command: leveled message output plus a
// level subcommand whose argument is keyword-matched, so "log level deb"
// selects the debug level.
func (ds *DriftScript) registerLogEnsemble() {
	emit := func(level string) Handler {
		return func(ctx *Context) Result {
			if len(ctx.Args) != 1 {
				ctx.WrongNumArgs(2, "message")
				return BoolResult(false)
			}
			msg := ctx.Args[0].String()
			switch level {
			case "debug":
				ds.logger.Debug("%s", msg)
			case "info":
				ds.logger.Info("%s", msg)
			case "warn":
				ds.logger.Warn("%s", msg)
			case "error":
				ds.logger.Error("%s", msg)
			}
			return BoolResult(true)
		}
	}

	ds.RegisterEnsemble("log", []EnsembleSub{
		{Name: "debug", Handler: emit("debug")},
		{Name: "info", Handler: emit("info")},
		{Name: "warn", Handler: emit("warn")},
		{Name: "error", Handler: emit("error")},
		{Name: "level", Handler: func(ctx *Context) Result {
			switch len(ctx.Args) {
			case 0:
				ctx.SetResult(ds.logger.Level())
				return BoolResult(true)
			case 1:
				idx, err := MatchKeyword(ctx.Interp(), ctx.Args[0], logLevels, "level", false)
				if err != nil {
					return BoolResult(false)
				}
				if err := ds.logger.SetLevel(logLevels.Entries()[idx]); err != nil {
					ctx.SetResult(err.Error())
					return BoolResult(false)
				}
				return BoolResult(true)
			default:
				ctx.WrongNumArgs(2, "?level?")
				return BoolResult(false)
			}
		}},
	})
}
