package driftscript

import (
	"bytes"
	"testing"
)

func newTestScript() (*DriftScript, *bytes.Buffer) {
	config := DefaultConfig()
	config.LogLevel = "fatal"
	ds := New(config)
	ds.RegisterStandardLibrary()

	var out bytes.Buffer
	ds.SetOutput(&out)
	return ds, &out
}

func TestExecuteRegisteredCommand(t *testing.T) {
	ds, _ := newTestScript()

	called := false
	ds.RegisterCommand("probe", func(ctx *Context) Result {
		called = true
		return BoolResult(true)
	})

	status := ds.Execute("probe")
	if !called {
		t.Error("handler was not invoked")
	}
	if ok, isBool := status.(BoolResult); !isBool || !bool(ok) {
		t.Errorf("expected success status, got %v", status)
	}
}

func TestExecutePassesParsedArguments(t *testing.T) {
	ds, _ := newTestScript()

	var got []string
	ds.RegisterCommand("probe", func(ctx *Context) Result {
		for _, arg := range ctx.Args {
			got = append(got, arg.String())
		}
		return BoolResult(true)
	})

	ds.Execute(`probe hello {two words} "tab\tend"`)
	want := []string{"hello", "two words", "tab\tend"}
	if len(got) != len(want) {
		t.Fatalf("expected %d args, got %q", len(want), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("arg %d: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	ds, _ := newTestScript()

	status := ds.Execute("no_such_command")
	if ok, isBool := status.(BoolResult); !isBool || bool(ok) {
		t.Errorf("expected failure status, got %v", status)
	}
	want := `unknown command "no_such_command"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestFallbackHandler(t *testing.T) {
	ds, _ := newTestScript()

	var gotName string
	ds.SetFallbackHandler(func(name string, args []*Value, in *Interp) Result {
		gotName = name
		in.SetResult("handled")
		return BoolResult(true)
	})

	status := ds.Execute("mystery arg")
	if gotName != "mystery" {
		t.Errorf("expected fallback for mystery, got %q", gotName)
	}
	if ok, isBool := status.(BoolResult); !isBool || !bool(ok) {
		t.Errorf("expected fallback status, got %v", status)
	}
	if ds.Result() != "handled" {
		t.Errorf("expected fallback result, got %q", ds.Result())
	}
}

func TestUnregisterCommand(t *testing.T) {
	ds, _ := newTestScript()

	ds.RegisterCommand("ephemeral", func(ctx *Context) Result { return BoolResult(true) })
	if !ds.UnregisterCommand("ephemeral") {
		t.Error("expected unregister to succeed")
	}
	if ds.UnregisterCommand("ephemeral") {
		t.Error("expected second unregister to fail")
	}
}

func TestExecuteMultiLineScript(t *testing.T) {
	ds, _ := newTestScript()

	status := ds.Execute("result one\n# a comment\n\nresult two")
	if ok, isBool := status.(BoolResult); !isBool || !bool(ok) {
		t.Errorf("expected success, got %v", status)
	}
	if ds.Result() != "two" {
		t.Errorf("expected result of last command, got %q", ds.Result())
	}
}

func TestExecuteStatusIsLastCommand(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("false\ntrue").(BoolResult); !bool(ok) {
		t.Error("expected final true to win")
	}
	if ok := ds.Execute("true\nfalse").(BoolResult); bool(ok) {
		t.Error("expected final false to win")
	}
}

func TestExecuteParseError(t *testing.T) {
	ds, _ := newTestScript()

	status := ds.Execute("echo {oops")
	if ok, isBool := status.(BoolResult); !isBool || bool(ok) {
		t.Errorf("expected failure status, got %v", status)
	}
	if ds.Result() != "missing close-brace" {
		t.Errorf("expected parse diagnostic, got %q", ds.Result())
	}
}

func TestEchoOutput(t *testing.T) {
	ds, out := newTestScript()

	ds.Execute("echo hello world")
	if out.String() != "hello world\n" {
		t.Errorf("expected echoed line, got %q", out.String())
	}
}

func TestListCommandQuotes(t *testing.T) {
	ds, _ := newTestScript()

	ds.Execute(`list a {b c} ""`)
	want := "a {b c} {}"
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestQuoteCommand(t *testing.T) {
	ds, _ := newTestScript()

	ds.Execute(`quote {two words}`)
	if ds.Result() != "{two words}" {
		t.Errorf("expected quoted element, got %q", ds.Result())
	}

	ds.Execute("quote plain")
	if ds.Result() != "plain" {
		t.Errorf("expected bare element, got %q", ds.Result())
	}

	if ok := ds.Execute("quote a b").(BoolResult); bool(ok) {
		t.Fatal("expected arity failure")
	}
	want := `wrong # args: should be "quote text"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestResultCommandArity(t *testing.T) {
	ds, _ := newTestScript()

	status := ds.Execute("result a b")
	if ok := status.(BoolResult); bool(ok) {
		t.Error("expected failure status")
	}
	want := `wrong # args: should be "result ?text?"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestErrorCommand(t *testing.T) {
	ds, _ := newTestScript()

	status := ds.Execute("error boom")
	if ok := status.(BoolResult); bool(ok) {
		t.Error("expected failure status")
	}
	if ds.Result() != "boom" {
		t.Errorf("expected boom, got %q", ds.Result())
	}
}

func TestEnsembleDispatch(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string length hello").(BoolResult); !bool(ok) {
		t.Fatalf("string length failed: %q", ds.Result())
	}
	if ds.Result() != "5" {
		t.Errorf("expected 5, got %q", ds.Result())
	}
}

func TestEnsembleAcceptsAbbreviation(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string le hello").(BoolResult); !bool(ok) {
		t.Fatalf("abbreviated subcommand failed: %q", ds.Result())
	}
	if ds.Result() != "5" {
		t.Errorf("expected 5, got %q", ds.Result())
	}
}

func TestEnsembleAmbiguousSubcommand(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string to x").(BoolResult); bool(ok) {
		t.Fatal("expected ambiguous dispatch to fail")
	}
	want := `ambiguous subcommand "to": must be length, tolower, toupper, trim, or repeat`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestEnsembleBadSubcommand(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string zap x").(BoolResult); bool(ok) {
		t.Fatal("expected unknown subcommand to fail")
	}
	want := `bad subcommand "zap": must be length, tolower, toupper, trim, or repeat`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestEnsembleMissingSubcommand(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string").(BoolResult); bool(ok) {
		t.Fatal("expected bare ensemble call to fail")
	}
	want := `wrong # args: should be "string subcommand ?arg ...?"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestEnsembleArityEchoesTypedSpelling(t *testing.T) {
	ds, _ := newTestScript()

	// The user typed the abbreviation "le"; the arity message must show
	// the call as typed, not the canonical dispatch vector.
	if ok := ds.Execute("string le").(BoolResult); bool(ok) {
		t.Fatal("expected arity failure")
	}
	want := `wrong # args: should be "string le string"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestEnsembleRewriteClearedAfterDispatch(t *testing.T) {
	ds, _ := newTestScript()

	ds.Execute("string le hello")
	if ds.Interp().ensembleRewrite() != nil {
		t.Error("rewrite metadata leaked past the dispatch")
	}
}

func TestStringEnsembleSubcommands(t *testing.T) {
	ds, _ := newTestScript()

	tests := []struct {
		script string
		want   string
	}{
		{"string tolower HeLLo", "hello"},
		{"string toupper HeLLo", "HELLO"},
		{"string trim {  padded  }", "padded"},
		{"string repeat ab 3", "ababab"},
	}
	for _, tt := range tests {
		if ok := ds.Execute(tt.script).(BoolResult); !bool(ok) {
			t.Errorf("%q failed: %q", tt.script, ds.Result())
			continue
		}
		if ds.Result() != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.script, tt.want, ds.Result())
		}
	}
}

func TestStringRepeatRejectsBadCount(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("string repeat ab many").(BoolResult); bool(ok) {
		t.Fatal("expected failure")
	}
	want := `expected non-negative integer but got "many"`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestLogLevelEnsemble(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("log level deb").(BoolResult); !bool(ok) {
		t.Fatalf("log level failed: %q", ds.Result())
	}
	if ds.Logger().Level() != "debug" {
		t.Errorf("expected debug level, got %q", ds.Logger().Level())
	}

	ds.ClearResult()
	if ok := ds.Execute("log level").(BoolResult); !bool(ok) {
		t.Fatalf("log level query failed: %q", ds.Result())
	}
	if ds.Result() != "debug" {
		t.Errorf("expected debug, got %q", ds.Result())
	}
}

func TestLogLevelRejectsUnknown(t *testing.T) {
	ds, _ := newTestScript()

	if ok := ds.Execute("log level loud").(BoolResult); bool(ok) {
		t.Fatal("expected failure")
	}
	want := `bad level "loud": must be debug, info, warn, error, or fatal`
	if ds.Result() != want {
		t.Errorf("expected %q, got %q", want, ds.Result())
	}
}

func TestCommandsListing(t *testing.T) {
	ds, _ := newTestScript()

	found := false
	for _, name := range ds.executor.Commands() {
		if name == "string" {
			found = true
		}
	}
	if !found {
		t.Error("expected string in the command listing")
	}
}
