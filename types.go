package driftscript

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Context is passed to command handlers
type Context struct {
	// Name is the command name as registered (for ensemble subcommands,
	// "cmd sub").
	Name string

	// Words is the full argument vector of the call, including the command
	// word itself. Usage messages are built from a prefix of this vector.
	Words []*Value

	// Args is the argument vector without the leading command word(s).
	Args []*Value

	interp *Interp
	logger *Logger
}

// Interp returns the evaluation context of this call.
func (c *Context) Interp() *Interp {
	return c.interp
}

// SetResult sets the interpreter result text
func (c *Context) SetResult(text string) {
	c.interp.SetResult(text)
}

// Result gets the current interpreter result text
func (c *Context) Result() string {
	return c.interp.Result()
}

// ClearResult clears the interpreter result
func (c *Context) ClearResult() {
	c.interp.ClearResult()
}

// WrongNumArgs reports an arity error built from the leading n words of
// this call followed by message. Typical handler usage:
//
//	if len(ctx.Args) != 1 {
//		ctx.WrongNumArgs(2, "string")
//		return BoolResult(false)
//	}
func (c *Context) WrongNumArgs(n int, message string) {
	if n > len(c.Words) {
		n = len(c.Words)
	}
	c.interp.WrongNumArgs(c.Words[:n], message)
}

// Handler is a function that handles a command
type Handler func(*Context) Result

// Result represents the result of command execution
type Result interface {
	isResult()
}

// BoolResult represents a boolean success/failure status
type BoolResult bool

func (BoolResult) isResult() {}

// ScriptError represents an error with source line information
type ScriptError struct {
	Message string
	Line    int
}

func (e *ScriptError) Error() string {
	return e.Message
}

// Config holds configuration for DriftScript
type Config struct {
	Debug bool `toml:"debug"`

	// CompatBareFirstWord preserves a legacy quirk of usage messages: the
	// first emitted word is never quoted, even when it contains characters
	// that would otherwise require list quoting. Kept as explicit
	// configuration so the behavior is deterministic and testable.
	CompatBareFirstWord bool `toml:"compat_bare_first_word"`

	Prompt   string `toml:"prompt"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		CompatBareFirstWord: false,
		Prompt:              "drift> ",
		LogLevel:            "warn",
	}
}

// LoadConfigFile reads a TOML configuration file on top of the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
