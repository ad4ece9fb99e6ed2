package driftscript

import "sync"

// EnsembleRewrite records how a dispatching command rewrote the current
// call before invoking its implementation: Source holds the words as the
// user originally typed them, NumInserted is how many leading words of the
// current call were synthesized by the dispatcher, and NumRemoved is how
// many leading Source words stand in their place in diagnostics.
type EnsembleRewrite struct {
	Source      []*Value
	NumInserted int
	NumRemoved  int
}

// Interp is the evaluation context shared by command handlers. It manages
// the current result text (which doubles as the error channel) and the
// diagnostic state consulted by WrongNumArgs.
type Interp struct {
	mu        sync.RWMutex
	result    string
	hasResult bool

	alternateWrongArgs bool
	ensemble           *EnsembleRewrite

	config *Config
	logger *Logger
}

// NewInterp creates a new evaluation context
func NewInterp(config *Config, logger *Logger) *Interp {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = NewLogger(config.Debug)
	}
	return &Interp{
		config: config,
		logger: logger,
	}
}

// SetResult sets the result text
func (in *Interp) SetResult(text string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.result = text
	in.hasResult = true
}

// Result returns the current result text
func (in *Interp) Result() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.result
}

// HasResult checks if a result text has been set
func (in *Interp) HasResult() bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.hasResult
}

// ClearResult clears the result text
func (in *Interp) ClearResult() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.result = ""
	in.hasResult = false
}

// SetAlternateWrongArgs controls how WrongNumArgs seeds its message: when
// set, the current result text is extended with an alternate usage form
// instead of starting a fresh "wrong # args" message.
func (in *Interp) SetAlternateWrongArgs(on bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.alternateWrongArgs = on
}

// AlternateWrongArgs reports whether alternate seeding is active.
func (in *Interp) AlternateWrongArgs() bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.alternateWrongArgs
}

// SetEnsembleRewrite attaches rewrite metadata for diagnostics. It returns
// the previous metadata so dispatchers can restore it when they unwind.
func (in *Interp) SetEnsembleRewrite(source []*Value, numInserted, numRemoved int) *EnsembleRewrite {
	in.mu.Lock()
	defer in.mu.Unlock()
	prev := in.ensemble
	in.ensemble = &EnsembleRewrite{
		Source:      source,
		NumInserted: numInserted,
		NumRemoved:  numRemoved,
	}
	return prev
}

// RestoreEnsembleRewrite reinstates metadata returned by SetEnsembleRewrite.
func (in *Interp) RestoreEnsembleRewrite(prev *EnsembleRewrite) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.ensemble = prev
}

// ClearEnsembleRewrite removes any rewrite metadata.
func (in *Interp) ClearEnsembleRewrite() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.ensemble = nil
}

// ensembleRewrite returns the active rewrite metadata, nil if none.
func (in *Interp) ensembleRewrite() *EnsembleRewrite {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.ensemble
}

// Logger returns the interpreter's logger.
func (in *Interp) Logger() *Logger {
	return in.logger
}

// Config returns the interpreter's configuration.
func (in *Interp) Config() *Config {
	return in.config
}

// String returns a string representation for debugging
func (in *Interp) String() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.hasResult {
		return "Interp(has result)"
	}
	return "Interp(no result)"
}
