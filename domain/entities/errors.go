package entities

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedEngineError reports a request for an engine the registry does
// not know: no static voice dump and no live-client constructor.
type UnsupportedEngineError struct {
	Engine string
	Known  []string
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("engine %q not supported, supported engines are: %s",
		e.Engine, strings.Join(e.Known, ", "))
}

// ProviderError reports a failed live voice fetch for a single engine.
// Single-engine queries surface it; aggregate queries skip the engine.
type ProviderError struct {
	Engine string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("engine %s: fetching voices failed: %v", e.Engine, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsUnsupportedEngine reports whether err is an UnsupportedEngineError
// anywhere in its chain.
func IsUnsupportedEngine(err error) bool {
	var target *UnsupportedEngineError
	return errors.As(err, &target)
}

// IsProviderError reports whether err is a ProviderError anywhere in its
// chain.
func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}
