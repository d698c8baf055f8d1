package registry

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned if a client passes a value which is neither
// CSS nor a precompiled artifact.
var ErrInvalidInput = errors.New("invalid css input")

// ErrInvalidArtifact is returned for precompiled artifacts lacking an id or
// styles.
var ErrInvalidArtifact = errors.New("invalid precompiled artifact")

// ErrNotAcquired is returned when releasing a source which is not held by
// anyone. This is a programming error on the client side.
var ErrNotAcquired = errors.New("css source has not been acquired")

// ErrBindingClosed is returned for operations on a closed Binding.
var ErrBindingClosed = errors.New("binding is closed")

// MalformedSelectorWarning is reported for raw CSS which does not contain
// any '&'. Such CSS is inserted unscoped, i.e. it applies globally.
// Clients most probably forgot to scope their rules.
type MalformedSelectorWarning struct {
	FirstRule string // selector of the first rule of the offending CSS
}

func (w MalformedSelectorWarning) Error() string {
	return fmt.Sprintf("css should contain the '&' character to scope its rules: %s", w.FirstRule)
}

// WarningHandler receives non-fatal diagnostics.
type WarningHandler func(warning error)

func traceWarning(warning error) {
	tracer().Infof("kremling warning: %s", warning.Error())
}
