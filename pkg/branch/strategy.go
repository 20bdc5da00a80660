package branch

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// AutoSentinel is the command-line value selecting the Auto strategy.
const AutoSentinel = "-"

var _ pflag.Value = (*Strategy)(nil)

// autoCandidates are tried in order; the first existing ref wins.
var autoCandidates = [...]string{"main", "master"}

// ErrBranchNotFound is matched by every NotFoundError.
var ErrBranchNotFound = errors.New("no auto-detectable branch")

// NotFoundError is returned when no auto candidate exists under Prefix.
type NotFoundError struct {
	Prefix string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %q and %q under %s", ErrBranchNotFound, autoCandidates[0], autoCandidates[1], e.Prefix)
}

// Is makes errors.Is(err, ErrBranchNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// Strategy selects how a branch name is obtained: pinned (Exact) or
// detected from refs (Auto). The zero value is Auto.
type Strategy struct {
	name  string
	exact bool
}

// Auto returns the strategy that detects "main" or "master".
func Auto() Strategy {
	return Strategy{}
}

// Exact returns the strategy that always yields name, even an empty one.
// Use ParseStrategy to validate user input.
func Exact(name string) Strategy {
	return Strategy{name: name, exact: true}
}

// IsAuto reports whether the strategy detects the branch from refs.
func (s Strategy) IsAuto() bool {
	return !s.exact
}

// Name returns the pinned branch name, empty for Auto.
func (s Strategy) Name() string {
	return s.name
}

// String returns the pinned name, or "-" for Auto.
func (s Strategy) String() string {
	if s.IsAuto() {
		return AutoSentinel
	}
	return s.name
}

// Resolve returns the branch name for refs under prefix (e.g. "refs/heads"
// or "refs/remotes/<remote>").
// Exact names are returned verbatim without looking at refs; existence is
// checked later by the caller.
func (s Strategy) Resolve(prefix string, refs []string) (string, error) {
	if !s.IsAuto() {
		return s.name, nil
	}

	for _, candidate := range autoCandidates {
		ref := prefix + "/" + candidate
		for _, r := range refs {
			if r == ref {
				return candidate, nil
			}
		}
	}

	return "", &NotFoundError{Prefix: prefix}
}

// ParseStrategy converts a command-line value to a Strategy: "-" is Auto,
// anything else is an exact branch name.
func ParseStrategy(value string) (Strategy, error) {
	if value == AutoSentinel {
		return Auto(), nil
	}
	if err := ValidateBranchName(value); err != nil {
		return Strategy{}, err
	}
	return Exact(value), nil
}

// Set implements pflag.Value.
func (s *Strategy) Set(value string) error {
	parsed, err := ParseStrategy(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string {
	return "branch"
}
