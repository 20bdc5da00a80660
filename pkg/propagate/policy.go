package propagate

import "fmt"

// Policy decides what happens to the remaining repositories after a failure.
type Policy string

const (
	// PolicyFailFast stops at the first repository that fails.
	PolicyFailFast Policy = "fail-fast"
	// PolicyContinue visits every repository and reports all failures at the end.
	PolicyContinue Policy = "continue"
)

// ParsePolicy converts a configuration value to a Policy. An empty value is fail-fast.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(value) {
	case "", PolicyFailFast:
		return PolicyFailFast, nil
	case PolicyContinue:
		return PolicyContinue, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}
