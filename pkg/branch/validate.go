// Package branch provides branch name strategies and validation.
package branch

import (
	"strings"
)

// ErrBranchNameEmpty is returned when the branch name is empty.
var ErrBranchNameEmpty = &Error{message: "branch name cannot be empty"}

// ErrBranchNameSingleAt is returned when the branch name is just a single @ character.
var ErrBranchNameSingleAt = &Error{message: "branch name cannot be the single character @"}

// ErrBranchNameContainsAtBrace is returned when the branch name contains the sequence @{.
var ErrBranchNameContainsAtBrace = &Error{message: "branch name cannot contain the sequence @{"}

// ErrBranchNameContainsBackslash is returned when the branch name contains a backslash.
var ErrBranchNameContainsBackslash = &Error{message: "branch name cannot contain backslash"}

// ErrBranchNameLeadingDash is returned when the branch name starts with a dash.
var ErrBranchNameLeadingDash = &Error{message: "branch name cannot start with a dash"}

// Error represents an error related to branch operations.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

// ValidateBranchName rejects names git can never accept as a branch.
// Unlike a sanitizer it never rewrites the name: an exact branch is used verbatim.
func ValidateBranchName(branchName string) error {
	if branchName == "" {
		return ErrBranchNameEmpty
	}

	if branchName == "@" {
		return ErrBranchNameSingleAt
	}

	if strings.Contains(branchName, "@{") {
		return ErrBranchNameContainsAtBrace
	}

	if strings.Contains(branchName, "\\") {
		return ErrBranchNameContainsBackslash
	}

	if strings.HasPrefix(branchName, "-") {
		return ErrBranchNameLeadingDash
	}

	return nil
}
