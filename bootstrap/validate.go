package bootstrap

import (
	"fmt"
	"strings"
)

// ProjectName is a validated project name.
type ProjectName string

// AccountName is a validated GitHub user or organization name.
type AccountName string

// ValidateProjectName validates a project name using Go module and directory
// friendly rules: a leading ASCII letter or underscore, followed by ASCII
// letters, digits, '-' or '_'. Surrounding whitespace is trimmed.
func ValidateProjectName(input string) (ProjectName, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", &ValidationError{Field: "project name", Reason: "project name cannot be empty"}
	}

	for i, ch := range name {
		if i == 0 {
			if isDigit(ch) {
				return "", &ValidationError{
					Field:  "project name",
					Reason: fmt.Sprintf("the name cannot start with a digit: '%c'", ch),
				}
			}
			if !isLetter(ch) && ch != '_' {
				return "", &ValidationError{
					Field:  "project name",
					Reason: fmt.Sprintf("the first character must be a letter or `_`, found: '%c'", ch),
				}
			}
			continue
		}
		if !isLetter(ch) && !isDigit(ch) && ch != '-' && ch != '_' {
			return "", &ValidationError{
				Field:  "project name",
				Reason: fmt.Sprintf("invalid character '%c': only letters, numbers, `-`, or `_` are allowed", ch),
			}
		}
	}

	return ProjectName(name), nil
}

// ValidateAccountName trims input and rejects it only when empty.
func ValidateAccountName(input string) (AccountName, error) {
	account := strings.TrimSpace(input)
	if account == "" {
		return "", &ValidationError{Field: "GitHub account", Reason: "GitHub account name cannot be empty"}
	}
	return AccountName(account), nil
}

func isDigit(ch rune) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
