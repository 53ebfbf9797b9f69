// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RepositoryIdentifier is the parsed form of a user-supplied repository
// reference. Immutable once parsed.
type RepositoryIdentifier struct {
	Owner string
	Name  string
}

// FullName returns the canonical "owner/name" form.
func (r RepositoryIdentifier) FullName() string {
	return r.Owner + "/" + r.Name
}

// Matches both https and ssh URL forms, with an optional ".git" suffix.
var repositoryURLPattern = regexp.MustCompile(`github\.com[/:]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRepositoryReference normalizes a repository reference into a
// RepositoryIdentifier. Accepted forms are a GitHub URL
// ("https://github.com/acme/widgets.git", "git@github.com:acme/widgets")
// or an "owner/name" shorthand. No network access.
func ParseRepositoryReference(ref string) (RepositoryIdentifier, error) {
	ref = strings.TrimSpace(ref)

	if strings.Contains(ref, "github.com") {
		m := repositoryURLPattern.FindStringSubmatch(ref)
		if m == nil {
			return RepositoryIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryReference, ref)
		}
		return RepositoryIdentifier{Owner: m[1], Name: m[2]}, nil
	}

	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryReference, ref)
	}
	name := strings.TrimSuffix(parts[1], ".git")
	if name == "" {
		return RepositoryIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryReference, ref)
	}
	return RepositoryIdentifier{Owner: parts[0], Name: name}, nil
}
