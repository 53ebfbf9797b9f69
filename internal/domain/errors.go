package domain

import "errors"

var (
	// ErrInvalidRepositoryReference is returned when a user-supplied
	// repository reference is neither a recognizable hosting URL nor an
	// "owner/name" shorthand.
	ErrInvalidRepositoryReference = errors.New("invalid repository reference")

	// ErrMissingCredential is returned when no API token is configured.
	// It is checked before any network activity and is fatal to the run.
	ErrMissingCredential = errors.New("missing GitHub token: set GITHUB_TOKEN")
)
