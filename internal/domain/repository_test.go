package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseRepositoryReference uses a table-driven approach to cover both
// the URL and shorthand parsing arms.
func TestParseRepositoryReference(t *testing.T) {
	testCases := []struct {
		name          string
		ref           string
		expectedOwner string
		expectedName  string
		expectError   bool
	}{
		{
			name:          "https URL with .git suffix",
			ref:           "https://github.com/acme/widgets.git",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "https URL without suffix",
			ref:           "https://github.com/acme/widgets",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "https URL with trailing slash",
			ref:           "https://github.com/acme/widgets/",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "ssh URL",
			ref:           "git@github.com:acme/widgets.git",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "shorthand",
			ref:           "acme/widgets",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "shorthand with .git suffix",
			ref:           "acme/widgets.git",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:          "shorthand with surrounding whitespace",
			ref:           "  acme/widgets  ",
			expectedOwner: "acme",
			expectedName:  "widgets",
		},
		{
			name:        "no separator",
			ref:         "not-a-repo",
			expectError: true,
		},
		{
			name:        "too many segments",
			ref:         "acme/widgets/extra",
			expectError: true,
		},
		{
			name:        "empty owner",
			ref:         "/widgets",
			expectError: true,
		},
		{
			name:        "empty name",
			ref:         "acme/",
			expectError: true,
		},
		{
			name:        "URL without path",
			ref:         "https://github.com/",
			expectError: true,
		},
		{
			name:        "empty string",
			ref:         "",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseRepositoryReference(tc.ref)
			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidRepositoryReference)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedOwner, repo.Owner)
			assert.Equal(t, tc.expectedName, repo.Name)
			assert.Equal(t, tc.expectedOwner+"/"+tc.expectedName, repo.FullName())
		})
	}
}
