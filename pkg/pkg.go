// Package pkg holds identifiers shared across the module: the canonical
// program name, a short description for help text, and author metadata.
package pkg

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default path names.
	Name = "exl"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Concurrent expression and statement interpreter"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
