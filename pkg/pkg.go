// Package pkg holds project metadata and the per-user paths derived from it.
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of createnv embedded at build time.
//
//nolint:gochecknoglobals
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help text and default config
	// paths.
	Name = "createnv"
	// Description is a short summary of the command used in help output.
	Description = "Create a .env file interactively from a commented sample"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
