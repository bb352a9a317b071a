// Package source resolves the raw script output the parse command operates
// on: a local file, standard input, or a remote HTTP/HTTPS resource.
package source

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Type represents the type of source being resolved
type Type int

const (
	// TypeUnknown represents an unknown source type
	TypeUnknown Type = iota
	// TypeFile represents a local file
	TypeFile
	// TypeStdin represents standard input
	TypeStdin
	// TypeRemote represents a remote HTTP/HTTPS resource
	TypeRemote
)

// Metadata contains information about the resolved source
type Metadata struct {
	// Name of the source as given by the user
	Name string
	// Type is the source type (file, stdin, remote)
	Type Type
	// Path is the resolved path or URL
	Path string
	// Size is the size of the content in bytes
	Size int64
	// ModTime is the last modification time, when the source has one
	ModTime time.Time
}

// Source resolves raw script output from somewhere
type Source interface {
	// Resolve reads the complete output text. The context can be used to
	// cancel the operation.
	Resolve(ctx context.Context) (string, *Metadata, error)
}

// Error types for source resolution
var (
	ErrEmptySource = fmt.Errorf("empty source")
)

// isValidURL checks if a string is an HTTP or HTTPS URL
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Factory returns the appropriate source for the given spec: "-" reads
// standard input, http(s) URLs are fetched, anything else is a local file
func Factory(spec string) (Source, error) {
	switch {
	case spec == "":
		return nil, ErrEmptySource
	case spec == "-":
		return NewStdin(nil), nil
	case isValidURL(spec):
		return NewRemote(spec, nil)
	default:
		return NewLocal(spec), nil
	}
}
