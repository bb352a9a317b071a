package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local resolves script output from a local file
type Local struct {
	path string
}

// NewLocal creates a new Local source
func NewLocal(path string) *Local {
	return &Local{path: path}
}

// Resolve reads the file contents
func (l *Local) Resolve(ctx context.Context) (string, *Metadata, error) {
	// Check context cancellation
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", nil, fmt.Errorf("not a regular file: %s", l.path)
	}

	content, err := os.ReadFile(l.path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	return string(content), &Metadata{
		Name:    l.path,
		Type:    TypeFile,
		Path:    l.path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Stdin resolves script output from standard input
type Stdin struct {
	reader io.Reader
}

// NewStdin creates a new Stdin source. A nil reader means os.Stdin; tests
// pass their own reader.
func NewStdin(reader io.Reader) *Stdin {
	if reader == nil {
		reader = os.Stdin
	}
	return &Stdin{reader: reader}
}

// Resolve reads standard input to EOF
func (s *Stdin) Resolve(ctx context.Context) (string, *Metadata, error) {
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	content, err := io.ReadAll(s.reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(content), &Metadata{
		Name: "-",
		Type: TypeStdin,
		Path: "-",
		Size: int64(len(content)),
	}, nil
}
