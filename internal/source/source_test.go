package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFactory(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Type
		wantErr bool
	}{
		{name: "empty", spec: "", wantErr: true},
		{name: "stdin", spec: "-", want: TypeStdin},
		{name: "http url", spec: "http://example.com/output.txt", want: TypeRemote},
		{name: "https url", spec: "https://example.com/output.txt", want: TypeRemote},
		{name: "local path", spec: "/tmp/output.txt", want: TypeFile},
		{name: "relative path", spec: "output.txt", want: TypeFile},
		{name: "scheme without host", spec: "http://", want: TypeFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Factory(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Factory(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			var got Type
			switch src.(type) {
			case *Stdin:
				got = TypeStdin
			case *Remote:
				got = TypeRemote
			case *Local:
				got = TypeFile
			}
			if got != tt.want {
				t.Errorf("Factory(%q) = %T, want type %v", tt.spec, src, tt.want)
			}
		})
	}
}

func TestFactoryEmptySource(t *testing.T) {
	_, err := Factory("")
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("error = %v, want ErrEmptySource", err)
	}
}

func TestLocalResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	if err := os.WriteFile(path, []byte("abc##Router1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	content, meta, err := NewLocal(path).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if content != "abc##Router1\n" {
		t.Errorf("content = %q", content)
	}
	if meta.Type != TypeFile || meta.Path != path || meta.Size != int64(len(content)) {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestLocalResolveMissingFile(t *testing.T) {
	_, _, err := NewLocal(filepath.Join(t.TempDir(), "nope.txt")).Resolve(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLocalResolveDirectory(t *testing.T) {
	_, _, err := NewLocal(t.TempDir()).Resolve(context.Background())
	if err == nil {
		t.Error("expected error for directory")
	}
}

func TestLocalResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewLocal("/etc/hosts").Resolve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestStdinResolve(t *testing.T) {
	content, meta, err := NewStdin(strings.NewReader("cpu=1\n")).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if content != "cpu=1\n" {
		t.Errorf("content = %q", content)
	}
	if meta.Type != TypeStdin || meta.Name != "-" {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestRemoteResolve(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("a.cpu=1\n"))
	}))
	defer server.Close()

	remote, err := NewRemote(server.URL, server.Client())
	if err != nil {
		t.Fatal(err)
	}
	content, meta, err := remote.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if content != "a.cpu=1\n" {
		t.Errorf("content = %q", content)
	}
	if meta.Type != TypeRemote || meta.Path != server.URL {
		t.Errorf("metadata = %+v", meta)
	}
	if gotUserAgent != "scriptlens/1.0" {
		t.Errorf("user agent = %q", gotUserAgent)
	}
}

func TestRemoteResolveNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	remote, err := NewRemote(server.URL, server.Client())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := remote.Resolve(context.Background()); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestNewRemoteInvalidURL(t *testing.T) {
	if _, err := NewRemote("not a url", nil); err == nil {
		t.Error("expected error for invalid URL")
	}
}
