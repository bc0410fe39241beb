package lockfile

import (
	"slices"
	"testing"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

const poetryLock = `[[package]]
name = "requests"
version = "2.31.0"
description = "Python HTTP for Humans."
category = "main"
optional = false
python-versions = ">=3.7"

[package.dependencies]
urllib3 = ">=1.21.1,<3"
certifi = ">=2017.4.17"
win-inet-pton = {version = "*", markers = "sys_platform == \"win32\""}

[[package]]
name = "certifi"
version = "2024.2.2"
category = "main"

[[package]]
name = "urllib3"
version = "2.2.1"
category = "main"

[metadata]
lock-version = "2.0"
python-versions = "^3.10"
content-hash = "abc123"
`

func TestPoetryLock_Supports(t *testing.T) {
	parser := &PoetryLock{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"poetry.lock", true},
		{"Poetry.lock", false},
		{"pdm.lock", false},
		{"pyproject.toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := parser.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPoetryLock_Parse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poetry.lock", poetryLock)

	var logged []string
	opts := Options{Logger: func(format string, args ...any) { logged = append(logged, format) }}
	b, err := (&PoetryLock{}).Parse(path, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantIDs := []string{"pkg:pypi/requests@2.31.0", "pkg:pypi/certifi@2024.2.2", "pkg:pypi/urllib3@2.2.1"}
	if got := componentIDs(b); !slices.Equal(got, wantIDs) {
		t.Errorf("components = %v, want %v", got, wantIDs)
	}
	// Sorted by name; win-inet-pton is not locked and is skipped.
	wantDeps := []string{"pkg:pypi/certifi@2024.2.2", "pkg:pypi/urllib3@2.2.1"}
	if got := edgesOf(t, b, "pkg:pypi/requests@2.31.0"); !slices.Equal(got, wantDeps) {
		t.Errorf("requests deps = %v, want %v", got, wantDeps)
	}
	if got := edgesOf(t, b, "pkg:pypi/certifi@2024.2.2"); len(got) != 0 {
		t.Errorf("certifi deps = %v, want none", got)
	}
	if want := []string{"pkg:pypi/requests@2.31.0"}; !slices.Equal(b.Roots, want) {
		t.Errorf("roots = %v, want %v", b.Roots, want)
	}
	if b.Parent != nil {
		t.Errorf("lock alone produced parent %+v", b.Parent)
	}
	if len(b.Groups) != 0 {
		t.Errorf("main category produced groups %v", b.Groups)
	}
	if !slices.Contains(logged, "skipping dependency %s of %s: not in lock") {
		t.Errorf("unlocked dependency not logged: %v", logged)
	}
	for _, c := range b.Components {
		if c.Kind != bundle.KindDependency || c.PURL != c.ID {
			t.Errorf("component %+v", c)
		}
	}
}

func TestPoetryLock_Groups(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poetry.lock", `
[[package]]
name = "pytest"
version = "8.0.0"
category = "dev"

[[package]]
name = "mypy"
version = "1.9.0"
groups = ["main", "lint", "typing"]
`)
	b, err := (&PoetryLock{}).Parse(path, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.GroupsOf("pytest"); !slices.Equal(got, []string{"dev"}) {
		t.Errorf("GroupsOf(pytest) = %v", got)
	}
	if got := b.GroupsOf("mypy"); !slices.Equal(got, []string{"lint", "typing"}) {
		t.Errorf("GroupsOf(mypy) = %v", got)
	}
}

func TestPoetryLock_DuplicateNames(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poetry.lock", `
[[package]]
name = "numpy"
version = "1.26.4"

[[package]]
name = "numpy"
version = "1.26.4"
`)
	b, err := (&PoetryLock{}).Parse(path, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"pkg:pypi/numpy@1.26.4", "pkg:pypi/numpy@1.26.4#2"}
	if got := componentIDs(b); !slices.Equal(got, want) {
		t.Errorf("components = %v, want %v", got, want)
	}
}

func TestPoetryLock_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poetry.lock", "[[package]\nname = ")
	_, err := (&PoetryLock{}).Parse(path, Options{})
	if !lgerrors.Is(err, lgerrors.ErrCodeInvalidFormat) {
		t.Fatalf("Parse error = %v, want INVALID_FORMAT", err)
	}
}

func TestPoetryLock_GroupsDottedName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poetry.lock", `
[[package]]
name = "ruamel.yaml"
version = "0.18.6"
category = "dev"

[[package]]
name = "zope_interface"
version = "6.2"
groups = ["test"]
`)
	b, err := (&PoetryLock{}).Parse(path, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"ruamel.yaml", []string{"dev"}},
		{"ruamel-yaml", []string{"dev"}},
		{"zope_interface", []string{"test"}},
		{"zope.interface", []string{"test"}},
	}
	for _, tt := range tests {
		if got := b.GroupsOf(tt.query); !slices.Equal(got, tt.want) {
			t.Errorf("GroupsOf(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
