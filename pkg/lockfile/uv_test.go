package lockfile

import (
	"slices"
	"testing"

	"github.com/matzehuels/lockgraph/pkg/bundle"
)

const uvLock = `version = 1
requires-python = ">=3.11"

[manifest]
members = ["shop", "shop-core"]

[[package]]
name = "shop"
version = "0.1.0"
source = { virtual = "." }
dependencies = [
    { name = "shop-core" },
    { name = "httpx" },
]

[package.optional-dependencies]
cli = [{ name = "click" }]

[package.dev-dependencies]
dev = [{ name = "pytest" }]

[[package]]
name = "shop-core"
version = "0.1.0"
source = { editable = "packages/core" }
dependencies = [{ name = "anyio", version = "4.3.0" }]

[[package]]
name = "httpx"
version = "0.27.0"
source = { registry = "https://pypi.org/simple" }
dependencies = [{ name = "anyio" }, { name = "certifi" }]

[[package]]
name = "anyio"
version = "3.7.1"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "anyio"
version = "4.3.0"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "certifi"
version = "2024.2.2"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "click"
version = "8.1.7"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "pytest"
version = "8.0.0"
source = { registry = "https://pypi.org/simple" }
`

func TestUVLock_Supports(t *testing.T) {
	p := &UVLock{}
	for name, want := range map[string]bool{
		"uv.lock":           true,
		"uv-workspace.lock": true,
		"poetry.lock":       false,
		"UV.lock":           false,
	} {
		if got := p.Supports(name); got != want {
			t.Errorf("Supports(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestUVLock_Parse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "uv.lock", uvLock)
	b, err := (&UVLock{}).Parse(path, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	kinds := map[string]bundle.Kind{}
	for _, c := range b.Components {
		kinds[c.ID] = c.Kind
	}
	if kinds["pkg:pypi/shop@0.1.0"] != bundle.KindProject || kinds["pkg:pypi/shop-core@0.1.0"] != bundle.KindProject {
		t.Errorf("workspace members not marked as projects: %v", kinds)
	}
	if kinds["pkg:pypi/httpx@0.27.0"] != bundle.KindDependency {
		t.Errorf("httpx kind = %q", kinds["pkg:pypi/httpx@0.27.0"])
	}

	wantShop := []string{
		"pkg:pypi/shop-core@0.1.0",
		"pkg:pypi/httpx@0.27.0",
		"pkg:pypi/click@8.1.7",
		"pkg:pypi/pytest@8.0.0",
	}
	if got := edgesOf(t, b, "pkg:pypi/shop@0.1.0"); !slices.Equal(got, wantShop) {
		t.Errorf("shop deps = %v, want %v", got, wantShop)
	}
	// A pinned version picks the matching entry; an unpinned one the first.
	if got := edgesOf(t, b, "pkg:pypi/shop-core@0.1.0"); !slices.Equal(got, []string{"pkg:pypi/anyio@4.3.0"}) {
		t.Errorf("shop-core deps = %v", got)
	}
	if got := edgesOf(t, b, "pkg:pypi/httpx@0.27.0"); !slices.Equal(got, []string{"pkg:pypi/anyio@3.7.1", "pkg:pypi/certifi@2024.2.2"}) {
		t.Errorf("httpx deps = %v", got)
	}

	if want := []string{"pkg:pypi/shop@0.1.0"}; !slices.Equal(b.Roots, want) {
		t.Errorf("roots = %v, want %v", b.Roots, want)
	}
	if got := b.GroupsOf("click"); !slices.Equal(got, []string{"cli"}) {
		t.Errorf("GroupsOf(click) = %v", got)
	}
	if got := b.GroupsOf("pytest"); !slices.Equal(got, []string{"dev"}) {
		t.Errorf("GroupsOf(pytest) = %v", got)
	}
}

func TestUVLock_WorkspaceLockName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "uv-workspace.lock", uvLock)
	p, err := Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Parse(path, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(b.Components) != 8 {
		t.Errorf("components = %d, want 8", len(b.Components))
	}
}
