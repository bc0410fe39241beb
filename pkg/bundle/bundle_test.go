package bundle

import (
	"slices"
	"testing"
)

func TestParentComponent_Absent(t *testing.T) {
	var nilBundle *Bundle
	if _, ok := nilBundle.ParentComponent(); ok {
		t.Error("nil bundle should report no parent")
	}

	b := &Bundle{}
	p, ok := b.ParentComponent()
	if ok {
		t.Error("empty bundle should report no parent")
	}
	if p != (ParentComponent{}) {
		t.Errorf("absent parent = %+v, want zero value", p)
	}
}

func TestParentComponent_Present(t *testing.T) {
	b := &Bundle{Parent: &ParentComponent{Name: "app", Version: "1.0.0"}}
	p, ok := b.ParentComponent()
	if !ok {
		t.Fatal("parent should be present")
	}
	if p.Name != "app" || p.Version != "1.0.0" {
		t.Errorf("parent = %+v", p)
	}
}

func TestGroupsOf(t *testing.T) {
	b := &Bundle{}
	b.AddGroup("pytest", "test")
	b.AddGroup("pytest", "dev")
	b.AddGroup("pytest", "dev")
	b.AddGroup("Black", "lint")

	if got := b.GroupsOf("pytest"); !slices.Equal(got, []string{"dev", "test"}) {
		t.Errorf("GroupsOf(pytest) = %v, want [dev test]", got)
	}
	if got := b.GroupsOf("black"); !slices.Equal(got, []string{"lint"}) {
		t.Errorf("GroupsOf(black) = %v, want [lint]", got)
	}
	if got := b.GroupsOf("requests"); got != nil {
		t.Errorf("GroupsOf(requests) = %v, want nil", got)
	}
	if got := len(b.Groups["pytest"]); got != 2 {
		t.Errorf("pytest has %d group entries, want 2", got)
	}
}

func TestEdgeCount(t *testing.T) {
	b := &Bundle{Dependencies: []EdgeSet{
		{Ref: "a", DependsOn: []string{"b", "c"}},
		{Ref: "b", DependsOn: []string{"c"}},
		{Ref: "c"},
	}}
	if got := b.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}

	var nilBundle *Bundle
	if got := nilBundle.EdgeCount(); got != 0 {
		t.Errorf("nil EdgeCount() = %d, want 0", got)
	}
}

func TestModeFlags(t *testing.T) {
	tests := []struct {
		flags ModeFlags
		want  bool
	}{
		{ModeFlags{}, false},
		{ModeFlags{Poetry: true}, true},
		{ModeFlags{UV: true, Hatch: true}, true},
	}
	for _, tt := range tests {
		if got := tt.flags.Any(); got != tt.want {
			t.Errorf("%+v.Any() = %v, want %v", tt.flags, got, tt.want)
		}
	}
}

func TestComponentKind(t *testing.T) {
	if (Component{}).IsProject() {
		t.Error("empty kind should read as dependency")
	}
	if !(Component{Kind: KindProject}).IsProject() {
		t.Error("project kind should report IsProject")
	}
}

func TestGroupsOf_NormalizedNames(t *testing.T) {
	b := &Bundle{Groups: map[string][]string{"ruamel-yaml": {"dev"}}}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"dotted", "ruamel.yaml", []string{"dev"}},
		{"underscore and case", "Ruamel_YAML", []string{"dev"}},
		{"already normalized", "ruamel-yaml", []string{"dev"}},
		{"separator run", "ruamel._yaml", []string{"dev"}},
		{"different package", "ruamel", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.GroupsOf(tt.query); !slices.Equal(got, tt.want) {
				t.Errorf("GroupsOf(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestGroupsOf_MergesSpellings(t *testing.T) {
	b := &Bundle{Groups: map[string][]string{
		"Foo":     {"test", "lint"},
		"foo":     {"dev", "test"},
		"foo.bar": {"docs"},
	}}

	want := []string{"dev", "lint", "test"}
	for i := 0; i < 20; i++ {
		if got := b.GroupsOf("FOO"); !slices.Equal(got, want) {
			t.Fatalf("GroupsOf(FOO) = %v, want %v", got, want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Django", "django"},
		{"ruamel.yaml", "ruamel-yaml"},
		{"zope_interface", "zope-interface"},
		{"a-_.b", "a-b"},
		{"  Pillow ", "pillow"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
