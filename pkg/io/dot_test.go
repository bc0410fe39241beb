package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/lockgraph/pkg/depgraph"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

func TestToDOT_Full(t *testing.T) {
	idx, err := depgraph.New(djangoBundle())
	if err != nil {
		t.Fatal(err)
	}
	dot, err := ToDOT(idx, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"digraph G {",
		`"pkg:pypi/django@4.2" [label="Django\n4.2", penwidth=2];`,
		`"pkg:pypi/asgiref@3.7.2" [label="asgiref\n3.7.2"];`,
		`"pkg:pypi/django@4.2" -> "pkg:pypi/asgiref@3.7.2";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s:\n%s", want, dot)
		}
	}
}

func TestToDOT_Node(t *testing.T) {
	idx, err := depgraph.New(djangoBundle())
	if err != nil {
		t.Fatal(err)
	}
	dot, err := ToDOT(idx, "pkg:pypi/asgiref@3.7.2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(dot, "django") {
		t.Errorf("node DOT should only contain the node and its dependencies:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("leaf node should have no edges:\n%s", dot)
	}

	if _, err := ToDOT(idx, "missing"); !lgerrors.Is(err, lgerrors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestToDOT_Stable(t *testing.T) {
	idx, err := depgraph.New(djangoBundle())
	if err != nil {
		t.Fatal(err)
	}
	var a, b bytes.Buffer
	if err := WriteDOT(idx, "", &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteDOT(idx, "", &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("DOT output should be stable")
	}
}
