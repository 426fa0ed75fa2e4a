package main

import (
	"context"
	"strings"
	"testing"

	"github.com/treeverse/lakefs-go/internal/schema"
)

func TestRender(t *testing.T) {
	reg, err := schema.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var b strings.Builder
	if err := render(&b, reg, page{version: "1.2.3", godoc: "func NewClient(opts Options) (*Client, error)\n<tag>"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"<title>lakeFS Go SDK Docs (v1.2.3)</title>",
		"<code>otfDiff</code>",
		"<code>/repositories/{repository}/otf/refs/{left_ref}/diff/{right_ref}</code>",
		`<h3 id="OtfDiffList">OtfDiffList</h3>`,
		"<code>diffs</code></td><td><code>[]DiffProperties</code></td><td>no</td><td>yes</td>",
		"&lt;tag&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "<tag>") {
		t.Fatalf("go doc text must be escaped")
	}
}

func TestRender_WithoutGoDoc(t *testing.T) {
	reg, err := schema.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var b strings.Builder
	if err := render(&b, reg, page{version: "0.0.0"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(b.String(), "Package reference") {
		t.Fatalf("unexpected go doc section")
	}
}
