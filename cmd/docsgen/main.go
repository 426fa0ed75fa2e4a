package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"html"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/treeverse/lakefs-go/internal/schema"
)

type page struct {
	version string
	godoc   string
}

func main() {
	var outDir string
	var withGoDoc bool
	flag.StringVar(&outDir, "out", "build/docs", "Output directory")
	flag.BoolVar(&withGoDoc, "godoc", true, "Append `go doc` output for the public packages")
	flag.Parse()

	version := os.Getenv("VERSION")
	if strings.TrimSpace(version) == "" {
		version = "0.0.0"
	}

	reg, err := schema.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: %v\n", err)
		os.Exit(1)
	}

	p := page{version: version}
	if withGoDoc {
		var docBuf strings.Builder
		for _, pkg := range []string{".", "./model"} {
			out, err := goDocPackage(pkg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "docsgen: go doc failed for %s: %v\n", pkg, err)
				os.Exit(1)
			}
			docBuf.WriteString("\n=== ")
			docBuf.WriteString(pkg)
			docBuf.WriteString(" ===\n\n")
			docBuf.WriteString(out)
			if !strings.HasSuffix(out, "\n") {
				docBuf.WriteString("\n")
			}
		}
		p.godoc = docBuf.String()
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: mkdir: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := render(&buf, reg, p); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: render: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: write: %v\n", err)
		os.Exit(1)
	}
}

// render writes the operation index and one property table per model.
func render(w io.Writer, reg *schema.Registry, p page) error {
	esc := html.EscapeString
	var b strings.Builder

	fmt.Fprintf(&b, `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>lakeFS Go SDK Docs (v%s)</title>
  <style>
    :root { color-scheme: light dark; }
    body { max-width: 960px; margin: 0 auto; padding: 24px; font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; }
    h1 { margin: 0 0 12px; }
    table { border-collapse: collapse; width: 100%%; margin: 0 0 18px; }
    th, td { text-align: left; padding: 4px 8px; border-bottom: 1px solid rgba(127,127,127,0.35); }
    pre { padding: 12px; overflow: auto; border: 1px solid rgba(127,127,127,0.35); border-radius: 8px; }
    code { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace; }
    .meta { opacity: 0.8; margin: 0 0 18px; }
  </style>
</head>
<body>
  <h1>lakeFS Go SDK</h1>
  <p class="meta">Version: <code>%s</code></p>
`, esc(p.version), esc(p.version))

	b.WriteString("  <h2>Operations</h2>\n  <table>\n    <tr><th>Operation</th><th>Method</th><th>Path</th><th>Summary</th></tr>\n")
	for _, op := range reg.Operations() {
		fmt.Fprintf(&b, "    <tr><td><code>%s</code></td><td>%s</td><td><code>%s</code></td><td>%s</td></tr>\n",
			esc(op.ID), esc(op.Method), esc(op.Path), esc(op.Summary))
	}
	b.WriteString("  </table>\n  <h2>Models</h2>\n")

	for _, name := range reg.Names() {
		fields, err := reg.Fields(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  <h3 id=\"%s\">%s</h3>\n  <table>\n    <tr><th>Property</th><th>Type</th><th>Required</th><th>Nullable</th><th>Description</th></tr>\n",
			esc(name), esc(name))
		for _, f := range fields {
			fmt.Fprintf(&b, "    <tr><td><code>%s</code></td><td><code>%s</code></td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(f.Name), esc(f.Type), yesNo(f.Required), yesNo(f.Nullable), esc(f.Description))
		}
		b.WriteString("  </table>\n")
	}

	if p.godoc != "" {
		b.WriteString("  <h2>Package reference</h2>\n  <p class=\"meta\">Generated from <code>go doc</code>.</p>\n")
		fmt.Fprintf(&b, "  <pre><code>%s</code></pre>\n", esc(p.godoc))
	}
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func goDocPackage(pkg string) (string, error) {
	cmd := exec.Command("go", "doc", "-all", pkg)
	cmd.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
