package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultOperations are the lakeFS operations the SDK implements.
var defaultOperations = []string{"healthCheck", "listBranches", "listTags", "getOtfDiffs", "otfDiff"}

const defaultModelImport = "github.com/treeverse/lakefs-go/model"

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"patch": true, "head": true, "options": true, "trace": true,
}

type options struct {
	operations  []string
	modelImport string
}

func main() {
	var inPath string
	var outPath string
	var ops string
	var modelImport string
	flag.StringVar(&inPath, "in", "", "Input lakeFS OpenAPI document (YAML or JSON)")
	flag.StringVar(&outPath, "out", "", "Output OpenAPI YAML path")
	flag.StringVar(&ops, "ops", strings.Join(defaultOperations, ","), "Comma separated operationIds to keep")
	flag.StringVar(&modelImport, "model-import", defaultModelImport, "Go import path of the hand-written model package")
	flag.Parse()

	if inPath == "" || outPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: specfix -in <swagger.yml> -out <out.yaml> [-ops a,b] [-model-import path]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "specfix: read: %v\n", err)
		os.Exit(1)
	}

	out, err := run(raw, options{operations: splitList(ops), modelImport: modelImport})
	if err != nil {
		fmt.Fprintf(os.Stderr, "specfix: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "specfix: mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "specfix: write: %v\n", err)
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// run keeps the requested operations and the components they reach, maps
// every kept schema onto the model package and re-encodes the document.
func run(raw []byte, opts options) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse: document root is not a mapping")
	}
	root := doc.Content[0]

	fix(root)
	if err := keepOperations(root, opts.operations); err != nil {
		return nil, err
	}
	pruneComponents(root)
	annotateSchemas(root, opts.modelImport)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

// fix downgrades OpenAPI 3.1 markers the generator cannot handle: the version
// string and ["T", "null"] type arrays become "3.0.3" and type T with nullable.
func fix(root *yaml.Node) {
	if v := mappingValue(root, "openapi"); v != nil && strings.HasPrefix(v.Value, "3.1") {
		v.Value = "3.0.3"
	}
	fixNullable(root)
}

func fixNullable(node *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode:
		transformNullableTypeArray(node)
		for i := 1; i < len(node.Content); i += 2 {
			fixNullable(node.Content[i])
		}
	case yaml.SequenceNode:
		for _, child := range node.Content {
			fixNullable(child)
		}
	}
}

func transformNullableTypeArray(obj *yaml.Node) bool {
	t := mappingValue(obj, "type")
	if t == nil || t.Kind != yaml.SequenceNode || len(t.Content) != 2 {
		return false
	}
	nullFound := false
	other := ""
	for _, item := range t.Content {
		if item.Kind != yaml.ScalarNode {
			return false
		}
		if item.Value == "null" {
			nullFound = true
		} else {
			other = item.Value
		}
	}
	if !nullFound || other == "" {
		return false
	}
	setMappingValue(obj, "type", scalar(other))
	setMappingValue(obj, "nullable", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	return true
}

// keepOperations drops every operation whose operationId is not listed, and
// path items left without operations.
func keepOperations(root *yaml.Node, ids []string) error {
	paths := mappingValue(root, "paths")
	if paths == nil {
		return fmt.Errorf("document has no paths")
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	found := make(map[string]bool, len(ids))

	filterMapping(paths, func(_ string, item *yaml.Node) bool {
		kept := 0
		filterMapping(item, func(key string, op *yaml.Node) bool {
			if !httpMethods[key] {
				return true
			}
			id := mappingValue(op, "operationId")
			if id == nil || !want[id.Value] {
				return false
			}
			found[id.Value] = true
			kept++
			return true
		})
		return kept > 0
	})

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("operations not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// pruneComponents keeps the components transitively referenced from paths.
// Security schemes are referenced by name rather than $ref and always kept.
func pruneComponents(root *yaml.Node) {
	components := mappingValue(root, "components")
	if components == nil {
		return
	}

	reached := map[string]bool{}
	var queue []string
	enqueue := func(node *yaml.Node) {
		collectRefs(node, func(ref string) {
			if !reached[ref] {
				reached[ref] = true
				queue = append(queue, ref)
			}
		})
	}
	enqueue(mappingValue(root, "paths"))
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		section, name, ok := splitComponentRef(ref)
		if !ok {
			continue
		}
		enqueue(mappingValue(mappingValue(components, section), name))
	}

	filterMapping(components, func(section string, entries *yaml.Node) bool {
		if section == "securitySchemes" {
			return true
		}
		filterMapping(entries, func(name string, _ *yaml.Node) bool {
			return reached["#/components/"+section+"/"+name]
		})
		return len(entries.Content) > 0
	})
}

func collectRefs(node *yaml.Node, visit func(string)) {
	if node == nil {
		return
	}
	if node.Kind == yaml.MappingNode {
		if ref := mappingValue(node, "$ref"); ref != nil && ref.Kind == yaml.ScalarNode {
			visit(ref.Value)
		}
	}
	for _, child := range node.Content {
		collectRefs(child, visit)
	}
}

func splitComponentRef(ref string) (section, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, "#/components/")
	if !found {
		return "", "", false
	}
	section, name, ok = strings.Cut(rest, "/")
	return section, name, ok && name != ""
}

// annotateSchemas points every object schema at the model type of the same
// name so oapi-codegen emits aliases instead of structs.
func annotateSchemas(root *yaml.Node, modelImport string) {
	schemas := mappingValue(mappingValue(root, "components"), "schemas")
	if schemas == nil {
		return
	}
	pkg := modelImport[strings.LastIndex(modelImport, "/")+1:]

	names := make([]string, 0, len(schemas.Content)/2)
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		names = append(names, schemas.Content[i].Value)
	}
	sort.Strings(names)

	for _, name := range names {
		s := mappingValue(schemas, name)
		if t := mappingValue(s, "type"); t == nil || t.Value != "object" {
			continue
		}
		if mappingValue(s, "x-go-type") != nil {
			continue
		}
		setMappingValue(s, "x-go-type", scalar(pkg+"."+name))
		setMappingValue(s, "x-go-type-import", &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{scalar("path"), scalar(modelImport)},
		})
	}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func setMappingValue(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, scalar(key), value)
}

func filterMapping(m *yaml.Node, keep func(key string, value *yaml.Node) bool) {
	if m == nil || m.Kind != yaml.MappingNode {
		return
	}
	content := m.Content[:0]
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keep(m.Content[i].Value, m.Content[i+1]) {
			content = append(content, m.Content[i], m.Content[i+1])
		}
	}
	m.Content = content
}
