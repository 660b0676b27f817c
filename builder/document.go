// SPDX-License-Identifier: MIT

package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/core"
)

// Document is the serialized form of a graph: an explicit node list followed
// by directed weighted edges.
type Document struct {
	Nodes []core.NodeKey `yaml:"nodes" json:"nodes"`
	Edges []DocumentEdge `yaml:"edges" json:"edges"`
}

// DocumentEdge is one directed edge of a Document.
type DocumentEdge struct {
	From   core.NodeKey `yaml:"from" json:"from"`
	To     core.NodeKey `yaml:"to" json:"to"`
	Weight uint32       `yaml:"weight" json:"weight"`
}

// FromFile loads a graph document, choosing the decoder by extension:
// .yaml, .yml or .json.
func FromFile(path string) (*core.Graph, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var decode func([]byte) (*core.Graph, error)
	switch ext {
	case ".yaml", ".yml":
		decode = FromYAML
	case ".json":
		decode = FromJSON
	default:
		return nil, fmt.Errorf("%s: extension %q: %w", methodFromFile, ext, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", methodFromFile, path, err)
	}
	g, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodFromFile, path, err)
	}

	return g, nil
}

// FromYAML decodes a YAML graph document. Unknown fields are rejected.
func FromYAML(data []byte) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %w", methodFromYAML, ErrBadDocument, err)
	}

	return FromDocument(doc)
}

// FromJSON decodes a JSON graph document. Unknown fields are rejected.
func FromJSON(data []byte) (*core.Graph, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodFromJSON, ErrBadDocument, err)
	}

	return FromDocument(doc)
}

// FromDocument builds a graph from doc: nodes in listed order, then edges in
// listed order. Any core error (duplicate node or edge, edge endpoint not in
// the node list) is reported as ErrBadDocument wrapping the core sentinel.
func FromDocument(doc Document) (*core.Graph, error) {
	g := core.NewGraph()
	for i, k := range doc.Nodes {
		if err := g.AddNode(k); err != nil {
			return nil, fmt.Errorf("%s: nodes[%d]: %w: %w", methodFromDocument, i, ErrBadDocument, err)
		}
	}
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%s: edges[%d]: %w: %w", methodFromDocument, i, ErrBadDocument, err)
		}
	}

	return g, nil
}

// ToDocument snapshots g into a Document. Nodes are listed ascending and each
// node's edges follow in storage order, so FromDocument(ToDocument(g))
// answers every query the way g does.
func ToDocument(g core.View) Document {
	doc := Document{Nodes: g.GetNodes()}
	for _, n := range doc.Nodes {
		edges, err := g.GetOutwardEdgesFrom(n)
		if err != nil {
			continue
		}
		for _, e := range edges {
			doc.Edges = append(doc.Edges, DocumentEdge{From: e.From(), To: e.To(), Weight: e.Weight()})
		}
	}

	return doc
}

// WriteYAML encodes doc as YAML to w.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
