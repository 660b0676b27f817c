// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Diagnostic string renderings. Not part of any algorithm's contract.

package core

import "strings"

// NodesToString renders nodes in insertion order: "[(1), (2), (3)]".
func (g *Graph) NodesToString() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range g.nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		sb.WriteString(n.String())
		sb.WriteByte(')')
	}
	sb.WriteByte(']')

	return sb.String()
}

// EdgesToString renders edges row by row in storage order:
// "[((1)->(2) w:7), ((2)->(1) w:7)]".
func (g *Graph) EdgesToString() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for _, row := range g.adj {
		for _, e := range row {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(e.String())
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
