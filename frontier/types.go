// SPDX-License-Identifier: MIT

package frontier

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/shortpath/core"
)

// ErrEmpty is returned by PopMin and Peek when the frontier holds no entries.
var ErrEmpty = errors.New("frontier: empty")

// Infinity is the priority of an entry that has not been reached yet.
// It is larger than any finite distance a search can produce.
const Infinity int64 = math.MaxInt64

// Entry is a node with its tentative priority.
type Entry struct {
	Node     core.NodeKey // identity for lookup and update
	Priority int64        // smaller pops first
}

// NewEntry returns an unreached entry for node (Priority == Infinity).
func NewEntry(node core.NodeKey) Entry {
	return Entry{Node: node, Priority: Infinity}
}

// String renders the entry as "(node, pri: priority)".
func (e Entry) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(e.Node), 10)
	b = append(b, ", pri: "...)
	b = strconv.AppendInt(b, e.Priority, 10)
	b = append(b, ')')

	return string(b)
}

// Frontier is a min-priority container with decrease-key.
type Frontier interface {
	// Push inserts e. No duplicate suppression is performed.
	Push(e Entry)

	// PopMin removes and returns the entry with the smallest priority.
	PopMin() (Entry, error)

	// Peek returns the entry PopMin would return without removing it.
	Peek() (Entry, error)

	// Contains reports whether a live entry for node exists.
	Contains(node core.NodeKey) bool

	// DecreaseOrUpdate lowers node's priority to newPriority if that is
	// strictly better, restoring heap order. It reports whether it changed
	// anything; an absent node is a no-op returning false.
	DecreaseOrUpdate(node core.NodeKey, newPriority int64) bool

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Len returns the number of live entries.
	Len() int

	// String renders entries in storage order: "[(1, pri: 0), (2, pri: 7)]".
	String() string
}
