// SPDX-License-Identifier: MIT
// Package frontier_test compares the linear-scan and indexed frontiers.
package frontier_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/frontier"
)

// benchDecrease fills q with n unreached entries and decreases each once.
func benchDecrease(b *testing.B, n int, mk func(int) frontier.Frontier) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := mk(n)
		for k := 0; k < n; k++ {
			q.Push(frontier.NewEntry(core.NodeKey(k)))
		}
		for k := n - 1; k >= 0; k-- {
			q.DecreaseOrUpdate(core.NodeKey(k), int64(k))
		}
		for !q.IsEmpty() {
			_, _ = q.PopMin()
		}
	}
}

func BenchmarkDecreaseOrUpdate(b *testing.B) {
	for _, n := range []int{16, 256, 1024} {
		b.Run(fmt.Sprintf("scan/n=%d", n), func(b *testing.B) {
			benchDecrease(b, n, func(c int) frontier.Frontier { return frontier.NewScanQueue(c) })
		})
		b.Run(fmt.Sprintf("indexed/n=%d", n), func(b *testing.B) {
			benchDecrease(b, n, func(c int) frontier.Frontier { return frontier.NewIndexedQueue(c) })
		})
	}
}
