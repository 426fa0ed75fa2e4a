package model

import (
	"slices"

	"github.com/oapi-codegen/nullable"

	"github.com/treeverse/lakefs-go/internal/hashing"
)

// nullableListEqual compares two nullable lists by state, then element-wise.
func nullableListEqual[T any](a, b nullable.Nullable[[]T], eq func(x, y T) bool) bool {
	if a.IsSpecified() != b.IsSpecified() || a.IsNull() != b.IsNull() {
		return false
	}
	if !a.IsSpecified() || a.IsNull() {
		return true
	}
	return listEqual(a.MustGet(), b.MustGet(), eq)
}

// listEqual treats nil and empty as equal: both serialize as [].
func listEqual[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func hashList[T interface{ Hash() uint64 }](h *hashing.Hasher, items []T) {
	h.List(len(items))
	for _, item := range items {
		h.Nested(item.Hash())
	}
}

func hashNullableList[T interface{ Hash() uint64 }](h *hashing.Hasher, n nullable.Nullable[[]T]) {
	switch {
	case !n.IsSpecified():
		h.Absent()
	case n.IsNull():
		h.Null()
	default:
		hashList(h, n.MustGet())
	}
}

func cloneList[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// appendItem always appends into a fresh backing array, so values copied
// from the same list cannot overwrite each other's appends.
func appendItem[T any](items []T, item T) []T {
	return append(slices.Clip(items), item)
}

func nonNilList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
