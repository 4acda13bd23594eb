// Package arrkit is your in-memory playground for building arrays from
// scratch — raw block allocation, fixed and growable containers, and the
// classic searching algorithms that run on top of them.
//
// 🚀 What is arrkit?
//
//	A teaching-grade, zero-dependency library that brings together:
//		• Allocation seam: typed blocks, checked layouts, countable alloc/dealloc
//		• Fixed arrays: one allocation, hard capacity, explicit lifetime
//		• Dynamic arrays: amortized doubling, hysteresis shrink, consuming iterator
//		• Searching: linear, binary, jump, interpolation — with probe hooks
//
// ✨ Why choose arrkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every invariant in-code documented & tested
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnProbe…) and allocators for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	alloc/      — Block, Layout & Allocator seam every container builds on
//	fixedarray/ — capacity-bounded Array with push/pop/get/set
//	dynarray/   — growable DynamicArray, shrink policy, Drain iterator
//	search/     — linear, binary, jump & interpolation search over any Sequence
//
// Quick ASCII example:
//
//	    cap=4           grow ×2            cap=8
//	    [a b c d]  ──────────────▶  [a b c d e . . .]
//
//	one block, elements moved in order, old block released last.
//
// Next up: sorting algorithms, slices-of-blocks, and beyond.
// Dive into README.md for full examples, a feature matrix, and our roadmap.
//
//	go get github.com/katalvlaran/arrkit
package arrkit
