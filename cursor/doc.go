// SPDX-License-Identifier: MIT
// Package cursor defines position cursors over finite sequences and the
// capability classes a numeric kernel may demand from them.
//
// A cursor is an opaque, copyable position inside a sequence. Two cursors
// compare equal with == exactly when they denote the same position of the
// same sequence, so a half-open range is simply a (begin, end) pair.
//
// Capability classes:
//
//	Forward[C]        — Next, Distance, ==
//	Bidirectional[C]  — Forward + Prev
//	Reader[C, T]      — Forward + Value
//	BidiReader[C, T]  — Bidirectional + Value
//	Writer[C, T]      — Reader + Set
//
// Concrete adapters:
//
//	Slice[T] — random access over a Go slice; Distance is O(1).
//	List[T]  — bidirectional over container/list; Distance is O(n).
//	Chain[T] — forward-only singly linked storage; Distance is O(n).
//
// Cursors never own storage. Set writes through to the caller's slice,
// list element or chain node.
//
// Distance returns a negative value when the target is not reachable by
// forward steps; callers treat a negative length as an unreachable end.
package cursor
