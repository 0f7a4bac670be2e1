// Package stack implements a persistent last-in-first-out stack.
//
// Every operation returns a new Stack value; existing structure is never
// mutated, and derived stacks share their tails, so Push, Peek and Pop
// are O(1). Any number of goroutines may hold, iterate and derive from
// the same value concurrently without locking. Two stacks are equal when
// they hold equal elements in the same order, never by identity.
package stack

import (
	"errors"
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/olimci/fuhen/pkg/set"
)

// ErrEmpty is the panic value of Peek and Pop on an empty stack. Callers
// that anticipate emptiness should use TryPeek, TryPop, MatchPeek or
// MatchPop instead.
var ErrEmpty = errors.New("stack: empty stack")

// stringCap bounds String output; longer stacks end in an ellipsis marker.
const stringCap = 50

// Stack is an immutable stack. The zero value is the empty stack and is
// ready to use; it behaves identically to Empty().
type Stack[A comparable] struct {
	head *node[A]
}

// Empty returns the empty stack.
func Empty[A comparable]() Stack[A] {
	return Stack[A]{}
}

// New builds a stack from items with the first item on top. The stack
// keeps its own chain; the argument slice is not retained.
func New[A comparable](items ...A) Stack[A] {
	return Stack[A]{head: fromSlice(items)}
}

// FromSeq builds a stack from seq with the first element on top.
func FromSeq[A comparable](seq iter.Seq[A]) Stack[A] {
	var items []A
	for v := range seq {
		items = append(items, v)
	}
	return Stack[A]{head: fromSlice(items)}
}

// Len returns the number of elements in O(1).
func (s Stack[A]) Len() int {
	return s.head.length()
}

// IsEmpty reports whether the stack has no elements.
func (s Stack[A]) IsEmpty() bool {
	return s.head == nil
}

// Push returns a stack with v on top. O(1); the receiver's chain becomes
// the new stack's remainder.
func (s Stack[A]) Push(v A) Stack[A] {
	return Stack[A]{head: s.head.push(v)}
}

// Peek returns the top element. Panics with ErrEmpty on an empty stack.
func (s Stack[A]) Peek() A {
	if s.head == nil {
		panic(ErrEmpty)
	}
	return s.head.value
}

// TryPeek returns the top element if there is one.
func (s Stack[A]) TryPeek() (A, bool) {
	if s.head == nil {
		var zero A
		return zero, false
	}
	return s.head.value, true
}

// Pop returns the stack without its top element. Panics with ErrEmpty on
// an empty stack.
func (s Stack[A]) Pop() Stack[A] {
	if s.head == nil {
		panic(ErrEmpty)
	}
	return Stack[A]{head: s.head.next}
}

// TryPop returns the stack without its top element along with the removed
// element. On an empty stack it returns the receiver unchanged, the zero
// value and false.
func (s Stack[A]) TryPop() (Stack[A], A, bool) {
	if s.head == nil {
		var zero A
		return s, zero, false
	}
	return Stack[A]{head: s.head.next}, s.head.value, true
}

// Reverse returns a stack with the element order inverted. O(n).
func (s Stack[A]) Reverse() Stack[A] {
	return Stack[A]{head: s.head.reverse()}
}

// Concat returns other stacked on top of the receiver: other's top stays
// the combined top and the receiver ends up underneath, both keeping
// their internal order. Empty is the identity on either side and Concat
// is associative. The receiver's chain is shared by the result.
func (s Stack[A]) Concat(other Stack[A]) Stack[A] {
	out := s.head
	for cur := other.head.reverse(); cur != nil; cur = cur.next {
		out = out.push(cur.value)
	}
	return Stack[A]{head: out}
}

// Subtract returns the elements of the receiver that are not present in
// other, in the receiver's top-to-bottom order. Duplicates among the
// survivors are removed as well (set-difference semantics); the first
// occurrence wins.
func (s Stack[A]) Subtract(other Stack[A]) Stack[A] {
	exclude := set.FromSeq(other.All())
	keep := make([]A, 0, s.Len())
	for v := range s.All() {
		if exclude.Has(v) {
			continue
		}
		exclude.Add(v)
		keep = append(keep, v)
	}
	return New(keep...)
}

// Equal reports whether both stacks hold equal elements in the same
// order. Whether their chains share cells is irrelevant.
func (s Stack[A]) Equal(other Stack[A]) bool {
	if s.head.length() != other.head.length() {
		return false
	}
	for a, b := s.head, other.head; a != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive content hash. Under the same seed,
// equal stacks hash equal regardless of how they were built or whether
// they share structure.
func (s Stack[A]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for cur := s.head; cur != nil; cur = cur.next {
		maphash.WriteComparable(&h, cur.value)
	}
	return h.Sum64()
}

// All returns a top-to-bottom iterator over the elements. The sequence
// is finite and restartable; every range starts a fresh traversal.
func (s Stack[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for cur := s.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Clear returns the empty stack.
func (s Stack[A]) Clear() Stack[A] {
	return Stack[A]{}
}

// String renders up to 50 elements, top first. Presentation only; it has
// no bearing on equality or hashing.
func (s Stack[A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	n := 0
	for cur := s.head; cur != nil && n < stringCap; cur = cur.next {
		if n > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, cur.value)
		n++
	}
	if s.Len() > stringCap {
		b.WriteString(" ...")
	}
	b.WriteByte(']')
	return b.String()
}

// Join renders every element, top first, separated by sep.
func (s Stack[A]) Join(sep string) string {
	var b strings.Builder
	for cur := s.head; cur != nil; cur = cur.next {
		if cur != s.head {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, cur.value)
	}
	return b.String()
}
