package stack

import (
	"hash/maphash"
	"slices"
	"testing"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var s Stack[int]
	if !s.IsEmpty() {
		t.Error("zero value IsEmpty = false, want true")
	}
	if s.Len() != 0 {
		t.Errorf("zero value Len = %d, want 0", s.Len())
	}
	if !s.Equal(Empty[int]()) {
		t.Error("zero value not Equal to Empty()")
	}
	seed := maphash.MakeSeed()
	if s.Hash(seed) != Empty[int]().Hash(seed) {
		t.Error("zero value hash differs from Empty() hash")
	}
}

func TestEmptyLaws(t *testing.T) {
	empty := Empty[int]()

	if _, ok := empty.TryPeek(); ok {
		t.Error("Empty TryPeek ok = true, want false")
	}
	if rest, _, ok := empty.TryPop(); ok || !rest.IsEmpty() {
		t.Errorf("Empty TryPop = (%v, ok=%v), want (empty, false)", rest, ok)
	}

	mustPanicEmpty(t, "Peek", func() { empty.Peek() })
	mustPanicEmpty(t, "Pop", func() { empty.Pop() })
}

func mustPanicEmpty(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != ErrEmpty {
			t.Errorf("%s on empty: recovered %v, want ErrEmpty", name, r)
		}
	}()
	f()
}

func TestPushPopInverse(t *testing.T) {
	tests := []struct {
		name string
		s    Stack[int]
	}{
		{"empty", Empty[int]()},
		{"single", New(1)},
		{"several", New(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pushed := tt.s.Push(42)
			if got := pushed.Peek(); got != 42 {
				t.Errorf("Push(42).Peek() = %d, want 42", got)
			}
			if !pushed.Pop().Equal(tt.s) {
				t.Error("Push(42).Pop() != original")
			}
			if pushed.Len() != tt.s.Len()+1 {
				t.Errorf("Push Len = %d, want %d", pushed.Len(), tt.s.Len()+1)
			}
			// the original is untouched
			if tt.s.Len() != len(slices.Collect(tt.s.All())) {
				t.Error("original stack changed after Push")
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	s := New(1, 2, 3)
	if got := s.Peek(); got != 1 {
		t.Errorf("New(1,2,3).Peek() = %d, want 1 (first argument on top)", got)
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("All() = %v, want [1 2 3]", got)
	}
}

func TestReverseInvolution(t *testing.T) {
	tests := []struct {
		name string
		s    Stack[int]
	}{
		{"empty", Empty[int]()},
		{"single", New(7)},
		{"several", New(1, 2, 3, 4)},
		{"duplicates", New(1, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.s.Reverse().Reverse().Equal(tt.s) {
				t.Error("Reverse().Reverse() != original")
			}
		})
	}

	if got := slices.Collect(New(1, 2, 3).Reverse().All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Reverse order = %v, want [3 2 1]", got)
	}
}

func TestConcatOrder(t *testing.T) {
	a := New(1, 2, 3)
	b := New(9, 8)

	got := slices.Collect(a.Concat(b).All())
	if !slices.Equal(got, []int{9, 8, 1, 2, 3}) {
		t.Errorf("Concat = %v, want [9 8 1 2 3] (other's top stays on top)", got)
	}
}

func TestConcatMonoid(t *testing.T) {
	a := New(1, 2)
	b := New(3)
	c := New(4, 5)
	empty := Empty[int]()

	if !a.Concat(empty).Equal(a) {
		t.Error("a.Concat(Empty) != a")
	}
	if !empty.Concat(a).Equal(a) {
		t.Error("Empty.Concat(a) != a")
	}
	if !a.Concat(b).Concat(c).Equal(a.Concat(b.Concat(c))) {
		t.Error("Concat is not associative")
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b Stack[int]
		want []int
	}{
		// survivors are deduplicated too, first occurrence wins
		{"except semantics", New(1, 1, 2, 3), New(2), []int{1, 3}},
		{"remove duplicates of removed", New(2, 1, 2, 3), New(2), []int{1, 3}},
		{"disjoint", New(1, 2), New(3, 4), []int{1, 2}},
		{"everything removed", New(1, 2), New(2, 1), nil},
		{"empty left", Empty[int](), New(1), nil},
		{"empty right", New(3, 3, 1), Empty[int](), []int{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Subtract(tt.b)
			if !got.Equal(New(tt.want...)) {
				t.Errorf("Subtract = %v, want %v", slices.Collect(got.All()), tt.want)
			}
		})
	}
}

func TestEqualityIgnoresSharing(t *testing.T) {
	shared := New(1, 2, 3)
	derived := shared.Push(0).Pop() // shares every cell with shared
	independent := New(1, 2, 3)     // shares nothing

	if !shared.Equal(derived) {
		t.Error("derived stack not equal to its ancestor")
	}
	if !shared.Equal(independent) {
		t.Error("independently built stack with same elements not equal")
	}
	if shared.Equal(New(1, 2)) {
		t.Error("stacks of different length compare equal")
	}
	if shared.Equal(New(3, 2, 1)) {
		t.Error("stacks with different order compare equal")
	}
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	a := New(1, 2, 3)
	b := New(1, 2, 3)
	if a.Hash(seed) != b.Hash(seed) {
		t.Error("equal stacks hash differently under the same seed")
	}

	if a.Hash(seed) == New(3, 2, 1).Hash(seed) {
		t.Error("order-insensitive hash: [1 2 3] and [3 2 1] collide")
	}
}

func TestCountIterationConsistency(t *testing.T) {
	tests := []struct {
		name string
		s    Stack[string]
	}{
		{"empty", Empty[string]()},
		{"single", New("a")},
		{"several", New("a", "b", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := slices.Collect(tt.s.All())
			if tt.s.Len() != len(elems) {
				t.Errorf("Len = %d, iteration yields %d", tt.s.Len(), len(elems))
			}
			if !tt.s.IsEmpty() && elems[0] != tt.s.Peek() {
				t.Errorf("first iterated element %q != Peek %q", elems[0], tt.s.Peek())
			}
		})
	}
}

func TestIterationRestartable(t *testing.T) {
	s := New(1, 2, 3)
	seq := s.All()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("repeated iteration differs: %v then %v", first, second)
	}

	// early break must not poison later traversals
	for range seq {
		break
	}
	if got := slices.Collect(seq); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("iteration after early break = %v, want [1 2 3]", got)
	}
}

func TestClear(t *testing.T) {
	if !New(1, 2, 3).Clear().Equal(Empty[int]()) {
		t.Error("Clear() != Empty")
	}
	if !Empty[int]().Clear().IsEmpty() {
		t.Error("Empty.Clear() not empty")
	}
}

func TestFromSeqRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    Stack[int]
	}{
		{"empty", Empty[int]()},
		{"several", New(5, 6, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !FromSeq(tt.s.All()).Equal(tt.s) {
				t.Error("FromSeq(s.All()) != s")
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2, 3).String(); got != "[1 2 3]" {
		t.Errorf("String = %q, want %q", got, "[1 2 3]")
	}
	if got := Empty[int]().String(); got != "[]" {
		t.Errorf("empty String = %q, want %q", got, "[]")
	}

	big := Empty[int]()
	for i := range 60 {
		big = big.Push(i)
	}
	s := big.String()
	if want := " ...]"; len(s) < len(want) || s[len(s)-len(want):] != want {
		t.Errorf("oversize String %q does not end in %q", s, want)
	}
}

func TestJoin(t *testing.T) {
	if got := New("a", "b", "c").Join(", "); got != "a, b, c" {
		t.Errorf("Join = %q, want %q", got, "a, b, c")
	}
	if got := Empty[string]().Join(","); got != "" {
		t.Errorf("empty Join = %q, want empty", got)
	}
}

func TestStructuralSharing(t *testing.T) {
	base := New(1, 2, 3)
	derived := base.Push(0)

	// the derived stack's remainder is the very same chain
	if derived.head.next != base.head {
		t.Error("Push copied the receiver's chain instead of sharing it")
	}
	if rest := derived.Pop(); rest.head != base.head {
		t.Error("Pop did not return the shared remainder")
	}
}
