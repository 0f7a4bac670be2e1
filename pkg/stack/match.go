package stack

// MatchPeek dispatches on emptiness: some receives the top element, none
// handles the empty stack. Both branches must be supplied, so the call is
// total. A free function because Go methods cannot introduce the result
// type parameter.
func MatchPeek[A comparable, R any](s Stack[A], some func(A) R, none func() R) R {
	if v, ok := s.TryPeek(); ok {
		return some(v)
	}
	return none()
}

// MatchPop dispatches on emptiness: some receives the removed element and
// the remaining stack, none handles the empty stack.
func MatchPop[A comparable, R any](s Stack[A], some func(A, Stack[A]) R, none func() R) R {
	if rest, v, ok := s.TryPop(); ok {
		return some(v, rest)
	}
	return none()
}
