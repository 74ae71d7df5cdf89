package nfa

import (
	"errors"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ErrNotImplemented Raised (as a panic value) by operations that have no defined semantics yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrStateOverflow Raised (as a panic value) when shifting a state id leaves the int range.
var ErrStateOverflow = errors.New("state id overflow")

// Copy Returns a deep copy of a. Mutating the copy never affects a, and vice versa.
func Copy(a *Automaton) *Automaton {
	return Translate(a, 0)
}

// Translate Returns a copy of a with every state shifted by offset. The alphabet is unchanged.
// Panics with ErrStateOverflow if a shifted state does not fit in an int.
func Translate(a *Automaton, offset int) *Automaton {
	if a.NumStates() > 0 {
		checkedAdd(MinState(a), offset)
		checkedAdd(MaxState(a), offset)
	}

	res := NewAutomaton(WithTransitionCapacity(a.transitions.Size()))

	for state := range a.states.All() {
		res.AddState(state + offset)
	}
	for state := range a.initial.All() {
		res.MarkInitial(state + offset)
	}
	for state := range a.final.All() {
		res.MarkFinal(state + offset)
	}
	res.alphabet = a.alphabet.Clone()

	for t := range a.Transitions() {
		res.AddTransition(t.Source+offset, t.Label, t.Dest+offset)
	}
	return res
}

// TranslateToAvoid Returns a copy of a whose states are all greater than every state of other.
// If either automaton has no states there is nothing to collide with and a plain copy is returned.
// Panics with ErrStateOverflow when the states of a cannot all be moved above those of other.
func TranslateToAvoid(a, other *Automaton) *Automaton {
	if a.NumStates() == 0 || other.NumStates() == 0 {
		return Copy(a)
	}
	return Translate(a, checkedAdd(checkedSub(MaxState(other), MinState(a)), 1))
}

func checkedAdd(x, y int) int {
	sum := x + y
	if (y > 0 && sum < x) || (y < 0 && sum > x) {
		panic(ErrStateOverflow)
	}
	return sum
}

func checkedSub(x, y int) int {
	diff := x - y
	if (y > 0 && diff > x) || (y < 0 && diff < x) {
		panic(ErrStateOverflow)
	}
	return diff
}

// MinState Returns the smallest state of a, or math.MaxInt if a has no states.
func MinState(a *Automaton) int {
	if v, ok := a.states.Min(); ok {
		return v
	}
	return math.MaxInt
}

// MaxState Returns the largest state of a, or math.MinInt if a has no states.
func MaxState(a *Automaton) int {
	if v, ok := a.states.Max(); ok {
		return v
	}
	return math.MinInt
}

// Mirror Returns the automaton of the reversed language: every transition is reversed and the
// initial and final states are swapped. Unreachable states are kept.
func Mirror(a *Automaton) *Automaton {
	res := NewAutomaton(WithTransitionCapacity(a.transitions.Size()))
	res.states = a.states.Clone()
	res.alphabet = a.alphabet.Clone()
	res.initial = a.final.Clone()
	res.final = a.initial.Clone()

	for t := range a.Transitions() {
		res.AddTransition(t.Dest, t.Label, t.Source)
	}
	return res
}

// ReachableFrom Returns the states reachable from state through one or more transitions, whatever
// the symbols read. state itself is only included if it lies on a cycle.
func ReachableFrom(a *Automaton, state int) *Set[int] {
	return reachable(a, a.successors(state).Sorted())
}

// Accessible Returns the accessible states of a: the initial states and every state reachable
// from them.
func Accessible(a *Automaton) *Set[int] {
	return reachable(a, a.initial.Sorted())
}

// successors Returns the states one transition away from state, over the whole alphabet.
func (a *Automaton) successors(state int) *Set[int] {
	res := NewSet[int]()
	for symbol := range a.alphabet.All() {
		res.AddAll(a.neighbors(state, symbol))
	}
	return res
}

// reachable Returns start plus everything reachable from it. States are numbered densely by their
// rank in the sorted state set so the visited set fits a bitset.
func reachable(a *Automaton, start []int) *Set[int] {
	ids := a.states.Sorted()
	index := func(state int) (uint, bool) {
		i, ok := slices.BinarySearch(ids, state)
		return uint(i), ok
	}

	res := NewSet[int]()
	seen := bitset.New(uint(len(ids)))
	workList := make([]int, 0, len(start))

	visit := func(state int) {
		i, ok := index(state)
		if !ok || seen.Test(i) {
			return
		}
		seen.Set(i)
		res.Add(state)
		workList = append(workList, state)
	}

	for _, state := range start {
		visit(state)
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for next := range a.successors(state).All() {
			visit(next)
		}
	}
	return res
}

// AccessibleAutomaton Returns the sub-automaton of a restricted to its accessible states. It
// accepts the same language. The alphabet is kept whole.
func AccessibleAutomaton(a *Automaton) *Automaton {
	accessible := Accessible(a)

	res := NewAutomaton()
	res.states = accessible
	res.alphabet = a.alphabet.Clone()
	res.initial = SetIntersection(accessible, a.initial)
	res.final = SetIntersection(accessible, a.final)

	for t := range a.Transitions() {
		if accessible.Contains(t.Source) && accessible.Contains(t.Dest) {
			res.AddTransition(t.Source, t.Label, t.Dest)
		}
	}
	return res
}

// IsEmpty Returns true if a accepts no word at all.
func IsEmpty(a *Automaton) bool {
	return !Accessible(a).Intersects(a.final)
}

// Union Returns an automaton accepting the words accepted by a or by b. The states of a are
// translated first so that they never collide with those of b.
func Union(a, b *Automaton) *Automaton {
	translated := TranslateToAvoid(a, b)

	res := NewAutomaton(WithTransitionCapacity(translated.transitions.Size() + b.transitions.Size()))
	res.states = SetUnion(translated.states, b.states)
	res.alphabet = UnionAlphabet(translated.alphabet, b.alphabet)
	res.initial = SetUnion(translated.initial, b.initial)
	res.final = SetUnion(translated.final, b.final)

	for t := range translated.Transitions() {
		res.AddTransition(t.Source, t.Label, t.Dest)
	}
	for t := range b.Transitions() {
		res.AddTransition(t.Source, t.Label, t.Dest)
	}
	return res
}

// UnionAll Returns the union of all the given automata, or an empty automaton if none is given.
func UnionAll(automatons ...*Automaton) *Automaton {
	if len(automatons) == 0 {
		return NewAutomaton()
	}
	res := Copy(automatons[0])
	for _, a := range automatons[1:] {
		res = Union(res, a)
	}
	return res
}

// Shuffle Would return the automaton of the interleavings of the words of a and b. It has no
// defined semantics yet and panics with ErrNotImplemented.
func Shuffle(a, b *Automaton) *Automaton {
	panic(ErrNotImplemented)
}
