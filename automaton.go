package nfa

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
)

// Automaton Represents a nondeterministic finite automaton. States are arbitrary integers and
// symbols are bytes. Adding a transition or marking a state initial or final implicitly adds the
// states and symbol involved, so the automaton is always consistent: every state referenced
// anywhere is in States() and every symbol carried by a transition is in Alphabet().
//
// An Automaton is not safe for concurrent mutation. Once built, it may be read from several
// goroutines; none of the operations in this package modify their input automata.
type Automaton struct {
	states   *Set[int]
	alphabet *Alphabet
	initial  *Set[int]
	final    *Set[int]

	// Targets of each (origin, symbol) pair. A missing key means no target.
	transitions *HashMap[Key, *Set[int]]

	// Returned by Neighbors on a miss.
	empty *Set[int]
}

// Transition One (source, label, dest) triple of the transition relation.
type Transition struct {
	Source int
	Label  byte
	Dest   int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.Source, symbolString(t.Label), t.Dest)
}

type options struct {
	transitionCapacity int
}

type Option func(*options)

// WithTransitionCapacity Sizes the transition table for about n (origin, symbol) pairs.
func WithTransitionCapacity(n int) Option {
	return func(o *options) {
		o.transitionCapacity = n
	}
}

func NewAutomaton(opts ...Option) *Automaton {
	o := &options{
		transitionCapacity: 4,
	}
	for _, fn := range opts {
		fn(o)
	}

	return &Automaton{
		states:      NewSet[int](),
		alphabet:    NewAlphabet(),
		initial:     NewSet[int](),
		final:       NewSet[int](),
		transitions: NewHashMap[Key, *Set[int]](WithCapacity(o.transitionCapacity)),
		empty:       NewSet[int](),
	}
}

// AddState Add a state. Adding an existing state is a no-op.
func (a *Automaton) AddState(state int) {
	a.states.Add(state)
}

// AddSymbol Add a symbol to the alphabet.
func (a *Automaton) AddSymbol(symbol byte) {
	a.alphabet.Add(symbol)
}

// AddTransition Add a transition from origin to target reading symbol. Both states and the symbol
// are added as well.
func (a *Automaton) AddTransition(origin int, symbol byte, target int) {
	a.AddState(origin)
	a.AddState(target)
	a.AddSymbol(symbol)

	key := Key{Origin: origin, Symbol: symbol}
	targets, ok := a.transitions.Get(key)
	if !ok {
		targets = NewSet[int]()
		a.transitions.Set(key, targets)
	}
	targets.Add(target)
}

// MarkInitial Add state and mark it initial.
func (a *Automaton) MarkInitial(state int) {
	a.AddState(state)
	a.initial.Add(state)
}

// MarkFinal Add state and mark it final.
func (a *Automaton) MarkFinal(state int) {
	a.AddState(state)
	a.final.Add(state)
}

func (a *Automaton) HasState(state int) bool {
	return a.states.Contains(state)
}

func (a *Automaton) HasInitial(state int) bool {
	return a.initial.Contains(state)
}

func (a *Automaton) HasFinal(state int) bool {
	return a.final.Contains(state)
}

func (a *Automaton) HasSymbol(symbol byte) bool {
	return a.alphabet.Contains(symbol)
}

// HasTransition Returns true if reading symbol from origin may lead to target.
func (a *Automaton) HasTransition(origin int, symbol byte, target int) bool {
	return a.neighbors(origin, symbol).Contains(target)
}

// Neighbors Returns the targets of the transitions leaving origin on symbol. The result is shared
// with the automaton; use Step for an independent copy.
func (a *Automaton) Neighbors(origin int, symbol byte) StateView {
	return a.neighbors(origin, symbol)
}

func (a *Automaton) neighbors(origin int, symbol byte) *Set[int] {
	if targets, ok := a.transitions.Get(Key{Origin: origin, Symbol: symbol}); ok {
		return targets
	}
	return a.empty
}

func (a *Automaton) States() StateView {
	return a.states
}

func (a *Automaton) Initial() StateView {
	return a.initial
}

func (a *Automaton) Final() StateView {
	return a.final
}

func (a *Automaton) Alphabet() SymbolView {
	return a.alphabet
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return a.states.Size()
}

// NumTransitions How many (source, label, dest) triples this automaton has.
func (a *Automaton) NumTransitions() int {
	count := 0
	for _, targets := range a.transitions.All() {
		count += targets.Size()
	}
	return count
}

// sortedKeys Returns the transition keys ordered by origin, then symbol.
func (a *Automaton) sortedKeys() []Key {
	keys := a.transitions.Keys()
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// Transitions Iterates every transition, ordered by source, then label, then dest.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, key := range a.sortedKeys() {
			targets, _ := a.transitions.Get(key)
			for _, dest := range targets.Sorted() {
				if !yield(Transition{Source: key.Origin, Label: key.Symbol, Dest: dest}) {
					return
				}
			}
		}
	}
}

// Equal Returns true if both automata have the same states, alphabet, initial and final states,
// and transition relation.
func (a *Automaton) Equal(other *Automaton) bool {
	if !a.states.Equal(other.states) ||
		!a.alphabet.Equal(other.alphabet) ||
		!a.initial.Equal(other.initial) ||
		!a.final.Equal(other.final) {
		return false
	}
	if a.NumTransitions() != other.NumTransitions() {
		return false
	}
	for t := range a.Transitions() {
		if !other.HasTransition(t.Source, t.Label, t.Dest) {
			return false
		}
	}
	return true
}

// Fprint Writes a human readable dump of the automaton to w. Intended for diagnostics only.
func (a *Automaton) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "- States : %s\n- Initial : %s\n- Final : %s\n- Alphabet : %s\n- Transitions :",
		a.states, a.initial, a.final, a.alphabet)
	if err != nil {
		return err
	}
	for _, key := range a.sortedKeys() {
		targets, _ := a.transitions.Get(key)
		if _, err = fmt.Fprintf(w, " %s -> %s", key, targets); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

func (a *Automaton) String() string {
	buf := new(bytes.Buffer)
	_ = a.Fprint(buf)
	return buf.String()
}
