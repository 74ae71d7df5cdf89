package nfa

type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with no states, accepting the empty language.
func (*Automata) MakeEmpty() *Automaton {
	return NewAutomaton()
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	a.MarkInitial(0)
	a.MarkFinal(0)
	return a
}

// MakeString
// Returns a new automaton that accepts exactly word: a chain 0 -w[0]-> 1 -w[1]-> ... -> len(word),
// with state 0 initial and state len(word) final.
func (*Automata) MakeString(word string) *Automaton {
	a := NewAutomaton(WithTransitionCapacity(len(word)))
	for i := 0; i < len(word); i++ {
		a.AddTransition(i, word[i], i+1)
	}
	a.MarkInitial(0)
	a.MarkFinal(len(word))
	return a
}

// MakeChar
// Returns a new automaton that accepts the single symbol c.
func (r *Automata) MakeChar(c byte) *Automaton {
	return r.MakeString(string([]byte{c}))
}

// MakeAnyOf
// Returns a new automaton that accepts any one of the given symbols.
func (*Automata) MakeAnyOf(symbols ...byte) *Automaton {
	a := NewAutomaton()
	a.MarkInitial(0)
	a.MarkFinal(1)
	for _, c := range symbols {
		a.AddTransition(0, c, 1)
	}
	return a
}

// MakeString Shorthand for the default factory's MakeString.
func MakeString(word string) *Automaton {
	return defaultAutomata.MakeString(word)
}
