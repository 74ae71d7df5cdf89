package nfa

// Step Returns a new set with the states reached from origin by reading symbol.
func (a *Automaton) Step(origin int, symbol byte) *Set[int] {
	return a.neighbors(origin, symbol).Clone()
}

// StepSet Returns the states reached from any state of current by reading symbol.
func (a *Automaton) StepSet(current StateView, symbol byte) *Set[int] {
	res := NewSet[int]()
	for state := range current.All() {
		res.AddAll(a.neighbors(state, symbol))
	}
	return res
}

// Run Returns the states reached from any state of current after reading the whole word.
// An empty word yields a copy of current.
func (a *Automaton) Run(current StateView, word string) *Set[int] {
	res := NewSet[int]()
	for state := range current.All() {
		res.Add(state)
	}
	for i := 0; i < len(word) && res.Size() > 0; i++ {
		res = a.StepSet(res, word[i])
	}
	return res
}

// Accepts Returns true if word leads from an initial state to a final state.
func (a *Automaton) Accepts(word string) bool {
	return a.Run(a.initial, word).Intersects(a.final)
}

// Run Returns true if the given string is accepted by the automaton.
func Run(a *Automaton, s string) bool {
	return a.Accepts(s)
}
