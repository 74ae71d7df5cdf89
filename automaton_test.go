package nfa

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAutomaton(t *testing.T) {
	a := NewAutomaton()
	assert.Equal(t, 0, a.NumStates())
	assert.Equal(t, 0, a.Alphabet().Size())
	assert.Equal(t, 0, a.Initial().Size())
	assert.Equal(t, 0, a.Final().Size())
	assert.Equal(t, 0, a.NumTransitions())
	assert.Equal(t, 0, a.Neighbors(0, 'a').Size())
}

func TestAutomatonMutators(t *testing.T) {
	a := NewAutomaton(WithTransitionCapacity(16))

	t.Run("AddTransitionAddsStatesAndSymbol", func(t *testing.T) {
		a.AddTransition(1, 'a', 2)
		assert.True(t, a.HasState(1))
		assert.True(t, a.HasState(2))
		assert.True(t, a.HasSymbol('a'))
		assert.True(t, a.HasTransition(1, 'a', 2))
		assert.False(t, a.HasTransition(2, 'a', 1))
	})

	t.Run("Idempotent", func(t *testing.T) {
		a.AddTransition(1, 'a', 2)
		a.AddState(1)
		a.AddSymbol('a')
		assert.Equal(t, 2, a.NumStates())
		assert.Equal(t, 1, a.Alphabet().Size())
		assert.Equal(t, 1, a.NumTransitions())
	})

	t.Run("Nondeterminism", func(t *testing.T) {
		a.AddTransition(1, 'a', 3)
		assert.Equal(t, []int{2, 3}, a.Neighbors(1, 'a').Sorted())
		assert.Equal(t, 2, a.NumTransitions())
	})

	t.Run("MarkInitialAndFinal", func(t *testing.T) {
		a.MarkInitial(7)
		a.MarkFinal(8)
		assert.True(t, a.HasState(7))
		assert.True(t, a.HasState(8))
		assert.True(t, a.HasInitial(7))
		assert.False(t, a.HasFinal(7))
		assert.True(t, a.HasFinal(8))
		assert.False(t, a.HasInitial(8))
	})

	t.Run("StandaloneSymbolAndState", func(t *testing.T) {
		a.AddSymbol('z')
		a.AddState(-4)
		assert.True(t, a.HasSymbol('z'))
		assert.True(t, a.HasState(-4))
		assert.Equal(t, 0, a.Neighbors(-4, 'z').Size())
	})
}

func TestNeighborsMissIsEmpty(t *testing.T) {
	a := MakeString("ab")
	miss := a.Neighbors(0, 'b')
	assert.Equal(t, 0, miss.Size())
	assert.Same(t, a.Neighbors(5, 'x'), miss)

	// filling the real key never touches the shared empty set
	a.AddTransition(0, 'b', 2)
	assert.Equal(t, 0, miss.Size())
	assert.Equal(t, []int{2}, a.Neighbors(0, 'b').Sorted())
}

func TestTransitions(t *testing.T) {
	a := NewAutomaton()
	a.AddTransition(2, 'b', 0)
	a.AddTransition(0, 'b', 1)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(0, 'a', 1)

	want := []Transition{
		{Source: 0, Label: 'a', Dest: 1},
		{Source: 0, Label: 'a', Dest: 2},
		{Source: 0, Label: 'b', Dest: 1},
		{Source: 2, Label: 'b', Dest: 0},
	}
	assert.Equal(t, want, slices.Collect(a.Transitions()))
	assert.Equal(t, "0 -a-> 1", want[0].String())

	count := 0
	for range a.Transitions() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestAutomatonEqual(t *testing.T) {
	a := MakeString("ab")
	b := MakeString("ab")
	assert.True(t, a.Equal(b))

	b.AddTransition(0, 'a', 2)
	assert.False(t, a.Equal(b))

	c := MakeString("ab")
	c.MarkInitial(1)
	assert.False(t, a.Equal(c))

	d := MakeString("ab")
	d.AddSymbol('c')
	assert.False(t, a.Equal(d))
}

func TestFprint(t *testing.T) {
	a := MakeString("ab")
	buf := new(bytes.Buffer)
	assert.Nil(t, a.Fprint(buf))

	want := "- States : {0, 1, 2}\n" +
		"- Initial : {0}\n" +
		"- Final : {2}\n" +
		"- Alphabet : {a, b}\n" +
		"- Transitions : (0, a) -> {1} (1, b) -> {2}\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, a.String())
}
