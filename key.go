package nfa

import (
	"cmp"
	"fmt"
)

var _ Hashable = Key{}

// Key Looks up the targets of a transition: the origin state and the symbol read from it.
type Key struct {
	Origin int
	Symbol byte
}

// Compare Orders keys by origin first, then by symbol.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Origin, other.Origin); c != 0 {
		return c
	}
	return cmp.Compare(k.Symbol, other.Symbol)
}

func (k Key) Hash() uint64 {
	return mixPair(k.Origin, int(k.Symbol))
}

func (k Key) Equals(other Hashable) bool {
	o, ok := other.(Key)
	return ok && k == o
}

func (k Key) String() string {
	return fmt.Sprintf("(%d, %s)", k.Origin, symbolString(k.Symbol))
}
