package nfa

import (
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const alphabetSize = 256

// SymbolView Read-only access to an alphabet.
type SymbolView interface {
	Contains(symbol byte) bool
	Size() int
	All() iter.Seq[byte]
}

var _ SymbolView = &Alphabet{}

// Alphabet A set of byte symbols. If the bit is set then the symbol belongs to the alphabet.
type Alphabet struct {
	bits *bitset.BitSet
}

func NewAlphabet(symbols ...byte) *Alphabet {
	a := &Alphabet{
		bits: bitset.New(alphabetSize),
	}
	for _, symbol := range symbols {
		a.Add(symbol)
	}
	return a
}

func (a *Alphabet) Add(symbol byte) *Alphabet {
	a.bits.Set(uint(symbol))
	return a
}

func (a *Alphabet) Contains(symbol byte) bool {
	return a.bits.Test(uint(symbol))
}

func (a *Alphabet) Size() int {
	return int(a.bits.Count())
}

// AddAll Adds every symbol of other to a.
func (a *Alphabet) AddAll(other *Alphabet) *Alphabet {
	a.bits.InPlaceUnion(other.bits)
	return a
}

func (a *Alphabet) Clone() *Alphabet {
	return &Alphabet{
		bits: a.bits.Clone(),
	}
}

// UnionAlphabet Returns a new alphabet holding the symbols of a and b.
func UnionAlphabet(a, b *Alphabet) *Alphabet {
	return &Alphabet{
		bits: a.bits.Union(b.bits),
	}
}

func (a *Alphabet) Equal(other *Alphabet) bool {
	return a.Size() == other.Size() && a.bits.IntersectionCardinality(other.bits) == other.bits.Count()
}

// All Iterates the symbols in ascending order.
func (a *Alphabet) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i, ok := a.bits.NextSet(0); ok && i < alphabetSize; i, ok = a.bits.NextSet(i + 1) {
			if !yield(byte(i)) {
				return
			}
		}
	}
}

func (a *Alphabet) String() string {
	parts := make([]string, 0, a.Size())
	for symbol := range a.All() {
		parts = append(parts, symbolString(symbol))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func symbolString(symbol byte) string {
	if symbol >= 0x20 && symbol < 0x7f {
		return string(rune(symbol))
	}
	return strconv.QuoteRuneToASCII(rune(symbol))
}
