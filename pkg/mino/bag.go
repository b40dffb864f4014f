package mino

import (
	"math/rand"
)

type RandomizerType int

const (
	RandomizerUniform RandomizerType = iota
	RandomizerBag
)

func (r RandomizerType) String() string {
	switch r {
	case RandomizerUniform:
		return "uniform"
	case RandomizerBag:
		return "bag"
	default:
		return "unknown"
	}
}

// Randomizer chooses the type of each new piece.
type Randomizer interface {
	Take() PieceType
}

func NewRandomizer(t RandomizerType, seed int64) Randomizer {
	if t == RandomizerBag {
		return NewBag(seed)
	}
	return NewUniform(seed)
}

// Uniform draws each piece independently. Long droughts of a single type
// are possible.
type Uniform struct {
	r *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{r: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Take() PieceType {
	return AllPieces[u.r.Intn(len(AllPieces))]
}

// Bag deals every piece type once per shuffled set of seven.
type Bag struct {
	Pieces []PieceType

	r *rand.Rand
	i int
}

func NewBag(seed int64) *Bag {
	b := &Bag{r: rand.New(rand.NewSource(seed))}

	b.shuffle()

	return b
}

func (b *Bag) Take() PieceType {
	t := b.Pieces[b.i]
	if b.i == len(b.Pieces)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return t
}

// Next returns the piece Take will return without consuming it.
func (b *Bag) Next() PieceType {
	return b.Pieces[b.i]
}

func (b *Bag) shuffle() {
	if b.Pieces == nil {
		b.Pieces = make([]PieceType, len(AllPieces))
	}
	copy(b.Pieces, AllPieces)

	b.r.Shuffle(len(b.Pieces), func(i, j int) { b.Pieces[i], b.Pieces[j] = b.Pieces[j], b.Pieces[i] })
}

// Sequence replays a fixed list of types, cycling when exhausted. It is
// used to set up deterministic boards.
type Sequence struct {
	Pieces []PieceType

	i int
}

func NewSequence(pieces ...PieceType) *Sequence {
	return &Sequence{Pieces: pieces}
}

func (s *Sequence) Take() PieceType {
	if len(s.Pieces) == 0 {
		return PieceO
	}

	t := s.Pieces[s.i%len(s.Pieces)]
	s.i++

	return t
}
