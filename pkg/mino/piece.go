package mino

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

// SpawnPoint is the anchor every new piece starts from.
var SpawnPoint = Point{4, 0}

// AllPieces lists the playable piece types in draw order.
var AllPieces = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (t PieceType) String() string {
	switch t {
	case PieceNone:
		return "None"
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "Unknown"
	}
}

// Rune returns the single character used for the type in text dumps.
func (t PieceType) Rune() rune {
	if t == PieceNone {
		return '.'
	} else if !t.Valid() {
		return '?'
	}
	return rune(t.String()[0])
}

func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

// Color returns the canonical color of the piece type.
func (t PieceType) Color() tcell.Color {
	switch t {
	case PieceI:
		return tcell.NewHexColor(0x00f0f0)
	case PieceO:
		return tcell.NewHexColor(0xf0f000)
	case PieceT:
		return tcell.NewHexColor(0xa000f0)
	case PieceS:
		return tcell.NewHexColor(0x00f000)
	case PieceZ:
		return tcell.NewHexColor(0xf00000)
	case PieceJ:
		return tcell.NewHexColor(0x0000f0)
	case PieceL:
		return tcell.NewHexColor(0xf0a000)
	default:
		return tcell.ColorDefault
	}
}

// Period is the number of distinct rotation states of the type.
func (t PieceType) Period() int {
	if !t.Valid() {
		return 1
	}
	return len(shapes[t])
}

// Shape rows run top to bottom, columns left to right, relative to the
// piece anchor.
type Shape [][]bool

var shapes = map[PieceType][]Shape{
	PieceI: {
		{
			{true, true, true, true},
		},
		{
			{true},
			{true},
			{true},
			{true},
		},
	},
	PieceO: {
		{
			{true, true},
			{true, true},
		},
	},
	PieceT: {
		{
			{false, true, false},
			{true, true, true},
		},
		{
			{true, false},
			{true, true},
			{true, false},
		},
		{
			{true, true, true},
			{false, true, false},
		},
		{
			{false, true},
			{true, true},
			{false, true},
		},
	},
	PieceS: {
		{
			{false, true, true},
			{true, true, false},
		},
		{
			{true, false},
			{true, true},
			{false, true},
		},
	},
	PieceZ: {
		{
			{true, true, false},
			{false, true, true},
		},
		{
			{false, true},
			{true, true},
			{true, false},
		},
	},
	PieceJ: {
		{
			{true, false, false},
			{true, true, true},
		},
		{
			{true, true},
			{true, false},
			{true, false},
		},
		{
			{true, true, true},
			{false, false, true},
		},
		{
			{false, true},
			{false, true},
			{true, true},
		},
	},
	PieceL: {
		{
			{false, false, true},
			{true, true, true},
		},
		{
			{true, false},
			{true, false},
			{true, true},
		},
		{
			{true, true, true},
			{true, false, false},
		},
		{
			{true, true},
			{false, true},
			{false, true},
		},
	},
}

// offsets is the shape table flattened into anchor-relative points,
// indexed by type and rotation.
var offsets [PieceL + 1][RotationStates][]Point

func init() {
	for _, t := range AllPieces {
		for r, shape := range shapes[t] {
			for y, row := range shape {
				for x, filled := range row {
					if filled {
						offsets[t][r] = append(offsets[t][r], Point{x, y})
					}
				}
			}
		}
	}
}

// Offsets returns the anchor-relative cells of a type at a rotation. The
// rotation is reduced modulo the type's period. The returned slice is
// shared and must not be modified.
func Offsets(t PieceType, rotation int) []Point {
	if !t.Valid() {
		return nil
	}

	p := t.Period()
	rotation %= p
	if rotation < 0 {
		rotation += p
	}

	return offsets[t][rotation]
}

// Piece is an active falling piece. Its position is not self-validating;
// legality is decided by a Board.
type Piece struct {
	Point
	Type     PieceType
	Rotation int
}

func NewPiece(t PieceType) *Piece {
	return NewPieceAt(t, SpawnPoint)
}

func NewPieceAt(t PieceType, loc Point) *Piece {
	return &Piece{Point: loc, Type: t, Rotation: Rotation0}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s/%d", p.Type, p.Point, p.Rotation)
}

// Cells returns the absolute grid coordinates covered by the piece.
func (p *Piece) Cells() []Point {
	o := Offsets(p.Type, p.Rotation)

	cells := make([]Point, len(o))
	for i := range o {
		cells[i] = p.Point.Add(o[i])
	}

	return cells
}

func (p *Piece) Translate(dx int, dy int) {
	p.X += dx
	p.Y += dy
}

func (p *Piece) RotateCW() {
	p.Rotation = (p.Rotation + 1) % p.Type.Period()
}

func (p *Piece) RotateCCW() {
	period := p.Type.Period()
	p.Rotation = (p.Rotation + period - 1) % period
}
