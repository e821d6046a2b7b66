package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// PieceValues maps a dragontoothmg piece type to its centipawn value.
// Index 0 (no piece) is always zero. The king carries a deliberately huge
// finite value so that losing it dominates any material swing without
// introducing infinities into score arithmetic.
type PieceValues [7]int32

// ConventionalPieceValues is the default valuation schedule.
var ConventionalPieceValues = PieceValues{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 350,
	dragontoothmg.Bishop: 350,
	dragontoothmg.Rook:   525,
	dragontoothmg.Queen:  1000,
	dragontoothmg.King:   99999,
}

// FischerPieceValues ranks the bishop slightly above the knight.
var FischerPieceValues = PieceValues{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 300,
	dragontoothmg.Bishop: 325,
	dragontoothmg.Rook:   500,
	dragontoothmg.Queen:  900,
	dragontoothmg.King:   99999,
}

/*
	Piece-square tables.

	Convention: each rank in its own row, from White's perspective, so
	table[0][0] is a1 and table[rank][file] addresses a square. Black pieces
	read the table point-reflected (rotated 180 degrees), i.e.
	table[7-rank][7-file].
*/

var pawnPieceTable = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightPieceTable = [8][8]int32{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopPieceTable = [8][8]int32{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookPieceTable = [8][8]int32{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenPieceTable = [8][8]int32{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 0, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingPieceTable = [8][8]int32{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var pieceTables = [7]*[8][8]int32{
	dragontoothmg.Pawn:   &pawnPieceTable,
	dragontoothmg.Knight: &knightPieceTable,
	dragontoothmg.Bishop: &bishopPieceTable,
	dragontoothmg.Rook:   &rookPieceTable,
	dragontoothmg.Queen:  &queenPieceTable,
	dragontoothmg.King:   &kingPieceTable,
}

// placementBonus returns the square-dependent bonus for a piece standing on
// the given square. Black pieces read the table rotated 180 degrees.
func placementBonus(piece dragontoothmg.Piece, square uint8, white bool) int32 {
	table := pieceTables[piece]
	if table == nil {
		panic("engine: no piece table for piece " + pieceName(piece))
	}
	rank := int(square / 8)
	file := int(square % 8)
	if !white {
		rank = 7 - rank
		file = 7 - file
	}
	return table[rank][file]
}

func pieceName(piece dragontoothmg.Piece) string {
	switch piece {
	case dragontoothmg.Pawn:
		return "P"
	case dragontoothmg.Knight:
		return "N"
	case dragontoothmg.Bishop:
		return "B"
	case dragontoothmg.Rook:
		return "R"
	case dragontoothmg.Queen:
		return "Q"
	case dragontoothmg.King:
		return "K"
	}
	return "?"
}
