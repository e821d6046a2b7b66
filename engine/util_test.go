package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestSquareIndex(t *testing.T) {
	cases := []struct {
		coord string
		want  uint8
	}{
		{"a1", 0},
		{"h1", 7},
		{"e4", 28},
		{"a8", 56},
		{"h8", 63},
	}
	for _, tc := range cases {
		if got := SquareIndex(tc.coord); got != tc.want {
			t.Fatalf("SquareIndex(%q) = %d, want %d", tc.coord, got, tc.want)
		}
	}
}

func TestPieceAt(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	piece, white, occupied := PieceAt(&board, SquareIndex("e1"))
	if !occupied || !white || piece != dragontoothmg.King {
		t.Fatalf("expected the white king on e1, got %s (white=%v occupied=%v)",
			pieceName(piece), white, occupied)
	}

	piece, white, occupied = PieceAt(&board, SquareIndex("d8"))
	if !occupied || white || piece != dragontoothmg.Queen {
		t.Fatalf("expected the black queen on d8, got %s (white=%v occupied=%v)",
			pieceName(piece), white, occupied)
	}

	if _, _, occupied = PieceAt(&board, SquareIndex("e4")); occupied {
		t.Fatalf("expected e4 to be empty in the starting position")
	}
}

func TestGetPieceTypeAtPosition(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	piece, ok := GetPieceTypeAtPosition(SquareIndex("b1"), &board.White)
	if !ok || piece != dragontoothmg.Knight {
		t.Fatalf("expected a white knight on b1, got %s (ok=%v)", pieceName(piece), ok)
	}

	// The white set knows nothing about black pieces.
	if _, ok := GetPieceTypeAtPosition(SquareIndex("e8"), &board.White); ok {
		t.Fatalf("expected e8 to be absent from the white bitboards")
	}
}

func TestSideBitboards(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	own, opponent := sideBitboards(&board)
	if own != &board.White || opponent != &board.Black {
		t.Fatalf("expected white to move in the starting position")
	}

	board.Wtomove = false
	own, opponent = sideBitboards(&board)
	if own != &board.Black || opponent != &board.White {
		t.Fatalf("expected black's sets after flipping the side to move")
	}
}
