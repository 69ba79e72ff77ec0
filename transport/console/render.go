package console

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX = "9"
	colorO = "12"
)

// Renderer draws boards, colouring marks when the output is a terminal.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	profile := termenv.Ascii
	if color && isTerminal(w) {
		profile = termenv.ANSI
	}

	return &Renderer{
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Board - three rows like " X | O |   " separated by dashes.
func (that *Renderer) Board(board entity.Board) string {
	var builder strings.Builder

	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			builder.WriteString("---+---+---\n")
		}

		for column := 0; column < entity.BoardSide; column++ {
			if column > 0 {
				builder.WriteString("|")
			}
			builder.WriteString(" " + that.mark(board[entity.CellIndex(row, column)]) + " ")
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Renderer) mark(mark entity.Mark) string {
	switch mark {
	case entity.X:
		return that.output.String("X").Foreground(that.output.Color(colorX)).Bold().String()
	case entity.O:
		return that.output.String("O").Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return " "
	}
}

// Error - message styled as an error line.
func (that *Renderer) Error(msg string) string {
	return that.output.String("ERROR: " + msg).Foreground(that.output.Color(colorX)).String()
}
