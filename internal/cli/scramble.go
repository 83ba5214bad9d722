package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/twistylab/twisty"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble sequence",
	Long: `Generate a random scramble in standard notation.

The sequence never turns the same layer twice in a row, so every move
changes the cube state.`,
	RunE: runScramble,
}

var scrambleLength int

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of moves")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 1 {
		return fmt.Errorf("scramble length must be at least 1")
	}
	fmt.Println(twisty.FormatMoves(randomScramble(scrambleLength)))
	return nil
}

// randomScramble generates n random quarter-turn moves, never selecting the
// same layer two moves in a row.
func randomScramble(n int) []twisty.Move {
	moves := make([]twisty.Move, 0, n)
	var last twisty.Move
	for len(moves) < n {
		m := twisty.AllMoves[rand.Intn(len(twisty.AllMoves))]
		if len(moves) > 0 && m.Axis == last.Axis && m.Slice == last.Slice {
			continue
		}
		moves = append(moves, m)
		last = m
	}
	return moves
}
