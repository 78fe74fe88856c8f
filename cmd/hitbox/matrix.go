package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hitbox/internal/platform/tui"
)

var flagWorkers int

var matrixCmd = &cobra.Command{
	Use:   "matrix <scene>",
	Short: "Check every pair of elements in a scene",
	Long: `Runs a collision query for every unordered pair of elements and prints
the verdicts. Pairs are checked in parallel against one snapshot.

Examples:
  hitbox matrix configs/demo.yaml
  hitbox matrix db:demo --workers 4`,
	Args: cobra.ExactArgs(1),
	Run:  runMatrix,
}

func init() {
	matrixCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel checks (0 = number of CPUs)")
}

func runMatrix(cmd *cobra.Command, args []string) {
	s := mustSession(args[0])

	verdicts, err := s.eng.Matrix(context.Background(), flagWorkers)
	if err != nil {
		fatalf("Error checking pairs: %v\n", err)
	}
	if len(verdicts) == 0 {
		fmt.Println("Scene has fewer than two elements.")
		return
	}

	width := 0
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	hits := 0
	rows := make([][]string, 0, len(verdicts))
	for _, v := range verdicts {
		if v.Collides {
			hits++
		}
		rows = append(rows, []string{v.A, v.B, tui.RenderVerdict(v.Collides)})
	}

	fmt.Println(tui.RenderTable([]string{"A", "B", "Verdict"}, rows, width))
	fmt.Println()
	fmt.Println(tui.RenderDim(fmt.Sprintf("%d of %d pairs collide", hits, len(verdicts))))
}
