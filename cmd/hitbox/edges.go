package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/platform/tui"
)

var edgesCmd = &cobra.Command{
	Use:   "edges <scene> <element>",
	Short: "Print the world-space edges of an element",
	Long: `Prints every edge of every body of the element, after rotation and
translation to world coordinates.

Examples:
  hitbox edges configs/demo.yaml spinner`,
	Args: cobra.ExactArgs(2),
	Run:  runEdges,
}

func runEdges(cmd *cobra.Command, args []string) {
	s := mustSession(args[0])
	name := args[1]

	el, ok := s.eng.Element(name)
	if !ok {
		fatalf("Error: unknown element %q\n", name)
	}

	for i, b := range el.Bodies() {
		fmt.Println(tui.RenderTitle(fmt.Sprintf("body %d (%s)", i, b.Shape)))
		for j, e := range b.Edges(el.Pos) {
			fmt.Printf("  %d  %s\n", j, tui.RenderEdge(e))
		}
	}
	if el.BodyCount() == 0 {
		fmt.Println(tui.RenderDim("no bodies"))
	}
}
