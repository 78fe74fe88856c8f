package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hitbox/internal/body"
	"github.com/vovakirdan/hitbox/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list <scene>",
	Short: "List the elements of a scene",
	Long: `Shows every element in the scene with its position, tags and bodies.

Examples:
  hitbox list configs/demo.yaml
  hitbox list db:demo`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	s := mustSession(args[0])

	names := s.eng.Registry().List()
	if len(names) == 0 {
		fmt.Println("No elements in scene.")
		return
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		el, ok := s.eng.Element(name)
		if !ok {
			continue
		}
		pos, err := el.PosJSON()
		if err != nil {
			pos = "?"
		}
		rows = append(rows, []string{
			name,
			pos,
			strings.Join(body.Sorted(el.Groups), ","),
			strconv.Itoa(el.BodyCount()),
			describeBodies(el),
		})
	}

	fmt.Println(tui.RenderTitle("Scene " + s.name))
	fmt.Println()
	fmt.Println(tui.RenderTable([]string{"Name", "Position", "Tags", "#", "Bodies"}, rows, width))
	fmt.Println()
	fmt.Printf("Run 'hitbox check %s <a> <b>' to test a pair.\n", args[0])
}

// describeBodies renders bodies as "rect 40x40@(0,0) r30 [1,2]".
func describeBodies(el *body.Element) string {
	parts := make([]string, 0, el.BodyCount())
	for _, b := range el.Bodies() {
		s := fmt.Sprintf("%s %dx%d@(%g,%g)", b.Shape, b.Dimensions.X, b.Dimensions.Y, b.Pos.X, b.Pos.Y)
		if b.Rotation != 0 {
			s += fmt.Sprintf(" r%g", b.Rotation)
		}
		if groups := body.Sorted(b.Groups); len(groups) > 0 {
			s += fmt.Sprintf(" %v", groups)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
