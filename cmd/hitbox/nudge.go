package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/platform/tui"
)

var flagStep float64

var nudgeCmd = &cobra.Command{
	Use:   "nudge <scene> <moving> <collider>",
	Short: "Move an element interactively and watch the verdict",
	Long: `Opens a terminal viewer that moves one element with the arrow keys and
shows the live collision verdict against another.

Holding a direction accelerates by the configured acceleration, up to a
tenth of the configured speed per press.

Controls:
  Arrows/hjkl/wasd - Move
  Tab              - Swap moving and collider
  R                - Reset positions
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  hitbox nudge configs/demo.yaml banana abacate
  hitbox nudge configs/demo.yaml banana spinner --step 0.5`,
	Args: cobra.ExactArgs(3),
	Run:  runNudge,
}

func init() {
	nudgeCmd.Flags().Float64Var(&flagStep, "step", 1, "Distance of the first press in a direction")
}

func runNudge(cmd *cobra.Command, args []string) {
	s := mustSession(args[0])
	moving, collider := args[1], args[2]

	// The viewer owns the terminal; keep log lines out of it.
	s.logger.SetOutput(io.Discard)

	if err := tui.Run(s.eng, moving, collider, flagStep); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
