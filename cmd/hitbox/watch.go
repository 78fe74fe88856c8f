package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/platform/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene.yaml> <a> <b>",
	Short: "Re-check a pair whenever the scene file changes",
	Long: `Runs a collision query, then re-runs it every time the scene file is
saved. Useful while hand-editing positions and rotations.

Examples:
  hitbox watch configs/demo.yaml banana spinner`,
	Args: cobra.ExactArgs(3),
	Run:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	path, first, second := args[0], args[1], args[2]
	if strings.HasPrefix(path, dbScenePrefix) {
		fatalf("Error: watch needs a scene file, not a stored scene\n")
	}

	w, err := config.WatchScene(path)
	if err != nil {
		fatalf("Error watching %s: %v\n", path, err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(tui.RenderDim(fmt.Sprintf("watching %s, Ctrl+C to stop", path)))
	watchCheck(path, first, second)

	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
			watchCheck(path, first, second)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Println(tui.RenderError(err))
		case <-ctx.Done():
			return
		}
	}
}

// watchCheck reloads the scene and prints one timestamped verdict. Parse
// errors are printed and watching continues.
func watchCheck(path, first, second string) {
	stamp := time.Now().Format("15:04:05")

	s, err := openSession(path)
	if err != nil {
		fmt.Printf("%s  %s\n", stamp, tui.RenderError(err))
		return
	}

	collides, err := s.eng.Collision(first, second)
	if err != nil {
		fmt.Printf("%s  %s\n", stamp, tui.RenderError(err))
		return
	}
	fmt.Printf("%s  %s x %s: %s\n", stamp, first, second, tui.RenderVerdict(collides))
}
