package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/storage"
)

var flagDeleteScene string

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List stored scenes",
	Long: `Shows every scene stored in the database.

Examples:
  hitbox scenes
  hitbox scenes --delete demo`,
	Args: cobra.NoArgs,
	Run:  runScenes,
}

func init() {
	scenesCmd.Flags().StringVar(&flagDeleteScene, "delete", "", "Delete the named scene")
}

func runScenes(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening database: %v\n", err)
	}
	defer store.Close()

	if flagDeleteScene != "" {
		if err := store.DeleteScene(flagDeleteScene); err != nil {
			fatalf("Error: %v\n", err)
		}
		fmt.Printf("Deleted %q\n", flagDeleteScene)
		return
	}

	scenes, err := store.ListScenes()
	if err != nil {
		fatalf("Error listing scenes: %v\n", err)
	}
	if len(scenes) == 0 {
		fmt.Println("No scenes stored yet.")
		fmt.Println()
		fmt.Println("Run 'hitbox import <scene.yaml>' to add one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, sc := range scenes {
		if len(sc.Name) > maxNameLen {
			maxNameLen = len(sc.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %-16s  %s\n", maxNameLen, "Name", "Elements", "Checksum", "Updated")
	fmt.Printf("  %-*s  %-8s  %-16s  %s\n", maxNameLen, "----", "--------", "--------", "-------")

	for _, sc := range scenes {
		fmt.Printf("  %-*s  %-8d  %-16s  %s\n", maxNameLen, sc.Name, sc.Elements, sc.Checksum,
			sc.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
