package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/storage"
)

var flagImportName string

var importCmd = &cobra.Command{
	Use:   "import <scene.yaml>",
	Short: "Store a scene file in the database",
	Long: `Validates a scene file and stores it under a name. Re-importing an
unchanged file is a no-op. Stored scenes are addressed as db:<name>.

Examples:
  hitbox import configs/demo.yaml
  hitbox import ./level1.yaml --name level1`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportName, "name", "", "Scene name (default: name field, then file name)")
}

func runImport(cmd *cobra.Command, args []string) {
	path := args[0]

	sf, err := config.LoadScene(path)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	name := flagImportName
	if name == "" {
		name = sf.Name
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening database: %v\n", err)
	}
	defer store.Close()

	id, changed, err := store.SaveScene(name, sf)
	if err != nil {
		fatalf("Error saving scene: %v\n", err)
	}

	if !changed {
		fmt.Printf("Scene %q unchanged (%s)\n", name, id)
		return
	}
	fmt.Printf("Imported %q with %d elements (%s)\n", name, len(sf.Elements), id)
	fmt.Printf("Run 'hitbox list db:%s' to inspect it.\n", name)
}
