package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/collision"
	"github.com/vovakirdan/hitbox/internal/platform/tui"
	"github.com/vovakirdan/hitbox/internal/storage"
)

var (
	flagExplain bool
	flagEpsilon float64
	flagRecord  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <scene> <a> <b>",
	Short: "Check whether two elements collide",
	Long: `Runs one collision query between two named elements.

The elements collide when their tags share a group and any edge of an
eligible body of one crosses an edge of an eligible body of the other.
Pairs involving a circle body never collide.

Examples:
  hitbox check configs/demo.yaml banana abacate
  hitbox check configs/demo.yaml banana spinner --explain
  hitbox check configs/demo.yaml banana abacate --epsilon 1e-9
  hitbox check db:demo banana abacate --record`,
	Args: cobra.ExactArgs(3),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagExplain, "explain", false, "List every intersecting edge pair")
	checkCmd.Flags().Float64Var(&flagEpsilon, "epsilon", 0, "Tolerance for the segment test (overrides config)")
	checkCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the result to the check history")
}

func runCheck(cmd *cobra.Command, args []string) {
	s := mustSession(args[0])
	first, second := args[1], args[2]

	ev := s.eng.Evaluator()
	if cmd.Flags().Changed("epsilon") {
		ev.Epsilon = flagEpsilon
	}

	collides, err := ev.Collision(s.eng.Registry(), first, second)

	if flagRecord {
		record(s, first, second, collides, err)
	}

	if err != nil {
		fmt.Println(tui.RenderError(err))
		fatalf("Run 'hitbox list %s' to see element names.\n", args[0])
	}

	fmt.Printf("%s x %s: %s\n", first, second, tui.RenderVerdict(collides))

	if flagExplain {
		explain(ev, s, first, second)
	}
}

// explain prints the hits behind a verdict.
func explain(ev collision.Evaluator, s *session, first, second string) {
	a, b, err := collision.Resolve(s.eng.Registry(), first, second)
	if err != nil {
		return
	}
	res := ev.Evaluate(a, b)

	fmt.Println()
	for _, h := range res.Hits {
		ea := a.Body(h.BodyA).Edges(a.Pos)[h.EdgeA]
		eb := b.Body(h.BodyB).Edges(b.Pos)[h.EdgeB]
		fmt.Printf("  body %d edge %d  %s\n", h.BodyA, h.EdgeA, tui.RenderEdge(ea))
		fmt.Printf("  body %d edge %d  %s\n\n", h.BodyB, h.EdgeB, tui.RenderEdge(eb))
	}
	fmt.Println(tui.RenderDim(fmt.Sprintf("hits %d, body pairs filtered %d, circle pairs skipped %d",
		len(res.Hits), res.Skipped, res.Unsupported)))
}

// record appends the query outcome to the history. Failures are logged and
// do not change the command result.
func record(s *session, first, second string, collides bool, queryErr error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open database", "error", err)
		return
	}
	defer store.Close()

	rec := storage.CheckRecord{
		Scene:    s.name,
		First:    first,
		Second:   second,
		Collides: collides,
	}
	if queryErr != nil {
		rec.Error = queryErr.Error()
	}
	if _, err := store.RecordCheck(rec); err != nil {
		s.logger.Warn("could not record check", "error", err)
	}
}
