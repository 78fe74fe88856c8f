package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/hitbox/internal/body"
	"github.com/vovakirdan/hitbox/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testScene() config.SceneFile {
	return config.SceneFile{
		Elements: map[string]config.ElementSpec{
			"banana": {
				X: 39.9, Y: 0,
				Groups: []string{"fruit", "yellow"},
				Bodies: []config.BodySpec{
					{Shape: body.Rectangle, W: 40, H: 40, Groups: []int{1}},
					{Shape: body.Circle, W: 10, H: 10, X: 15, Y: 15, Rotation: 30, Groups: []int{2, 3}},
				},
			},
			"abacate": {
				X: 0, Y: 0,
				Bodies: []config.BodySpec{
					{Shape: body.Rectangle, W: 40, H: 40, Groups: []int{1}},
				},
			},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadScene(t *testing.T) {
	store := openTestStore(t)

	id, changed, err := store.SaveScene("demo", testScene())
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if id == "" || !changed {
		t.Errorf("SaveScene() = %q, %v; expected new id and changed", id, changed)
	}

	sf, err := store.LoadScene("demo")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if sf.Name != "demo" || len(sf.Elements) != 2 {
		t.Fatalf("LoadScene() = %+v", sf)
	}

	banana := sf.Elements["banana"]
	if banana.X != 39.9 || len(banana.Groups) != 2 || banana.Groups[0] != "fruit" {
		t.Errorf("banana = %+v", banana)
	}
	if len(banana.Bodies) != 2 {
		t.Fatalf("banana has %d bodies, expected 2", len(banana.Bodies))
	}
	circle := banana.Bodies[1]
	if circle.Shape != body.Circle || circle.Rotation != 30 || circle.X != 15 {
		t.Errorf("second body = %+v", circle)
	}
	if len(circle.Groups) != 2 || circle.Groups[0] != 2 || circle.Groups[1] != 3 {
		t.Errorf("second body groups = %v, expected [2 3]", circle.Groups)
	}

	// Loaded scene builds elements that collide like the originals
	elements := sf.Build()
	if elements["banana"].BodyCount() != 2 {
		t.Errorf("built banana has %d bodies", elements["banana"].BodyCount())
	}
}

func TestStoreSaveSceneChecksum(t *testing.T) {
	store := openTestStore(t)

	first, _, err := store.SaveScene("demo", testScene())
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}

	// Unchanged content keeps the same record
	again, changed, err := store.SaveScene("demo", testScene())
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if changed || again != first {
		t.Errorf("SaveScene() unchanged = %q, %v; expected %q, false", again, changed, first)
	}

	// Changed content replaces it
	sc := testScene()
	spec := sc.Elements["abacate"]
	spec.X = 100
	sc.Elements["abacate"] = spec

	replaced, changed, err := store.SaveScene("demo", sc)
	if err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if !changed || replaced == first {
		t.Errorf("SaveScene() changed = %q, %v; expected new id", replaced, changed)
	}

	sf, err := store.LoadScene("demo")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if sf.Elements["abacate"].X != 100 {
		t.Errorf("abacate.X = %v, expected 100", sf.Elements["abacate"].X)
	}
	if len(sf.Elements["banana"].Bodies) != 2 {
		t.Error("old rows leaked into or were lost from the replaced scene")
	}

	scenes, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(scenes) != 1 || scenes[0].Elements != 2 {
		t.Errorf("ListScenes() = %+v", scenes)
	}
}

func TestStoreSaveSceneConcurrentSameName(t *testing.T) {
	store := openTestStore(t)

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			sf := testScene()
			el := sf.Elements["banana"]
			el.X = float64(i)
			sf.Elements["banana"] = el
			_, _, err := store.SaveScene("race", sf)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent SaveScene() failed: %v", err)
	}

	scenes, err := store.ListScenes()
	if err != nil {
		t.Fatalf("ListScenes() failed: %v", err)
	}
	if len(scenes) != 1 {
		t.Errorf("ListScenes() returned %d scenes, expected 1", len(scenes))
	}
	if _, err := store.LoadScene("race"); err != nil {
		t.Errorf("LoadScene() failed: %v", err)
	}
}

func TestStoreDeleteScene(t *testing.T) {
	store := openTestStore(t)

	if _, _, err := store.SaveScene("demo", testScene()); err != nil {
		t.Fatalf("SaveScene() failed: %v", err)
	}
	if err := store.DeleteScene("demo"); err != nil {
		t.Fatalf("DeleteScene() failed: %v", err)
	}

	if _, err := store.LoadScene("demo"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("LoadScene() after delete = %v, expected ErrSceneNotFound", err)
	}
	if err := store.DeleteScene("demo"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("DeleteScene() twice = %v, expected ErrSceneNotFound", err)
	}
}

func TestStoreChecks(t *testing.T) {
	store := openTestStore(t)

	records := []CheckRecord{
		{Scene: "demo", First: "banana", Second: "abacate", Collides: true},
		{Scene: "demo", First: "banana", Second: "kiwi", Error: `second element missing: "kiwi"`},
		{Scene: "demo", First: "abacate", Second: "banana", Collides: false},
	}
	for _, r := range records {
		if _, err := store.RecordCheck(r); err != nil {
			t.Fatalf("RecordCheck() failed: %v", err)
		}
	}

	got, err := store.RecentChecks(2)
	if err != nil {
		t.Fatalf("RecentChecks() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentChecks(2) returned %d records", len(got))
	}
	// Newest first
	if got[0].First != "abacate" || got[0].Collides {
		t.Errorf("newest check = %+v", got[0])
	}
	if got[1].Error == "" || got[1].Second != "kiwi" {
		t.Errorf("second newest check = %+v", got[1])
	}
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("name: demo\n"))
	b := Checksum([]byte("name: demo\n"))
	c := Checksum([]byte("name: other\n"))

	if a != b {
		t.Error("Checksum() not deterministic")
	}
	if a == c {
		t.Error("Checksum() collided on different input")
	}
	if len(a) != 16 {
		t.Errorf("len(Checksum()) = %d, expected 16", len(a))
	}
}
