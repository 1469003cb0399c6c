package discord

import (
	"math/rand"
	"testing"
)

func TestSplitTeamsCoversEveryoneWithoutOverlap(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	red, blue := splitTeams(names, rand.New(rand.NewSource(1)))

	if len(red) != 2 || len(blue) != 3 {
		t.Fatalf("5 personas se parten 2/3, vino %d/%d", len(red), len(blue))
	}

	seen := map[string]int{}
	for _, n := range red {
		seen[n]++
	}
	for _, n := range blue {
		seen[n]++
	}
	for _, n := range names {
		if seen[n] != 1 {
			t.Fatalf("%q tenía que aparecer exactamente una vez, apareció %d", n, seen[n])
		}
	}
}

func TestSplitTeamsDoesNotMutateInput(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	splitTeams(names, rand.New(rand.NewSource(7)))

	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("el slice original no se toca: %v", names)
		}
	}
}

func TestSplitTeamsEvenCount(t *testing.T) {
	red, blue := splitTeams([]string{"a", "b", "c", "d"}, rand.New(rand.NewSource(3)))
	if len(red) != 2 || len(blue) != 2 {
		t.Fatalf("4 personas se parten 2/2, vino %d/%d", len(red), len(blue))
	}
}
