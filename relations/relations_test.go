package relations_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-model/collection"
	"github.com/theoremus-urban-solutions/transit-model/relations"
)

type line struct {
	ID string
}

func (l line) ObjectID() string { return l.ID }

type journey struct {
	ID     string
	LineID string
	ModeID string
}

func (j journey) ObjectID() string { return j.ID }

type platform struct {
	ID string
}

func (p platform) ObjectID() string { return p.ID }

type mode struct {
	ID string
}

func (m mode) ObjectID() string { return m.ID }

func mustWithID[T collection.Identifier](t *testing.T, objects []T) *collection.CollectionWithID[T] {
	t.Helper()
	c, err := collection.NewCollectionWithID(objects)
	if err != nil {
		t.Fatalf("building collection: %v", err)
	}
	return c
}

func idxOf[T collection.Identifier](t *testing.T, c *collection.CollectionWithID[T], id string) collection.Idx[T] {
	t.Helper()
	idx, ok := c.GetIdx(id)
	if !ok {
		t.Fatalf("id %q not in collection", id)
	}
	return idx
}

func ids[T collection.Identifier](c *collection.CollectionWithID[T], set collection.IdxSet[T]) []string {
	var out []string
	for _, idx := range set.Slice() {
		out = append(out, (*c.MustGet(idx)).ObjectID())
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestOneToManyRoundTrip(t *testing.T) {
	lines := mustWithID(t, []line{{ID: "A"}, {ID: "B"}})
	journeys := mustWithID(t, []journey{
		{ID: "j1", LineID: "A"},
		{ID: "j2", LineID: "A"},
		{ID: "j3", LineID: "B"},
	})

	rel, err := relations.NewOneToMany(lines, journeys, "lines_to_journeys",
		func(j *journey) string { return j.LineID })
	if err != nil {
		t.Fatalf("NewOneToMany failed: %v", err)
	}

	forward := rel.CorrespondingForward(collection.NewIdxSet(idxOf(t, lines, "A")))
	if got := ids(journeys, forward); !equalIDs(got, []string{"j1", "j2"}) {
		t.Errorf("forward(A) = %v; want [j1 j2]", got)
	}

	// the backward direction recovers exactly the originating line
	backward := rel.CorrespondingBackward(forward)
	if got := ids(lines, backward); !equalIDs(got, []string{"A"}) {
		t.Errorf("backward(forward(A)) = %v; want [A]", got)
	}
}

func TestOneToManyUnresolvedForeignKey(t *testing.T) {
	lines := mustWithID(t, []line{{ID: "A"}})
	journeys := mustWithID(t, []journey{{ID: "j1", LineID: "ghost"}})

	_, err := relations.NewOneToMany(lines, journeys, "lines_to_journeys",
		func(j *journey) string { return j.LineID })
	if !errors.Is(err, relations.ErrReferentialIntegrity) {
		t.Fatalf("error = %v; want ErrReferentialIntegrity", err)
	}
	for _, fragment := range []string{"lines_to_journeys", "ghost"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %q", err, fragment)
		}
	}
}

func TestOneToManyEmptyQueries(t *testing.T) {
	lines := mustWithID(t, []line{{ID: "A"}})
	journeys := mustWithID(t, []journey{{ID: "j1", LineID: "A"}})
	rel, err := relations.NewOneToMany(lines, journeys, "lines_to_journeys",
		func(j *journey) string { return j.LineID })
	if err != nil {
		t.Fatalf("NewOneToMany failed: %v", err)
	}

	if got := rel.CorrespondingForward(collection.NewIdxSet[line]()); got.Len() != 0 {
		t.Errorf("forward of empty set = %d correspondents; want 0", got.Len())
	}
	if got := rel.CorrespondingBackward(collection.NewIdxSet[journey]()); got.Len() != 0 {
		t.Errorf("backward of empty set = %d correspondents; want 0", got.Len())
	}
}

func TestManyToManyFromForward(t *testing.T) {
	journeys := mustWithID(t, []journey{{ID: "j1"}, {ID: "j2"}})
	platforms := mustWithID(t, []platform{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})

	forward := map[collection.Idx[journey]]collection.IdxSet[platform]{
		idxOf(t, journeys, "j1"): collection.NewIdxSet(idxOf(t, platforms, "p1"), idxOf(t, platforms, "p2")),
		idxOf(t, journeys, "j2"): collection.NewIdxSet(idxOf(t, platforms, "p2"), idxOf(t, platforms, "p3")),
	}
	rel := relations.ManyToManyFromForward(forward)

	got := rel.CorrespondingBackward(collection.NewIdxSet(idxOf(t, platforms, "p2")))
	if gotIDs := ids(journeys, got); !equalIDs(gotIDs, []string{"j1", "j2"}) {
		t.Errorf("backward(p2) = %v; want [j1 j2]", gotIDs)
	}
}

func TestManyToManyFromChain(t *testing.T) {
	lines := mustWithID(t, []line{{ID: "A"}})
	journeys := mustWithID(t, []journey{{ID: "j1", LineID: "A"}, {ID: "j2", LineID: "A"}})
	platforms := mustWithID(t, []platform{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})

	linesToJourneys, err := relations.NewOneToMany(lines, journeys, "lines_to_journeys",
		func(j *journey) string { return j.LineID })
	if err != nil {
		t.Fatalf("NewOneToMany failed: %v", err)
	}
	journeysToPlatforms := relations.ManyToManyFromForward(map[collection.Idx[journey]]collection.IdxSet[platform]{
		idxOf(t, journeys, "j1"): collection.NewIdxSet(idxOf(t, platforms, "p1"), idxOf(t, platforms, "p2")),
		idxOf(t, journeys, "j2"): collection.NewIdxSet(idxOf(t, platforms, "p2"), idxOf(t, platforms, "p3")),
	})

	chained := relations.ManyToManyFromChain[line, journey, platform](linesToJourneys, journeysToPlatforms)

	got := chained.CorrespondingForward(collection.NewIdxSet(idxOf(t, lines, "A")))
	if gotIDs := ids(platforms, got); !equalIDs(gotIDs, []string{"p1", "p2", "p3"}) {
		t.Errorf("chain forward(A) = %v; want [p1 p2 p3]", gotIDs)
	}

	back := chained.CorrespondingBackward(collection.NewIdxSet(idxOf(t, platforms, "p3")))
	if gotIDs := ids(lines, back); !equalIDs(gotIDs, []string{"A"}) {
		t.Errorf("chain backward(p3) = %v; want [A]", gotIDs)
	}
}

func TestManyToManyFromSink(t *testing.T) {
	modes := mustWithID(t, []mode{{ID: "Bus"}, {ID: "Tram"}})
	lines := mustWithID(t, []line{{ID: "A"}})
	journeys := mustWithID(t, []journey{
		{ID: "j1", LineID: "A", ModeID: "Bus"},
		{ID: "j2", LineID: "A", ModeID: "Tram"},
	})

	modesToJourneys, err := relations.NewOneToMany(modes, journeys, "modes_to_journeys",
		func(j *journey) string { return j.ModeID })
	if err != nil {
		t.Fatalf("NewOneToMany failed: %v", err)
	}
	linesToJourneys, err := relations.NewOneToMany(lines, journeys, "lines_to_journeys",
		func(j *journey) string { return j.LineID })
	if err != nil {
		t.Fatalf("NewOneToMany failed: %v", err)
	}

	joined := relations.ManyToManyFromSink[mode, journey, line](modesToJourneys, linesToJourneys)

	// both modes reach the one line through their journeys
	for _, modeID := range []string{"Bus", "Tram"} {
		got := joined.CorrespondingForward(collection.NewIdxSet(idxOf(t, modes, modeID)))
		if gotIDs := ids(lines, got); !equalIDs(gotIDs, []string{"A"}) {
			t.Errorf("sink forward(%s) = %v; want [A]", modeID, gotIDs)
		}
	}

	back := joined.CorrespondingBackward(collection.NewIdxSet(idxOf(t, lines, "A")))
	if gotIDs := ids(modes, back); !equalIDs(gotIDs, []string{"Bus", "Tram"}) {
		t.Errorf("sink backward(A) = %v; want [Bus Tram]", gotIDs)
	}
}
