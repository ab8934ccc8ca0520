package collection_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-model/collection"
)

func TestIdxSet(t *testing.T) {
	c := mustCollection(t, busStop{ID: "a"}, busStop{ID: "b"}, busStop{ID: "c"})
	idxA, _ := c.GetIdx("a")
	idxB, _ := c.GetIdx("b")
	idxC, _ := c.GetIdx("c")

	set := collection.NewIdxSet(idxB, idxA)
	if set.Len() != 2 {
		t.Fatalf("Len = %d; want 2", set.Len())
	}
	if !set.Contains(idxA) || set.Contains(idxC) {
		t.Error("Contains gave wrong membership")
	}

	// adding an existing index must not grow the set
	set.Add(idxA)
	if set.Len() != 2 {
		t.Errorf("Len = %d after duplicate Add; want 2", set.Len())
	}

	set.Union(collection.NewIdxSet(idxC))
	if set.Len() != 3 {
		t.Errorf("Len = %d after Union; want 3", set.Len())
	}

	ordered := set.Slice()
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Pos() >= ordered[i].Pos() {
			t.Fatalf("Slice not ordered by position: %v", ordered)
		}
	}
}
