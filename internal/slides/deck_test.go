package slides_test

import (
	"testing"

	"lectern/internal/slides"
)

func TestNewDeckStartsEmpty(t *testing.T) {
	deck := slides.NewDeck(4)
	if deck.Len() != 4 {
		t.Fatalf("expected 4 slots, got %d", deck.Len())
	}
	if deck.Any() || deck.Count() != 0 {
		t.Fatal("expected empty deck")
	}
	for i := 0; i < deck.Len(); i++ {
		if _, ok := deck.Get(i); ok {
			t.Fatalf("slot %d should be absent", i)
		}
		if deck.Attempted(i) {
			t.Fatalf("slot %d should not be attempted", i)
		}
	}
}

func TestSetWritesOnlyIndexedSlot(t *testing.T) {
	deck := slides.NewDeck(3)
	deck.Set(2, slides.Content{Title: "third"})
	if deck.Present(0) || deck.Present(1) {
		t.Fatal("only slot 2 should be filled")
	}
	got, ok := deck.Get(2)
	if !ok || got.Title != "third" {
		t.Fatalf("unexpected slot 2: %+v %v", got, ok)
	}
	if !deck.Attempted(2) {
		t.Fatal("filled slot counts as attempted")
	}
}

func TestSetOutOfRangeIgnored(t *testing.T) {
	deck := slides.NewDeck(2)
	if deck.Set(-1, slides.Content{Title: "x"}) || deck.Set(2, slides.Content{Title: "x"}) {
		t.Fatal("expected out-of-range writes to be rejected")
	}
	if deck.Any() {
		t.Fatal("deck must stay empty")
	}
	deck.MarkAttempted(5)
	if deck.Attempted(5) {
		t.Fatal("out-of-range attempt must not register")
	}
}

func TestEmptyContentIsStillPresent(t *testing.T) {
	deck := slides.NewDeck(1)
	deck.Set(0, slides.Content{})
	if !deck.Present(0) {
		t.Fatal("zero-value content must be distinguishable from absence")
	}
}

func TestFilledPreservesOrder(t *testing.T) {
	deck := slides.NewDeck(5)
	deck.Set(3, slides.Content{Title: "d"})
	deck.Set(0, slides.Content{Title: "a"})
	deck.Set(1, slides.Content{Title: "b"})
	filled := deck.Filled()
	if len(filled) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(filled))
	}
	for i, want := range []string{"a", "b", "d"} {
		if filled[i].Title != want {
			t.Fatalf("slide %d: got %q want %q", i, filled[i].Title, want)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	deck := slides.NewDeck(1)
	deck.Set(0, slides.Content{Title: "a", Content: []string{"one"}})
	got, _ := deck.Get(0)
	got.Content[0] = "mutated"
	again, _ := deck.Get(0)
	if again.Content[0] != "one" {
		t.Fatal("deck content must not be mutable through Get")
	}
}

func TestStatuses(t *testing.T) {
	deck := slides.NewDeck(3)
	deck.Set(0, slides.Content{Title: "a"})
	deck.MarkAttempted(1)
	statuses := deck.Statuses()
	if !statuses[0].Present || !statuses[0].Attempted {
		t.Fatalf("unexpected slot 0 status %+v", statuses[0])
	}
	if statuses[1].Present || !statuses[1].Attempted {
		t.Fatalf("unexpected slot 1 status %+v", statuses[1])
	}
	if statuses[2].Present || statuses[2].Attempted {
		t.Fatalf("unexpected slot 2 status %+v", statuses[2])
	}
}
