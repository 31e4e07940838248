package player

import (
	"testing"

	"github.com/mersenne-sister/chordy/theory/note"
)

func TestPlayValidation(t *testing.T) {
	q := &Player{Addr: "127.0.0.1:8765"}
	if err := q.Play(nil, nil); err == nil {
		t.Error("empty pitch list accepted, want error")
	}

	pitches := []note.Pitch{note.MustParsePitch("C4")}
	for _, addr := range []string{"", "localhost", "localhost:notaport"} {
		q := &Player{Addr: addr}
		if err := q.Play(pitches, nil); err == nil {
			t.Errorf("address %q accepted, want error", addr)
		}
	}
}
