package player

import (
	"fmt"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/mersenne-sister/chordy/theory/note"
)

var stateLines = 0

// showState redraws a one-line now-playing display in place.
func (q *Player) showState(p note.Pitch) {
	if !q.ShowState {
		return
	}
	if 0 < stateLines {
		fmt.Print(cursor.MoveUp(stateLines))
		fmt.Print(cursor.ClearEntireLine())
	}
	fmt.Printf("\rnow playing: %-8s\n", p.String())
	stateLines = 1
}
