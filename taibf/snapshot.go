package taibf

import (
	"encoding/gob"
	"fmt"
	"io"
)

// Snapshot holds the visited range of a tape.
type Snapshot struct {
	Cells  []byte
	Cursor int
}

func (t *Tape) Snapshot() Snapshot {
	var ret Snapshot
	for c := t.head; c != nil; c = c.next {
		start := 0
		if c == t.head {
			start = t.lower
		}
		end := ChunkSize - 1
		if c == t.tail {
			end = t.upper
		}
		for i := start; i <= end; i++ {
			if c == t.current && i == t.offset {
				ret.Cursor = len(ret.Cells)
			}
			ret.Cells = append(ret.Cells, c.cells[i])
		}
	}
	return ret
}

func RestoreTape(snapshot Snapshot) (*Tape, error) {
	t := NewTape()
	if len(snapshot.Cells) == 0 {
		if snapshot.Cursor != 0 {
			return nil, fmt.Errorf("cursor %d out of range", snapshot.Cursor)
		}
		return t, nil
	}
	if snapshot.Cursor < 0 || snapshot.Cursor >= len(snapshot.Cells) {
		return nil, fmt.Errorf("cursor %d out of range [0, %d)", snapshot.Cursor, len(snapshot.Cells))
	}
	for i, value := range snapshot.Cells {
		if i > 0 {
			t.MoveRight()
		}
		t.SetCurrent(value)
	}
	t.MoveLeftBy(len(snapshot.Cells) - 1 - snapshot.Cursor)
	return t, nil
}

// Suspend writes the tape state to w. Bookmarks are not saved.
func (t *Tape) Suspend(w io.Writer) error {
	return gob.NewEncoder(w).Encode(t.Snapshot())
}

func (t *Tape) Restore(r io.Reader) error {
	var snapshot Snapshot
	if err := gob.NewDecoder(r).Decode(&snapshot); err != nil {
		return err
	}
	restored, err := RestoreTape(snapshot)
	if err != nil {
		return err
	}
	*t = *restored
	return nil
}
