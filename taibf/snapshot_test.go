package taibf

import (
	"bytes"
	"testing"
)

func TestSnapshot(t *testing.T) {
	tape := NewTape()
	tape.MoveLeftBy(200)
	tape.SetCurrent(1)
	tape.MoveRightBy(400)
	tape.SetCurrent(2)
	tape.MoveLeftBy(100)
	tape.SetCurrent(3)

	snapshot := tape.Snapshot()
	if len(snapshot.Cells) != 401 {
		t.Fatalf("got %v", len(snapshot.Cells))
	}
	if snapshot.Cursor != 300 {
		t.Fatalf("got %v", snapshot.Cursor)
	}
	if snapshot.Cells[0] != 1 || snapshot.Cells[400] != 2 || snapshot.Cells[300] != 3 {
		t.Fatal()
	}

	restored, err := RestoreTape(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if v := restored.Current(); v != 3 {
		t.Fatalf("got %v", v)
	}
	restored.MoveRightBy(100)
	if v := restored.Current(); v != 2 {
		t.Fatalf("got %v", v)
	}
	if !restored.AtRightmost() {
		t.Fatal()
	}
	restored.MoveLeftBy(400)
	if v := restored.Current(); v != 1 {
		t.Fatalf("got %v", v)
	}
	if !restored.AtLeftmost() {
		t.Fatal()
	}
}

func TestSuspendRestore(t *testing.T) {
	tape := NewTape()
	tape.SetCurrent('a')
	tape.MoveRight()
	tape.SetCurrent('b')

	buf := new(bytes.Buffer)
	if err := tape.Suspend(buf); err != nil {
		t.Fatal(err)
	}

	restored := NewTape()
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	if err := DumpTape(out, restored); err != nil {
		t.Fatal(err)
	}
	if str := out.String(); str != "[a <b>]\n" {
		t.Fatalf("got %q", str)
	}
}

func TestRestoreBadCursor(t *testing.T) {
	_, err := RestoreTape(Snapshot{
		Cells:  []byte{1, 2},
		Cursor: 2,
	})
	if err == nil {
		t.Fatal("should fail")
	}
	_, err = RestoreTape(Snapshot{
		Cursor: 1,
	})
	if err == nil {
		t.Fatal("should fail")
	}
	tape, err := RestoreTape(Snapshot{})
	if err != nil {
		t.Fatal(err)
	}
	if !tape.AtLeftmost() || !tape.AtRightmost() {
		t.Fatal()
	}
}
