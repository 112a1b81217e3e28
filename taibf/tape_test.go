package taibf

import (
	"math/rand/v2"
	"testing"
)

const steps = 1024

func TestTapeInitialPosition(t *testing.T) {
	tape := NewTape()
	if !tape.AtLeftmost() {
		t.Fatal()
	}
	if !tape.AtRightmost() {
		t.Fatal()
	}
	if v := tape.Current(); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestTapeRightEdge(t *testing.T) {
	tape := NewTape()
	for range steps {
		tape.MoveRight()
		if tape.AtLeftmost() {
			t.Fatal()
		}
		if !tape.AtRightmost() {
			t.Fatal()
		}
	}
}

func TestTapeLeftEdge(t *testing.T) {
	tape := NewTape()
	for range steps {
		tape.MoveLeft()
		if !tape.AtLeftmost() {
			t.Fatal()
		}
		if tape.AtRightmost() {
			t.Fatal()
		}
	}
}

func TestTapeInBetween(t *testing.T) {
	tape := NewTape()
	tape.MoveLeftBy(steps)
	for range steps - 1 {
		tape.MoveRight()
		if tape.AtLeftmost() {
			t.Fatal()
		}
		if tape.AtRightmost() {
			t.Fatal()
		}
	}
	tape.MoveRight()
	if !tape.AtRightmost() {
		t.Fatal()
	}
}

func TestTapeMoveRightBy(t *testing.T) {
	tape := NewTape()
	for i := 1; i <= 5; i++ {
		tape.SetCurrent(byte(i))
		tape.MoveRightBy(steps)
	}
	for i := 5; i >= 1; i-- {
		tape.MoveLeftBy(steps)
		if v := tape.Current(); v != byte(i) {
			t.Fatalf("got %v, expected %v", v, i)
		}
	}
}

func TestTapeMoveLeftBy(t *testing.T) {
	tape := NewTape()
	for i := 1; i <= 5; i++ {
		tape.SetCurrent(byte(i))
		tape.MoveLeftBy(steps)
	}
	for i := 5; i >= 1; i-- {
		tape.MoveRightBy(steps)
		if v := tape.Current(); v != byte(i) {
			t.Fatalf("got %v, expected %v", v, i)
		}
	}
}

func TestTapeWrap(t *testing.T) {
	tape := NewTape()
	tape.Increase(255)
	tape.Increase(2)
	if v := tape.Current(); v != 1 {
		t.Fatalf("got %v", v)
	}
	tape.Decrease(2)
	if v := tape.Current(); v != 255 {
		t.Fatalf("got %v", v)
	}
	tape.Increase(256 * 3)
	if v := tape.Current(); v != 255 {
		t.Fatalf("got %v", v)
	}
}

func TestTapeRandomWalk(t *testing.T) {
	tape := NewTape()
	rnd := rand.New(rand.NewPCG(1, 2))
	written := make(map[int]byte)
	pos, minPos, maxPos := 0, 0, 0
	for range 100000 {
		switch rnd.IntN(3) {
		case 0:
			tape.MoveLeft()
			pos--
		case 1:
			tape.MoveRight()
			pos++
		case 2:
			v := byte(rnd.IntN(256))
			tape.SetCurrent(v)
			written[pos] = v
		}
		minPos = min(minPos, pos)
		maxPos = max(maxPos, pos)
		if tape.AtLeftmost() != (pos == minPos) {
			t.Fatalf("leftmost mismatch at %d, min %d", pos, minPos)
		}
		if tape.AtRightmost() != (pos == maxPos) {
			t.Fatalf("rightmost mismatch at %d, max %d", pos, maxPos)
		}
	}

	// read back every visited cell
	tape.MoveLeftBy(pos - minPos)
	for p := minPos; p <= maxPos; p++ {
		if v := tape.Current(); v != written[p] {
			t.Fatalf("at %d: got %v, expected %v", p, v, written[p])
		}
		tape.MoveRight()
	}
}

func TestTapeBookmarks(t *testing.T) {
	tape := NewTape()
	tape.SetCurrent(1)
	tape.PushBookmark()
	tape.MoveLeftBy(300)
	tape.SetCurrent(2)
	tape.PushBookmark()
	tape.MoveRightBy(1000)

	if !tape.PopBookmark() {
		t.Fatal()
	}
	if v := tape.Current(); v != 2 {
		t.Fatalf("got %v", v)
	}
	if !tape.PopBookmark() {
		t.Fatal()
	}
	if v := tape.Current(); v != 1 {
		t.Fatalf("got %v", v)
	}
	tape.MoveLeftBy(300)
	if v := tape.Current(); v != 2 {
		t.Fatalf("got %v", v)
	}
}

func TestTapePopEmptyBookmark(t *testing.T) {
	tape := NewTape()
	tape.MoveRightBy(200)
	tape.SetCurrent(42)
	if tape.PopBookmark() {
		t.Fatal("should fail")
	}
	if v := tape.Current(); v != 42 {
		t.Fatalf("got %v", v)
	}
	if !tape.AtRightmost() {
		t.Fatal()
	}
}
