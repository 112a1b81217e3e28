package taibf

const ChunkSize = 128

type chunk struct {
	cells [ChunkSize]byte
	prev  *chunk
	next  *chunk
}

type bookmark struct {
	chunk  *chunk
	offset int
}

// Tape is an unbounded sequence of byte cells, grown lazily in chunks at both ends.
// A Tape must not be used by concurrent runs.
type Tape struct {
	head    *chunk
	tail    *chunk
	current *chunk
	offset  int

	// lowest visited offset inside head
	lower int
	// highest visited offset inside tail
	upper int

	bookmarks []bookmark
}

func NewTape() *Tape {
	c := new(chunk)
	return &Tape{
		head:    c,
		tail:    c,
		current: c,
	}
}

func (t *Tape) Current() byte {
	return t.current.cells[t.offset]
}

func (t *Tape) SetCurrent(value byte) {
	t.current.cells[t.offset] = value
}

// Increase adds n to the current cell, wrapping at 256.
func (t *Tape) Increase(n int) {
	t.current.cells[t.offset] += byte(n)
}

// Decrease subtracts n from the current cell, wrapping at 256.
func (t *Tape) Decrease(n int) {
	t.current.cells[t.offset] -= byte(n)
}

func (t *Tape) MoveLeft() {
	if t.offset > 0 {
		t.offset--
		if t.current == t.head && t.offset < t.lower {
			t.lower = t.offset
		}
		return
	}

	if t.current.prev == nil {
		c := &chunk{
			next: t.current,
		}
		t.current.prev = c
		t.head = c
		t.lower = ChunkSize - 1
	}
	t.current = t.current.prev
	t.offset = ChunkSize - 1
}

func (t *Tape) MoveRight() {
	if t.offset < ChunkSize-1 {
		t.offset++
		if t.current == t.tail && t.offset > t.upper {
			t.upper = t.offset
		}
		return
	}

	if t.current.next == nil {
		c := &chunk{
			prev: t.current,
		}
		t.current.next = c
		t.tail = c
		t.upper = 0
	}
	t.current = t.current.next
	t.offset = 0
}

func (t *Tape) MoveLeftBy(n int) {
	for range n {
		t.MoveLeft()
	}
}

func (t *Tape) MoveRightBy(n int) {
	for range n {
		t.MoveRight()
	}
}

// AtLeftmost reports whether the cursor is on the leftmost cell ever visited.
func (t *Tape) AtLeftmost() bool {
	return t.current == t.head && t.offset == t.lower
}

// AtRightmost reports whether the cursor is on the rightmost cell ever visited.
func (t *Tape) AtRightmost() bool {
	return t.current == t.tail && t.offset == t.upper
}

func (t *Tape) PushBookmark() {
	t.bookmarks = append(t.bookmarks, bookmark{
		chunk:  t.current,
		offset: t.offset,
	})
}

// PopBookmark moves the cursor back to the last pushed bookmark.
// It returns false and leaves the cursor alone if there is none.
func (t *Tape) PopBookmark() bool {
	if len(t.bookmarks) == 0 {
		return false
	}
	b := t.bookmarks[len(t.bookmarks)-1]
	t.bookmarks[len(t.bookmarks)-1] = bookmark{}
	t.bookmarks = t.bookmarks[:len(t.bookmarks)-1]
	t.current = b.chunk
	t.offset = b.offset
	return true
}
