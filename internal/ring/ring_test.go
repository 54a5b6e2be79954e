package ring_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-pagesim/internal/ring"
)

func TestRing(t *testing.T) {
	t.Run("zero value", zeroValue)
	t.Run("link", link)
	t.Run("unlink", unlink)
	t.Run("move", move)
}

func zeroValue(t *testing.T) {
	t.Parallel()
	var r ring.Ring[int]
	if got := r.Len(); got != 1 {
		t.Fatalf("zero ring length\n\tgot: %d\n\twant: %d", got, 1)
	}
	if r.Next() != &r || r.Prev() != &r {
		t.Fatal("zero ring does not point to itself")
	}
	var empty *ring.Ring[int]
	if got := empty.Len(); got != 0 {
		t.Fatalf("nil ring length\n\tgot: %d\n\twant: %d", got, 0)
	}
}

func link(t *testing.T) {
	t.Parallel()
	head := newRing(1, 2, 3)
	checkPages(t, head, []int{1, 2, 3})
	// Splice before head, i.e. at the tail.
	head.Prev().Link(newRing(4))
	checkPages(t, head, []int{1, 2, 3, 4})
}

func unlink(t *testing.T) {
	t.Parallel()
	head := newRing(1, 2, 3, 4)
	removed := head.Unlink(2)
	checkPages(t, head, []int{1, 4})
	checkPages(t, removed, []int{2, 3})
	if got := head.Unlink(0); got != nil {
		t.Fatalf("unlinking zero elements returned %v", got.Page)
	}
}

func move(t *testing.T) {
	t.Parallel()
	head := newRing(1, 2, 3)
	for _, test := range []struct {
		n, want int
	}{
		{0, 1}, {1, 2}, {2, 3}, {3, 1}, {-1, 3}, {-4, 3},
	} {
		if got := head.Move(test.n).Page; got != test.want {
			t.Errorf("Move(%d)\n\tgot: %d\n\twant: %d",
				test.n, got, test.want)
		}
	}
}

func newRing(pages ...int) *ring.Ring[int] {
	var head *ring.Ring[int]
	for _, page := range pages {
		r := &ring.Ring[int]{Frame: ring.Frame[int]{Page: page}}
		if head == nil {
			head = r.Next()
			continue
		}
		head.Prev().Link(r)
	}
	return head
}

func checkPages(tb testing.TB, r *ring.Ring[int], want []int) {
	tb.Helper()
	var got []int
	for element := range r.All() {
		got = append(got, element.Page)
	}
	if !slices.Equal(got, want) {
		tb.Fatalf("unexpected ring order"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			got, want)
	}
}
