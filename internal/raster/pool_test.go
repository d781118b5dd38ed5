package raster

import "testing"

func TestPoolReuse(t *testing.T) {
	pool := NewPool(2)
	a := pool.Get(8, 8)
	a.SetPixelPremul(0, 0, 1, 2, 3, 4)
	pool.Put(a)

	b := pool.Get(8, 8)
	if b != a {
		t.Error("expected pooled pixmap to be reused")
	}
	if b.PixelAt(0, 0).A != 0 {
		t.Error("pooled pixmap not cleared on Get")
	}

	c := pool.Get(4, 4)
	if c.Width() != 4 {
		t.Errorf("new pixmap width = %d", c.Width())
	}
}

func TestPoolBucketLimit(t *testing.T) {
	pool := NewPool(1)
	kept, dropped := NewPixmap(2, 2), NewPixmap(2, 2)
	pool.Put(kept)
	pool.Put(dropped)
	pool.Put(nil)

	if got := pool.Get(2, 2); got != kept {
		t.Error("first pooled pixmap not returned")
	}
	if got := pool.Get(2, 2); got == kept || got == dropped {
		t.Error("bucket held more than its limit")
	}
}
