package api

import (
	"io"
	"sync"
)

// progressTracker turns a byte count into monotonically non-decreasing
// integer percentages. Values derived from streamed bytes are capped at 99;
// complete() reports the final 100 and is called only after the server has
// acknowledged the request.
type progressTracker struct {
	total int64
	fn    ProgressFunc

	mu   sync.Mutex
	sent int64
	last int
}

func newProgressTracker(total int64, fn ProgressFunc) *progressTracker {
	return &progressTracker{total: total, fn: fn, last: -1}
}

// wrap instruments r so every read advances the percentage. With no
// callback or an unknown total the reader passes through untouched.
func (p *progressTracker) wrap(r io.Reader) io.Reader {
	if p.fn == nil || p.total <= 0 {
		return r
	}
	return &countingReader{r: r, tracker: p}
}

func (p *progressTracker) add(n int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sent += n
	pct := int(p.sent * 100 / p.total)
	if pct > 99 {
		pct = 99
	}
	if pct > p.last {
		p.last = pct
		p.fn(pct)
	}
}

func (p *progressTracker) complete() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.last = 100
	p.fn(100)
}

type countingReader struct {
	r       io.Reader
	tracker *progressTracker
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	if n > 0 {
		c.tracker.add(int64(n))
	}
	return n, err
}
