package mediakit

import "io"

// ProgressFunc receives an integer percentage in [0, 100]. Reported
// values never decrease, and 100 is only reported once the upload has
// actually succeeded.
type ProgressFunc func(percent int)

// progressReader reports read progress against a known total. It caps
// intermediate reports at 99 so that 100 stays reserved for success.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	lastPct  int
	onChange ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, lastPct: -1, onChange: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report()
	}
	return n, err
}

func (p *progressReader) report() {
	if p.onChange == nil || p.total <= 0 {
		return
	}

	pct := int(p.read * 100 / p.total)
	if pct > 99 {
		pct = 99
	}
	if pct > p.lastPct {
		p.lastPct = pct
		p.onChange(pct)
	}
}
