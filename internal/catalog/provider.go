package catalog

import "sync/atomic"

// Provider hands out the current catalog and lets a background reload swap
// in a replacement. Readers always see a complete catalog.
type Provider struct {
	cur atomic.Pointer[Catalog]
}

func NewProvider(c *Catalog) *Provider {
	p := &Provider{}
	p.cur.Store(c)
	return p
}

func (p *Provider) Get() *Catalog { return p.cur.Load() }

func (p *Provider) Replace(c *Catalog) {
	if c != nil {
		p.cur.Store(c)
	}
}
