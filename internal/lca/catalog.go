package lca

// Catalog is a read-only nanoparticle lookup table.
// The zero value is an empty catalog.
type Catalog struct {
	order   []string
	records map[string]NanoparticleRecord
}

// NewCatalog builds a catalog from records. A later record with the same
// name replaces an earlier one but keeps its listing position.
func NewCatalog(records ...NanoparticleRecord) *Catalog {
	c := &Catalog{records: make(map[string]NanoparticleRecord, len(records))}
	c.add(records)
	return c
}

// DefaultCatalog returns the built-in nanoparticle inventory.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinNanoparticles()...)
}

func (c *Catalog) add(records []NanoparticleRecord) {
	for _, r := range records {
		if _, exists := c.records[r.Name]; !exists {
			c.order = append(c.order, r.Name)
		}
		c.records[r.Name] = r.Clone()
	}
}

// With returns a new catalog holding c's records plus records.
// c itself is left unchanged.
func (c *Catalog) With(records ...NanoparticleRecord) *Catalog {
	out := &Catalog{records: make(map[string]NanoparticleRecord, c.Len()+len(records))}
	if c != nil {
		for _, name := range c.order {
			out.order = append(out.order, name)
			out.records[name] = c.records[name].Clone()
		}
	}
	out.add(records)
	return out
}

// Lookup returns a copy of the record stored under name.
// Matching is exact and case-sensitive; a miss is reported through ok.
func (c *Catalog) Lookup(name string) (NanoparticleRecord, bool) {
	if c == nil {
		return NanoparticleRecord{}, false
	}
	r, ok := c.records[name]
	if !ok {
		return NanoparticleRecord{}, false
	}
	return r.Clone(), true
}

// Names returns the catalog names in listing order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Records returns copies of all records in listing order.
func (c *Catalog) Records() []NanoparticleRecord {
	if c == nil {
		return nil
	}
	out := make([]NanoparticleRecord, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.records[name].Clone())
	}
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
