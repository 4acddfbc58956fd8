package seo

// Synchronizer rewrites a Head whenever the shown path changes. Like the Head
// it drives, it is confined to one render and is not safe for concurrent use.
type Synchronizer struct {
	head   *Head
	site   Site
	table  Table
	last   string
	synced bool
}

// NewSynchronizer binds head to the site and its SEO table.
func NewSynchronizer(head *Head, site Site, table Table) *Synchronizer {
	return &Synchronizer{head: head, site: site.WithDefaults(), table: table}
}

// Mount runs the initial synchronization.
func (s *Synchronizer) Mount(path string) []Write {
	return s.Sync(path)
}

// Observe synchronizes after a route change. It does nothing when path is the
// one already shown.
func (s *Synchronizer) Observe(path string) []Write {
	if s.synced && path == s.last {
		return nil
	}
	return s.Sync(path)
}

// Sync applies the plan for path and returns it.
func (s *Synchronizer) Sync(path string) []Write {
	writes := Plan(path, s.site, s.table)
	s.head.Apply(writes)
	s.last = path
	s.synced = true
	return writes
}

// Path returns the last synchronized path.
func (s *Synchronizer) Path() string {
	return s.last
}
