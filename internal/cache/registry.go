package cache

import "sync"

// Registry hands out one Store per session id.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

func (r *Registry) For(sid string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[sid]
	if !ok {
		s = NewStore()
		r.stores[sid] = s
	}
	return s
}

// Drop forgets a session's mirror, e.g. on logout.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sid)
}
