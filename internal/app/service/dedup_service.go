package service

import (
	"sync"
	"time"
)

// Namespaces de dedup, uno por plataforma. Discord se dedupea por ID de
// mensaje (las redeliveries del gateway traen el mismo ID); Twitch por
// handle del que escribe, con ventana de expiración.
const (
	NamespaceDiscord = "discord"
	NamespaceTwitch  = "twitch"
)

// Guard suprime eventos re-entregados. Cada namespace tiene su propio
// keyspace y retención: TTL cero retiene las keys de por vida del
// proceso, TTL positivo libera cada key una sola vez, TTL después de
// insertarla. Seguro para llamar desde los dos event loops a la vez.
type Guard struct {
	mu   sync.Mutex
	ttls map[string]time.Duration
	seen map[string]map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{
		ttls: map[string]time.Duration{},
		seen: map[string]map[string]struct{}{},
	}
}

// Namespace registra un keyspace con su retención.
func (g *Guard) Namespace(name string, ttl time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ttls[name] = ttl
	if g.seen[name] == nil {
		g.seen[name] = map[string]struct{}{}
	}
}

// ShouldProcess devuelve true (y registra la key) si el evento no se vio
// antes. La liberación diferida corre en su propio timer, una por
// inserción, sin sostener el lock mientras espera y sin cancelarse nunca.
func (g *Guard) ShouldProcess(ns, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	keys := g.seen[ns]
	if keys == nil {
		keys = map[string]struct{}{}
		g.seen[ns] = keys
	}
	if _, dup := keys[key]; dup {
		return false
	}
	keys[key] = struct{}{}
	if ttl := g.ttls[ns]; ttl > 0 {
		time.AfterFunc(ttl, func() { g.release(ns, key) })
	}
	return true
}

func (g *Guard) release(ns, key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if keys := g.seen[ns]; keys != nil {
		delete(keys, key)
	}
}
