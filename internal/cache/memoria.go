package cache

import (
	"sync"
	"time"
)

type entrada struct {
	valor  string
	expira time.Time
}

// MemoryCache é uma implementação em memória, usada quando o Redis
// não está configurado e nos testes.
type MemoryCache struct {
	mu    sync.RWMutex
	dados map[string]entrada
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{dados: make(map[string]entrada)}
}

func (m *MemoryCache) Obter(chave string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.dados[chave]
	if !ok || time.Now().After(e.expira) {
		return "", false
	}
	return e.valor, true
}

func (m *MemoryCache) Definir(chave, valor string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dados[chave] = entrada{valor: valor, expira: time.Now().Add(ttl)}
	return nil
}
