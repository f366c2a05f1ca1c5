package taxas

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/cache"
)

const chaveTaxasAtivas = "taxas:ativas"

// fonteTaxas é o que o decorator precisa do repositório de verdade.
type fonteTaxas interface {
	ListarAtivas() ([]TaxaBancaria, error)
}

// RepositorioComCache decora o Repository com um cache de TTL curto para a
// lista de taxas ativas. Só a entrada do motor é cacheada; os resultados
// de simulação nunca são guardados.
type RepositorioComCache struct {
	repo  fonteTaxas
	cache cache.Cache
	ttl   time.Duration
}

func NewRepositorioComCache(repo fonteTaxas, c cache.Cache, ttl time.Duration) *RepositorioComCache {
	return &RepositorioComCache{repo: repo, cache: c, ttl: ttl}
}

// ListarAtivas tenta o cache antes do banco. Falha de cache nunca derruba
// a requisição; cai para o banco.
func (r *RepositorioComCache) ListarAtivas() ([]TaxaBancaria, error) {
	if raw, ok := r.cache.Obter(chaveTaxasAtivas); ok {
		var list []TaxaBancaria
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return list, nil
		}
	}

	list, err := r.repo.ListarAtivas()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(list); err == nil {
		if err := r.cache.Definir(chaveTaxasAtivas, string(raw), r.ttl); err != nil {
			log.Printf("Falha ao gravar taxas no cache: %v", err)
		}
	}
	return list, nil
}
