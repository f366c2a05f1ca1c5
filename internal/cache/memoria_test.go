package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_ObterDefinir(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Obter("taxas:ativas"); ok {
		t.Errorf("chave inexistente não deveria retornar valor")
	}

	if err := c.Definir("taxas:ativas", `[{"bankCode":"caixa"}]`, time.Minute); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	v, ok := c.Obter("taxas:ativas")
	if !ok || v != `[{"bankCode":"caixa"}]` {
		t.Errorf("valor gravado não foi recuperado: %q", v)
	}
}

func TestMemoryCache_Expiracao(t *testing.T) {
	c := NewMemoryCache()

	if err := c.Definir("chave", "valor", -time.Second); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, ok := c.Obter("chave"); ok {
		t.Errorf("entrada expirada não deveria ser retornada")
	}
}
