package taxas

import (
	"errors"
	"testing"
	"time"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/cache"
)

type fonteFake struct {
	chamadas int
	lista    []TaxaBancaria
	err      error
}

func (f *fonteFake) ListarAtivas() ([]TaxaBancaria, error) {
	f.chamadas++
	return f.lista, f.err
}

func TestRepositorioComCache_SegundaChamadaVemDoCache(t *testing.T) {
	fonte := &fonteFake{lista: []TaxaBancaria{{ID: 1, BancoCodigo: "caixa", BancoNome: "Caixa"}}}
	repo := NewRepositorioComCache(fonte, cache.NewMemoryCache(), time.Minute)

	a, err := repo.ListarAtivas()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	b, err := repo.ListarAtivas()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if fonte.chamadas != 1 {
		t.Errorf("segunda chamada deveria vir do cache; fonte consultada %d vezes", fonte.chamadas)
	}
	if len(a) != 1 || len(b) != 1 || b[0].BancoCodigo != "caixa" {
		t.Errorf("conteúdo do cache difere do banco")
	}
}

type cacheFalho struct{}

func (cacheFalho) Obter(string) (string, bool) { return "", false }
func (cacheFalho) Definir(string, string, time.Duration) error {
	return errors.New("sem conexão com o redis")
}

func TestRepositorioComCache_FalhaDeCacheNaoDerrubaConsulta(t *testing.T) {
	fonte := &fonteFake{lista: []TaxaBancaria{{ID: 1, BancoCodigo: "caixa"}}}
	repo := NewRepositorioComCache(fonte, cacheFalho{}, time.Minute)

	list, err := repo.ListarAtivas()
	if err != nil {
		t.Fatalf("falha ao gravar no cache não deveria virar erro: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("esperava 1 taxa, obteve %d", len(list))
	}
}

func TestRepositorioComCache_ErroDaFontePropaga(t *testing.T) {
	fonte := &fonteFake{err: errors.New("conexão recusada")}
	repo := NewRepositorioComCache(fonte, cache.NewMemoryCache(), time.Minute)

	if _, err := repo.ListarAtivas(); err == nil {
		t.Errorf("falha do banco deveria propagar quando o cache está frio")
	}
}
