package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/auth"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/promocao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/simulacao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/taxas"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/usuario"
)

type repoTaxasFake struct{}

func (repoTaxasFake) ListarAtivas() ([]taxas.TaxaBancaria, error) {
	return []taxas.TaxaBancaria{
		{ID: 1, BancoCodigo: "caixa", BancoNome: "Caixa", Ativo: true},
	}, nil
}

func (repoTaxasFake) ListarTodas() ([]taxas.TaxaBancaria, error) {
	return []taxas.TaxaBancaria{
		{ID: 1, BancoCodigo: "caixa", BancoNome: "Caixa", Ativo: true},
		{ID: 2, BancoCodigo: "extinto", BancoNome: "Banco Extinto", Ativo: false},
	}, nil
}

func (repoTaxasFake) BuscarPorID(uint) (*taxas.TaxaBancaria, error) { return nil, nil }
func (repoTaxasFake) Criar(*taxas.TaxaBancaria) error               { return nil }
func (repoTaxasFake) Atualizar(*taxas.TaxaBancaria) error           { return nil }
func (repoTaxasFake) Deletar(*taxas.TaxaBancaria) error             { return nil }

func routerDeTeste(t *testing.T) http.Handler {
	t.Helper()
	if err := auth.CarregarSegredo("segredo-de-teste"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	return novoRouter(
		simulacao.NewHandler(nil),
		taxas.NewHandler(repoTaxasFake{}),
		promocao.NewHandler(nil),
		usuario.NewHandler(nil),
	)
}

func decodificarTaxas(t *testing.T, rec *httptest.ResponseRecorder) []taxas.TaxaBancaria {
	t.Helper()
	var list []taxas.TaxaBancaria
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	return list
}

func TestRotaPublicaListaApenasAtivas(t *testing.T) {
	r := routerDeTeste(t)

	req := httptest.NewRequest(http.MethodGet, "/taxas", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d", rec.Code)
	}
	list := decodificarTaxas(t, rec)
	if len(list) != 1 || !list[0].Ativo {
		t.Errorf("rota pública deveria listar só taxas ativas, obteve %d", len(list))
	}
}

func TestListagemCompletaExigeToken(t *testing.T) {
	r := routerDeTeste(t)

	req := httptest.NewRequest(http.MethodGet, "/taxas?todas=true", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("listagem com inativas sem token deveria dar 401, obteve %d", rec.Code)
	}
}

func TestListagemCompletaExigeAdmin(t *testing.T) {
	r := routerDeTeste(t)

	token, err := auth.GerarToken(7, false)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/taxas?todas=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("listagem com inativas sem perfil admin deveria dar 403, obteve %d", rec.Code)
	}
}

func TestListagemCompletaComAdminIncluiInativas(t *testing.T) {
	r := routerDeTeste(t)

	token, err := auth.GerarToken(1, true)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/taxas?todas=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d", rec.Code)
	}
	list := decodificarTaxas(t, rec)
	if len(list) != 2 {
		t.Errorf("admin deveria ver também as inativas, obteve %d", len(list))
	}
}
