package taxas

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// RepositorioTaxas é o que o Handler precisa do repositório.
type RepositorioTaxas interface {
	ListarAtivas() ([]TaxaBancaria, error)
	ListarTodas() ([]TaxaBancaria, error)
	BuscarPorID(id uint) (*TaxaBancaria, error)
	Criar(t *TaxaBancaria) error
	Atualizar(t *TaxaBancaria) error
	Deletar(t *TaxaBancaria) error
}

// Handler gerencia as rotas de taxas bancárias
type Handler struct {
	Repo RepositorioTaxas
}

// NewHandler cria um novo Handler
func NewHandler(repo RepositorioTaxas) *Handler {
	return &Handler{Repo: repo}
}

// Listar trata GET /taxas (rota pública do widget).
// Retorna somente taxas ativas; a listagem completa fica em ListarTodas,
// atrás do middleware de admin.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarAtivas()
	if err != nil {
		http.Error(w, "Erro ao buscar taxas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListarTodas trata GET /taxas?todas=true (rota administrativa).
// Inclui taxas inativas.
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar taxas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /taxas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de taxa inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Taxa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Criar trata POST /taxas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var t TaxaBancaria
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if t.BancoCodigo == "" || t.BancoNome == "" {
		http.Error(w, "Os campos 'bankCode' e 'bankName' são obrigatórios", http.StatusBadRequest)
		return
	}
	if t.TaxaMinima < 0 || t.TaxaMaxima < t.TaxaMinima {
		http.Error(w, "Faixa de taxas inválida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Criar(&t); err != nil {
		http.Error(w, "Erro ao criar taxa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Atualizar trata PUT /taxas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de taxa inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Taxa não encontrada", http.StatusNotFound)
		return
	}

	var payload TaxaBancaria
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// Atualiza campos permitidos
	t.BancoCodigo = payload.BancoCodigo
	t.BancoNome = payload.BancoNome
	t.Modalidade = payload.Modalidade
	t.TaxaMinima = payload.TaxaMinima
	t.TaxaMaxima = payload.TaxaMaxima
	t.LTVMaximo = payload.LTVMaximo
	t.PrazoMaximoMeses = payload.PrazoMaximoMeses
	t.ComprometimentoMaximo = payload.ComprometimentoMaximo
	t.ValorImovelMinimo = payload.ValorImovelMinimo
	t.ValorImovelMaximo = payload.ValorImovelMaximo
	t.TaxaSeguro = payload.TaxaSeguro
	t.TarifaAdministrativa = payload.TarifaAdministrativa
	t.Observacoes = payload.Observacoes
	t.Ativo = payload.Ativo

	if err := h.Repo.Atualizar(t); err != nil {
		http.Error(w, "Erro ao atualizar taxa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Deletar trata DELETE /taxas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de taxa inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Taxa não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Deletar(t); err != nil {
		http.Error(w, "Erro ao deletar taxa", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
