package promocao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia as rotas administrativas de ajustes promocionais de LTV
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Listar trata GET /promocoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar promoções", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Criar trata POST /promocoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var a AjusteLTV
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if a.BancoCodigo == "" {
		http.Error(w, "O campo 'bankCode' é obrigatório", http.StatusBadRequest)
		return
	}
	if a.TipoImovel != "" && a.TipoImovel != "novo" && a.TipoImovel != "usado" {
		http.Error(w, "O campo 'propertyType' deve ser 'novo' ou 'usado'", http.StatusBadRequest)
		return
	}
	if a.LimiteAbsoluto == 0 {
		a.LimiteAbsoluto = 0.95
	}

	if err := h.Repo.Criar(&a); err != nil {
		http.Error(w, "Erro ao criar promoção", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// Atualizar trata PUT /promocoes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de promoção inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Promoção não encontrada", http.StatusNotFound)
		return
	}

	var payload AjusteLTV
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	a.BancoCodigo = payload.BancoCodigo
	a.Modalidade = payload.Modalidade
	a.TipoImovel = payload.TipoImovel
	a.SomentePrimeiroImovel = payload.SomentePrimeiroImovel
	a.ElevarLTVPara = payload.ElevarLTVPara
	a.DeltaLTV = payload.DeltaLTV
	a.LimiteAbsoluto = payload.LimiteAbsoluto
	a.Descricao = payload.Descricao
	a.Ativo = payload.Ativo

	if err := h.Repo.Atualizar(a); err != nil {
		http.Error(w, "Erro ao atualizar promoção", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Deletar trata DELETE /promocoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de promoção inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Promoção não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Deletar(a); err != nil {
		http.Error(w, "Erro ao deletar promoção", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
