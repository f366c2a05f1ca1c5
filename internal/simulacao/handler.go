package simulacao

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Handler expõe o endpoint público do simulador de financiamento
type Handler struct {
	Servico *Servico
}

// NewHandler cria um novo Handler
func NewHandler(s *Servico) *Handler {
	return &Handler{Servico: s}
}

// Simular trata POST /simulacoes
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var pedido PedidoSimulacao
	if err := json.NewDecoder(r.Body).Decode(&pedido); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	params, err := pedido.Validar()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sims, err := h.Servico.Simular(params)
	if err != nil {
		log.Printf("Erro ao simular financiamento: %v", err)
		http.Error(w, "Erro ao consultar as taxas bancárias", http.StatusInternalServerError)
		return
	}

	resposta := RespostaSimulacao{
		Entrada: EntradaEco{
			ValorImovel:     params.ValorImovel,
			Entrada:         params.Entrada,
			ValorFinanciado: params.ValorFinanciado,
			PrazoMeses:      params.PrazoMeses,
			RendaBruta:      params.RendaBruta,
			TipoImovel:      params.TipoImovel,
			PrimeiroImovel:  params.PrimeiroImovel,
			ValorFGTS:       params.ValorFGTS,
		},
		Simulacoes: sims,
		GeradoEm:   time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
