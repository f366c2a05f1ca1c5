package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// EnviarWebhookSemResultado avisa o time comercial quando uma simulação
// legítima não encontrou banco elegível. Melhor esforço: falha só é logada.
func EnviarWebhookSemResultado(url string, valorImovel, entrada float64, prazoMeses int, rendaBruta float64) {
	payload := map[string]interface{}{
		"mensagem":    "Alerta: simulação de financiamento sem banco elegível",
		"valorImovel": valorImovel,
		"entrada":     entrada,
		"prazoMeses":  prazoMeses,
		"rendaBruta":  rendaBruta,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
