package utils

import "math"

// ArredondarMoeda arredonda um valor monetário para 2 casas (centavos).
// Aplicar apenas na borda de saída; o cálculo interno usa precisão total.
func ArredondarMoeda(v float64) float64 {
	return math.Round(v*100) / 100
}

// ArredondarTaxa arredonda uma taxa para 4 casas decimais (exibição).
func ArredondarTaxa(v float64) float64 {
	return math.Round(v*10000) / 10000
}
