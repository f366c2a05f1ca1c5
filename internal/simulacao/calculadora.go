package simulacao

import (
	"math"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/utils"
)

// TaxaMensalEfetiva converte uma taxa anual em porcentagem para a taxa
// mensal efetiva equivalente (capitalização composta, não divisão por 12).
func TaxaMensalEfetiva(taxaAnual float64) float64 {
	return math.Pow(1+taxaAnual/100, 1.0/12) - 1
}

// CalcularSAC monta o cronograma de amortização constante e devolve o
// resumo. O cálculo roda em precisão total; só o resumo é arredondado.
//
// Parcela i: amortização + juros sobre o saldo + seguro sobre o saldo +
// tarifa administrativa. Como o saldo só diminui, as parcelas são
// estritamente decrescentes.
func CalcularSAC(valorFinanciado float64, prazoMeses int, taxaMensal, taxaSeguro, tarifa float64) ResumoSAC {
	n := float64(prazoMeses)
	amortizacao := valorFinanciado / n

	var primeira, ultima, total float64
	for i := 1; i <= prazoMeses; i++ {
		saldo := valorFinanciado - amortizacao*float64(i-1)
		parcela := amortizacao + saldo*taxaMensal + saldo*taxaSeguro + tarifa
		if i == 1 {
			primeira = parcela
		}
		if i == prazoMeses {
			ultima = parcela
		}
		total += parcela
	}

	return ResumoSAC{
		PrimeiraParcela: utils.ArredondarMoeda(primeira),
		UltimaParcela:   utils.ArredondarMoeda(ultima),
		TotalPago:       utils.ArredondarMoeda(total),
		ParcelaMedia:    utils.ArredondarMoeda(total / n),
	}
}

// CalcularPrice calcula a parcela fixa da tabela Price (sistema francês).
//
// O seguro é aproximado pela média entre o prêmio sobre o principal cheio e
// sobre a última amortização (principal/n). A aproximação é deliberada e
// replica o comportamento do simulador em produção; o seguro real varia mês
// a mês sobre o saldo devedor.
func CalcularPrice(valorFinanciado float64, prazoMeses int, taxaMensal, taxaSeguro, tarifa float64) ResumoPrice {
	n := float64(prazoMeses)

	var pmt float64
	if taxaMensal == 0 {
		pmt = valorFinanciado / n
	} else {
		pow := math.Pow(1+taxaMensal, n)
		pmt = valorFinanciado * taxaMensal * pow / (pow - 1)
	}

	seguroMedio := (valorFinanciado*taxaSeguro + (valorFinanciado/n)*taxaSeguro) / 2
	fixa := pmt + seguroMedio + tarifa

	return ResumoPrice{
		ParcelaFixa: utils.ArredondarMoeda(fixa),
		TotalPago:   utils.ArredondarMoeda(fixa * n),
	}
}
