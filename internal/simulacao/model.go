package simulacao

import (
	"errors"
	"fmt"
	"strings"
)

// PedidoSimulacao é o corpo JSON do POST /simulacoes. Os campos numéricos
// obrigatórios são ponteiros para distinguir ausência de zero.
type PedidoSimulacao struct {
	ValorImovel    *float64 `json:"propertyValue"`
	Entrada        *float64 `json:"downPayment"`
	PrazoMeses     *int     `json:"termMonths"`
	RendaBruta     *float64 `json:"grossIncome"`
	TipoImovel     string   `json:"propertyType"` // "novo" | "usado"
	PrimeiroImovel bool     `json:"firstProperty"`
	ValorFGTS      float64  `json:"fgtsAmount"`
}

// Parametros é o pedido validado, com os valores derivados já calculados.
type Parametros struct {
	ValorImovel    float64
	Entrada        float64
	PrazoMeses     int
	RendaBruta     float64
	TipoImovel     string
	PrimeiroImovel bool
	ValorFGTS      float64

	// Derivados
	ValorFinanciado float64
	LTVSolicitado   float64
}

// Validar checa os campos obrigatórios e monta os Parametros derivados.
func (p PedidoSimulacao) Validar() (Parametros, error) {
	var faltando []string
	if p.ValorImovel == nil {
		faltando = append(faltando, "propertyValue")
	}
	if p.Entrada == nil {
		faltando = append(faltando, "downPayment")
	}
	if p.PrazoMeses == nil {
		faltando = append(faltando, "termMonths")
	}
	if p.RendaBruta == nil {
		faltando = append(faltando, "grossIncome")
	}
	if len(faltando) > 0 {
		return Parametros{}, fmt.Errorf("campos obrigatórios ausentes: %s", strings.Join(faltando, ", "))
	}

	if *p.ValorImovel <= 0 {
		return Parametros{}, errors.New("propertyValue deve ser maior que zero")
	}
	if *p.Entrada < 0 {
		return Parametros{}, errors.New("downPayment não pode ser negativo")
	}
	if *p.Entrada >= *p.ValorImovel {
		return Parametros{}, errors.New("downPayment deve ser menor que propertyValue")
	}
	if *p.PrazoMeses <= 0 {
		return Parametros{}, errors.New("termMonths deve ser maior que zero")
	}
	if *p.RendaBruta <= 0 {
		return Parametros{}, errors.New("grossIncome deve ser maior que zero")
	}
	if p.ValorFGTS < 0 {
		return Parametros{}, errors.New("fgtsAmount não pode ser negativo")
	}

	tipo := p.TipoImovel
	if tipo == "" {
		tipo = "usado"
	}
	if tipo != "novo" && tipo != "usado" {
		return Parametros{}, errors.New("propertyType deve ser 'novo' ou 'usado'")
	}

	financiado := *p.ValorImovel - *p.Entrada - p.ValorFGTS
	if financiado < 0 {
		return Parametros{}, errors.New("entrada e FGTS excedem o valor do imóvel")
	}

	return Parametros{
		ValorImovel:     *p.ValorImovel,
		Entrada:         *p.Entrada,
		PrazoMeses:      *p.PrazoMeses,
		RendaBruta:      *p.RendaBruta,
		TipoImovel:      tipo,
		PrimeiroImovel:  p.PrimeiroImovel,
		ValorFGTS:       p.ValorFGTS,
		ValorFinanciado: financiado,
		LTVSolicitado:   financiado / *p.ValorImovel,
	}, nil
}

// ResumoSAC resume o sistema de amortização constante para um banco.
type ResumoSAC struct {
	PrimeiraParcela float64 `json:"firstInstallment"`
	UltimaParcela   float64 `json:"lastInstallment"`
	TotalPago       float64 `json:"totalPaid"`
	ParcelaMedia    float64 `json:"averageInstallment"`
}

// ResumoPrice resume a tabela Price (parcela fixa) para um banco.
type ResumoPrice struct {
	ParcelaFixa float64 `json:"fixedInstallment"`
	TotalPago   float64 `json:"totalPaid"`
}

// SimulacaoBanco é o resultado por banco elegível.
type SimulacaoBanco struct {
	BancoNome   string `json:"bankName"`
	BancoCodigo string `json:"bankCode"`
	Modalidade  string `json:"modality"`

	TaxaAnual  float64 `json:"annualRate"`
	TaxaMensal float64 `json:"monthlyRate"` // arredondada a 4 casas, só exibição

	ValorFinanciado float64 `json:"financedAmount"`
	PrazoMeses      int     `json:"termMonths"`

	SAC   ResumoSAC   `json:"sac"`
	Price ResumoPrice `json:"price"`

	ParcelaMaxima float64 `json:"maxInstallment"`
	RendaAprovada bool    `json:"incomeApproved"`

	SeguroMensal         float64 `json:"insuranceMonthly"`
	TarifaAdministrativa float64 `json:"adminFee"`
	Observacoes          string  `json:"notes"`
}

// EntradaEco ecoa no response os parâmetros interpretados do pedido.
type EntradaEco struct {
	ValorImovel     float64 `json:"propertyValue"`
	Entrada         float64 `json:"downPayment"`
	ValorFinanciado float64 `json:"financedAmount"`
	PrazoMeses      int     `json:"termMonths"`
	RendaBruta      float64 `json:"grossIncome"`
	TipoImovel      string  `json:"propertyType"`
	PrimeiroImovel  bool    `json:"firstProperty"`
	ValorFGTS       float64 `json:"fgtsAmount"`
}

// RespostaSimulacao é o corpo 200 do POST /simulacoes.
type RespostaSimulacao struct {
	Entrada    EntradaEco       `json:"input"`
	Simulacoes []SimulacaoBanco `json:"simulations"`
	GeradoEm   string           `json:"generatedAt"`
}
