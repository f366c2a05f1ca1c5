package simulacao

import (
	"fmt"
	"sort"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/notificacao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/promocao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/taxas"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/utils"
)

// RepositorioTaxas é a única leitura que o motor faz contra o banco.
type RepositorioTaxas interface {
	ListarAtivas() ([]taxas.TaxaBancaria, error)
}

// RepositorioAjustes fornece as regras promocionais de LTV vigentes.
type RepositorioAjustes interface {
	ListarAtivos() ([]promocao.AjusteLTV, error)
}

// Servico orquestra uma simulação: busca taxas e ajustes, filtra, calcula
// SAC e Price por banco, qualifica a renda e ordena o resultado.
// Sem estado entre chamadas: mesmo pedido + mesma tabela = mesmo resultado.
type Servico struct {
	taxas   RepositorioTaxas
	ajustes RepositorioAjustes

	// URL opcional notificada quando nenhum banco qualifica
	webhookSemResultado string
}

// NovoServico cria o serviço com os repositórios injetados.
func NovoServico(t RepositorioTaxas, a RepositorioAjustes, webhookSemResultado string) *Servico {
	return &Servico{taxas: t, ajustes: a, webhookSemResultado: webhookSemResultado}
}

// Simular executa o pipeline completo para um pedido já validado.
// Lista vazia não é erro: nenhum banco casou com o perfil.
func (s *Servico) Simular(p Parametros) ([]SimulacaoBanco, error) {
	lista, err := s.taxas.ListarAtivas()
	if err != nil {
		return nil, fmt.Errorf("buscar taxas ativas: %w", err)
	}
	ajustes, err := s.ajustes.ListarAtivos()
	if err != nil {
		return nil, fmt.Errorf("buscar ajustes promocionais: %w", err)
	}

	elegiveis := FiltrarElegiveis(p, lista, ajustes)

	sims := make([]SimulacaoBanco, 0, len(elegiveis))
	for _, e := range elegiveis {
		sims = append(sims, s.simularBanco(p, e))
	}

	// Ordena pela primeira parcela SAC; sort estável preserva a ordem da
	// tabela (ID crescente) em caso de empate.
	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].SAC.PrimeiraParcela < sims[j].SAC.PrimeiraParcela
	})

	if len(sims) == 0 && s.webhookSemResultado != "" {
		go notificacao.EnviarWebhookSemResultado(s.webhookSemResultado, p.ValorImovel, p.Entrada, p.PrazoMeses, p.RendaBruta)
	}

	return sims, nil
}

// simularBanco computa os dois sistemas de amortização e o enquadramento de
// renda para uma taxa elegível. A taxa usada é a média da faixa do banco.
func (s *Servico) simularBanco(p Parametros, e TaxaElegivel) SimulacaoBanco {
	t := e.Taxa

	taxaAnual := (t.TaxaMinima + t.TaxaMaxima) / 2
	taxaMensal := TaxaMensalEfetiva(taxaAnual)

	sac := CalcularSAC(p.ValorFinanciado, e.PrazoEfetivo, taxaMensal, t.TaxaSeguro, t.TarifaAdministrativa)
	price := CalcularPrice(p.ValorFinanciado, e.PrazoEfetivo, taxaMensal, t.TaxaSeguro, t.TarifaAdministrativa)

	parcelaMaxima := utils.ArredondarMoeda(p.RendaBruta * t.ComprometimentoMaximo)
	maiorParcela := sac.PrimeiraParcela
	if price.ParcelaFixa > maiorParcela {
		maiorParcela = price.ParcelaFixa
	}

	return SimulacaoBanco{
		BancoNome:   t.BancoNome,
		BancoCodigo: t.BancoCodigo,
		Modalidade:  t.Modalidade,

		TaxaAnual:  taxaAnual,
		TaxaMensal: utils.ArredondarTaxa(taxaMensal),

		ValorFinanciado: utils.ArredondarMoeda(p.ValorFinanciado),
		PrazoMeses:      e.PrazoEfetivo,

		SAC:   sac,
		Price: price,

		ParcelaMaxima: parcelaMaxima,
		RendaAprovada: maiorParcela <= parcelaMaxima,

		SeguroMensal:         utils.ArredondarMoeda(p.ValorFinanciado * t.TaxaSeguro),
		TarifaAdministrativa: t.TarifaAdministrativa,
		Observacoes:          t.Observacoes,
	}
}
