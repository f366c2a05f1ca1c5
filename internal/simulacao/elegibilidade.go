package simulacao

import (
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/promocao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/taxas"
)

// TaxaElegivel é uma taxa que passou no filtro, com o teto de LTV efetivo
// (já aplicado) e o prazo efetivo que alimenta a calculadora.
type TaxaElegivel struct {
	Taxa         taxas.TaxaBancaria
	LTVEfetivo   float64
	PrazoEfetivo int
}

// ltvEfetivo parte do teto cadastrado do banco e aplica, na ordem da tabela,
// as regras promocionais que casam com o perfil do pedido.
// Promoção só eleva: uma regra cujo limite absoluto fique abaixo do teto
// vigente é ignorada, nunca rebaixa o cadastro do banco.
func ltvEfetivo(t taxas.TaxaBancaria, p Parametros, ajustes []promocao.AjusteLTV) float64 {
	teto := t.LTVMaximo
	for _, a := range ajustes {
		if !a.Aplica(t.BancoCodigo, t.Modalidade, p.TipoImovel, p.PrimeiroImovel) {
			continue
		}
		novo := teto
		if a.ElevarLTVPara > novo {
			novo = a.ElevarLTVPara
		}
		novo += a.DeltaLTV
		if a.LimiteAbsoluto > 0 && novo > a.LimiteAbsoluto {
			novo = a.LimiteAbsoluto
		}
		if novo > teto {
			teto = novo
		}
	}
	return teto
}

// FiltrarElegiveis aplica as regras de elegibilidade na ordem:
// faixa de valor do imóvel, LTV solicitado contra o teto efetivo.
// O prazo nunca exclui; é apenas limitado ao máximo do banco.
func FiltrarElegiveis(p Parametros, lista []taxas.TaxaBancaria, ajustes []promocao.AjusteLTV) []TaxaElegivel {
	elegiveis := make([]TaxaElegivel, 0, len(lista))
	for _, t := range lista {
		if t.ValorImovelMinimo != nil && p.ValorImovel < *t.ValorImovelMinimo {
			continue
		}
		if t.ValorImovelMaximo != nil && p.ValorImovel > *t.ValorImovelMaximo {
			continue
		}

		teto := ltvEfetivo(t, p, ajustes)
		if p.LTVSolicitado > teto {
			continue
		}

		prazo := p.PrazoMeses
		if t.PrazoMaximoMeses > 0 && prazo > t.PrazoMaximoMeses {
			prazo = t.PrazoMaximoMeses
		}

		elegiveis = append(elegiveis, TaxaElegivel{
			Taxa:         t,
			LTVEfetivo:   teto,
			PrazoEfetivo: prazo,
		})
	}
	return elegiveis
}
