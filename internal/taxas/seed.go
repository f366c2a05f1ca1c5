package taxas

import "gorm.io/gorm"

func f(v float64) *float64 { return &v }

// Seed popula a tabela com as linhas de crédito iniciais quando vazia.
// Em produção os valores são mantidos pelo painel administrativo.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&TaxaBancaria{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	iniciais := []TaxaBancaria{
		{
			BancoCodigo: "caixa", BancoNome: "Caixa Econômica Federal", Modalidade: "SBPE",
			TaxaMinima: 9.5, TaxaMaxima: 10.5,
			LTVMaximo: 0.8, PrazoMaximoMeses: 420, ComprometimentoMaximo: 0.3,
			ValorImovelMinimo: f(100000),
			TaxaSeguro:        0.0003, TarifaAdministrativa: 25,
			Observacoes: "Taxas reduzidas para relacionamento e débito em conta",
			Ativo:       true,
		},
		{
			BancoCodigo: "itau", BancoNome: "Itaú Unibanco", Modalidade: "Crédito Imobiliário",
			TaxaMinima: 10.5, TaxaMaxima: 12.0,
			LTVMaximo: 0.8, PrazoMaximoMeses: 360, ComprometimentoMaximo: 0.3,
			TaxaSeguro: 0.00035, TarifaAdministrativa: 25,
			Ativo: true,
		},
		{
			BancoCodigo: "bradesco", BancoNome: "Bradesco", Modalidade: "Crédito Imobiliário",
			TaxaMinima: 10.49, TaxaMaxima: 11.9,
			LTVMaximo: 0.8, PrazoMaximoMeses: 360, ComprometimentoMaximo: 0.3,
			TaxaSeguro: 0.00035, TarifaAdministrativa: 25,
			Ativo: true,
		},
		{
			BancoCodigo: "santander", BancoNome: "Santander", Modalidade: "Crédito Imobiliário",
			TaxaMinima: 10.99, TaxaMaxima: 12.5,
			LTVMaximo: 0.8, PrazoMaximoMeses: 420, ComprometimentoMaximo: 0.35,
			ValorImovelMinimo: f(90000),
			TaxaSeguro:        0.0004, TarifaAdministrativa: 0,
			Ativo: true,
		},
		{
			BancoCodigo: "bb", BancoNome: "Banco do Brasil", Modalidade: "Crédito Imobiliário",
			TaxaMinima: 10.45, TaxaMaxima: 11.75,
			LTVMaximo: 0.8, PrazoMaximoMeses: 420, ComprometimentoMaximo: 0.3,
			TaxaSeguro: 0.0003, TarifaAdministrativa: 25,
			Ativo: true,
		},
	}

	return db.Create(&iniciais).Error
}
