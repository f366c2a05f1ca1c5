package taxas

import (
	"time"

	"gorm.io/gorm"
)

// TaxaBancaria representa a linha de crédito imobiliário de um banco,
// com as taxas e limites usados pelo simulador de financiamento.
// Os campos JSON seguem o contrato consumido pelo widget.
type TaxaBancaria struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BancoCodigo string `gorm:"size:50;not null;index" json:"bankCode"`
	BancoNome   string `gorm:"size:255;not null" json:"bankName"`
	Modalidade  string `gorm:"size:100;not null" json:"modality"`

	// Taxas anuais em porcentagem (ex.: 9.5 = 9,5% a.a.)
	TaxaMinima float64 `gorm:"not null;default:0" json:"minRate"`
	TaxaMaxima float64 `gorm:"not null;default:0" json:"maxRate"`

	// Fração máxima financiável do valor do imóvel (ex.: 0.8)
	LTVMaximo        float64 `gorm:"not null;default:0.8" json:"maxLoanToValue"`
	PrazoMaximoMeses int     `gorm:"not null;default:360" json:"maxTermMonths"`

	// Fração máxima da renda bruta comprometível com a parcela
	ComprometimentoMaximo float64 `gorm:"not null;default:0.3" json:"maxIncomeRatio"`

	// Faixa de valor de imóvel aceita; nulo = sem limite
	ValorImovelMinimo *float64 `json:"minPropertyValue,omitempty"`
	ValorImovelMaximo *float64 `json:"maxPropertyValue,omitempty"`

	// Seguro mensal como fração do saldo devedor (ex.: 0.0003)
	TaxaSeguro float64 `gorm:"not null;default:0" json:"insuranceRate"`
	// Tarifa administrativa fixa por mês, em reais
	TarifaAdministrativa float64 `gorm:"not null;default:0" json:"adminFee"`

	Observacoes string `gorm:"type:text" json:"notes"`
	Ativo       bool   `gorm:"not null;default:true;index" json:"isActive"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TaxaBancaria{})
}
