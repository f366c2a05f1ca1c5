package promocao

import (
	"time"

	"gorm.io/gorm"
)

// AjusteLTV é uma regra promocional que altera o teto de LTV de um banco
// para um perfil de pedido. Substitui condicionais fixas no código por uma
// tabela mantida junto com as taxas: novas promoções não exigem deploy.
type AjusteLTV struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BancoCodigo string `gorm:"size:50;not null;index" json:"bankCode"`

	// Filtros do perfil; vazio = qualquer valor
	Modalidade string `gorm:"size:100" json:"modality"`
	TipoImovel string `gorm:"size:20" json:"propertyType"` // "novo" | "usado" | vazio

	// Quando true, a regra só vale para compradores de primeiro imóvel
	SomentePrimeiroImovel bool `gorm:"not null;default:false" json:"firstPropertyOnly"`

	// ElevarLTVPara: piso do teto efetivo (0 = não usado).
	// DeltaLTV: acréscimo somado ao teto efetivo.
	// LimiteAbsoluto: teto nunca passa deste valor.
	ElevarLTVPara  float64 `gorm:"not null;default:0" json:"raiseLtvTo"`
	DeltaLTV       float64 `gorm:"not null;default:0" json:"ltvDelta"`
	LimiteAbsoluto float64 `gorm:"not null;default:0.95" json:"absoluteCeiling"`

	Descricao string `gorm:"type:text" json:"description"`
	Ativo     bool   `gorm:"not null;default:true;index" json:"isActive"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Aplica informa se a regra casa com o perfil do pedido.
func (a AjusteLTV) Aplica(bancoCodigo, modalidade, tipoImovel string, primeiroImovel bool) bool {
	if a.BancoCodigo != bancoCodigo {
		return false
	}
	if a.Modalidade != "" && a.Modalidade != modalidade {
		return false
	}
	if a.TipoImovel != "" && a.TipoImovel != tipoImovel {
		return false
	}
	if a.SomentePrimeiroImovel && !primeiroImovel {
		return false
	}
	return true
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AjusteLTV{})
}
