package promocao

import "gorm.io/gorm"

// Seed grava as regras promocionais vigentes quando a tabela está vazia.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&AjusteLTV{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	iniciais := []AjusteLTV{
		{
			BancoCodigo:    "caixa",
			Modalidade:     "SBPE",
			TipoImovel:     "novo",
			ElevarLTVPara:  0.90,
			LimiteAbsoluto: 0.95,
			Descricao:      "Caixa SBPE financia até 90% em imóvel novo",
			Ativo:          true,
		},
		{
			BancoCodigo:           "caixa",
			SomentePrimeiroImovel: true,
			DeltaLTV:              0.05,
			LimiteAbsoluto:        0.95,
			Descricao:             "Bônus de +5 p.p. de LTV para primeiro imóvel na Caixa",
			Ativo:                 true,
		},
	}

	return db.Create(&iniciais).Error
}
