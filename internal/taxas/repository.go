// internal/taxas/repository.go
package taxas

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para TaxaBancaria
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarAtivas retorna as taxas ativas em ordem determinística (por ID).
// É a única consulta que o motor de simulação usa.
func (r *Repository) ListarAtivas() ([]TaxaBancaria, error) {
	var list []TaxaBancaria
	err := r.DB.Where("ativo = ?", true).Order("id ASC").Find(&list).Error
	return list, err
}

// ListarTodas retorna todas as taxas, inclusive inativas (uso administrativo)
func (r *Repository) ListarTodas() ([]TaxaBancaria, error) {
	var list []TaxaBancaria
	err := r.DB.Order("id ASC").Find(&list).Error
	return list, err
}

// BuscarPorID retorna uma taxa pelo ID
func (r *Repository) BuscarPorID(id uint) (*TaxaBancaria, error) {
	var t TaxaBancaria
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Criar insere uma nova taxa bancária
func (r *Repository) Criar(t *TaxaBancaria) error {
	return r.DB.Create(t).Error
}

// Atualizar salva alterações em uma taxa existente (atualiza todos os campos)
func (r *Repository) Atualizar(t *TaxaBancaria) error {
	return r.DB.Save(t).Error
}

// Deletar remove uma taxa do banco (soft delete via gorm.DeletedAt)
func (r *Repository) Deletar(t *TaxaBancaria) error {
	return r.DB.Delete(t).Error
}
