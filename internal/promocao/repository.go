// internal/promocao/repository.go
package promocao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para AjusteLTV
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarAtivos retorna os ajustes ativos em ordem determinística (por ID)
func (r *Repository) ListarAtivos() ([]AjusteLTV, error) {
	var list []AjusteLTV
	err := r.DB.Where("ativo = ?", true).Order("id ASC").Find(&list).Error
	return list, err
}

// ListarTodos retorna todos os ajustes, inclusive inativos
func (r *Repository) ListarTodos() ([]AjusteLTV, error) {
	var list []AjusteLTV
	err := r.DB.Order("id ASC").Find(&list).Error
	return list, err
}

// BuscarPorID retorna um ajuste pelo ID
func (r *Repository) BuscarPorID(id uint) (*AjusteLTV, error) {
	var a AjusteLTV
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Criar insere um novo ajuste promocional
func (r *Repository) Criar(a *AjusteLTV) error {
	return r.DB.Create(a).Error
}

// Atualizar salva alterações em um ajuste existente
func (r *Repository) Atualizar(a *AjusteLTV) error {
	return r.DB.Save(a).Error
}

// Deletar remove um ajuste do banco (soft delete via gorm.DeletedAt)
func (r *Repository) Deletar(a *AjusteLTV) error {
	return r.DB.Delete(a).Error
}
