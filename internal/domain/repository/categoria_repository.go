package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// CategoriaRepository puerto de persistencia para categorías.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	Update(c *entity.Categoria) error
	Delete(id int64) error
}
