package usecase

import (
	"context"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de producto.
type CategoriaUseCase struct {
	categorias repository.CategoriaRepository
}

func NewCategoriaUseCase(categorias repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categorias: categorias}
}

func (uc *CategoriaUseCase) Create(_ context.Context, req dto.CategoriaRequest) (*dto.CategoriaDTO, error) {
	now := time.Now()
	c := &entity.Categoria{Nombre: req.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.categorias.Create(c); err != nil {
		return nil, err
	}
	out := dto.ToCategoriaDTO(c)
	return &out, nil
}

func (uc *CategoriaUseCase) GetByID(id int64) (*dto.CategoriaDTO, error) {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.ToCategoriaDTO(c)
	return &out, nil
}

func (uc *CategoriaUseCase) List() ([]dto.CategoriaDTO, error) {
	list, err := uc.categorias.List()
	if err != nil {
		return nil, err
	}
	return dto.ToCategoriaDTOs(list), nil
}

func (uc *CategoriaUseCase) Update(_ context.Context, id int64, req dto.CategoriaRequest) (*dto.CategoriaDTO, error) {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	c.Nombre = req.Nombre
	c.UpdatedAt = time.Now()
	if err := uc.categorias.Update(c); err != nil {
		return nil, err
	}
	out := dto.ToCategoriaDTO(c)
	return &out, nil
}

func (uc *CategoriaUseCase) Delete(_ context.Context, id int64) (bool, error) {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}
	return true, uc.categorias.Delete(id)
}
