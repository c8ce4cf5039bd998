package dto

import (
	"strings"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// CategoriaRequest body para POST/PUT /api/categorias.
type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

func (r *CategoriaRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	return msgs
}

// CategoriaDTO representación JSON de una categoría.
type CategoriaDTO struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCategoriaDTO(c *entity.Categoria) CategoriaDTO {
	return CategoriaDTO{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func ToCategoriaDTOs(categorias []*entity.Categoria) []CategoriaDTO {
	out := make([]CategoriaDTO, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, ToCategoriaDTO(c))
	}
	return out
}
