package repository

import (
	"context"
	"errors"

	"personas/internal/model"

	"gorm.io/gorm"
)

// PersonaRepository defines CRUD operations for Persona.
// Lookups report a missing row as a nil record (or false), never as an error.
type PersonaRepository interface {
	Crear(ctx context.Context, p *model.Persona) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Persona, error)
	Listar(ctx context.Context, skip, limit int) ([]model.Persona, error)
	Actualizar(ctx context.Context, id uint, patch model.PersonaPatch) (*model.Persona, error)
	Eliminar(ctx context.Context, id uint) (bool, error)
}

type personaRepository struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository {
	return &personaRepository{db: db}
}

func (r *personaRepository) Crear(ctx context.Context, p *model.Persona) error {
	p.ID = 0
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Listar returns rows in the backend's natural order; no ORDER BY is applied.
func (r *personaRepository) Listar(ctx context.Context, skip, limit int) ([]model.Persona, error) {
	list := make([]model.Persona, 0)
	err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&list).Error
	return list, err
}

func (r *personaRepository) Actualizar(ctx context.Context, id uint, patch model.PersonaPatch) (*model.Persona, error) {
	p, err := r.ObtenerPorID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	patch.Apply(p)
	res := r.db.WithContext(ctx).Model(p).Select("nombre", "apellido", "edad").Updates(p)
	if res.Error != nil {
		return nil, res.Error
	}
	// Row deleted between the load and the write.
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return p, nil
}

func (r *personaRepository) Eliminar(ctx context.Context, id uint) (bool, error) {
	p, err := r.ObtenerPorID(ctx, id)
	if err != nil || p == nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Delete(p).Error; err != nil {
		return false, err
	}
	return true, nil
}
