package repository

import (
	"context"
	"errors"

	"personas/internal/model"

	"gorm.io/gorm"
)

type PaisRepository interface {
	Crear(ctx context.Context, p *model.Pais) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Pais, error)
	Listar(ctx context.Context, skip, limit int) ([]model.Pais, error)
	Actualizar(ctx context.Context, id uint, patch model.PaisPatch) (*model.Pais, error)
	Eliminar(ctx context.Context, id uint) (bool, error)
}

type paisRepo struct{ db *gorm.DB }

func NewPaisRepository(db *gorm.DB) PaisRepository { return &paisRepo{db: db} }

func (r *paisRepo) Crear(ctx context.Context, p *model.Pais) error {
	p.ID = 0
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paisRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Pais, error) {
	var p model.Pais
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paisRepo) Listar(ctx context.Context, skip, limit int) ([]model.Pais, error) {
	paises := make([]model.Pais, 0)
	err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&paises).Error
	return paises, err
}

func (r *paisRepo) Actualizar(ctx context.Context, id uint, patch model.PaisPatch) (*model.Pais, error) {
	p, err := r.ObtenerPorID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	patch.Apply(p)
	res := r.db.WithContext(ctx).Model(p).Select("nombre").Updates(p)
	if res.Error != nil {
		return nil, res.Error
	}
	// Row deleted between the load and the write.
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return p, nil
}

func (r *paisRepo) Eliminar(ctx context.Context, id uint) (bool, error) {
	p, err := r.ObtenerPorID(ctx, id)
	if err != nil || p == nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Delete(p).Error; err != nil {
		return false, err
	}
	return true, nil
}
