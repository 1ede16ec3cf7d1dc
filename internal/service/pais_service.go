package service

import (
	"context"
	"strings"

	"personas/internal/dto"
	"personas/internal/model"
	"personas/internal/repository"
)

type PaisService interface {
	Crear(ctx context.Context, req dto.CrearPaisRequest) (dto.PaisResponse, error)
	Listar(ctx context.Context, q dto.ListarQuery) ([]dto.PaisResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.PaisResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPaisRequest) (dto.PaisResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Buscar(ctx context.Context, nombre string) ([]dto.PaisResponse, error)
}

type paisService struct {
	repo repository.PaisRepository
}

func NewPaisService(repo repository.PaisRepository) PaisService {
	return &paisService{repo: repo}
}

func mapPais(p model.Pais) dto.PaisResponse {
	return dto.PaisResponse{ID: p.ID, Nombre: p.Nombre}
}

func (s *paisService) Crear(ctx context.Context, req dto.CrearPaisRequest) (dto.PaisResponse, error) {
	p := &model.Pais{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PaisResponse{}, &CreateError{Entidad: "país", Err: err}
	}
	return mapPais(*p), nil
}

func (s *paisService) Listar(ctx context.Context, q dto.ListarQuery) ([]dto.PaisResponse, error) {
	list, err := s.repo.Listar(ctx, q.Skip, q.Limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PaisResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPais(p))
	}
	return result, nil
}

func (s *paisService) ObtenerPorID(ctx context.Context, id uint) (dto.PaisResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PaisResponse{}, err
	}
	if p == nil {
		return dto.PaisResponse{}, ErrPaisNoEncontrado
	}
	return mapPais(*p), nil
}

func (s *paisService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPaisRequest) (dto.PaisResponse, error) {
	p, err := s.repo.Actualizar(ctx, id, model.PaisPatch{Nombre: req.Nombre})
	if err != nil {
		return dto.PaisResponse{}, err
	}
	if p == nil {
		return dto.PaisResponse{}, ErrPaisNoEncontrado
	}
	return mapPais(*p), nil
}

func (s *paisService) Eliminar(ctx context.Context, id uint) error {
	ok, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPaisNoEncontrado
	}
	return nil
}

// Buscar matches on nombre only, same naive scan as personas.
func (s *paisService) Buscar(ctx context.Context, nombre string) ([]dto.PaisResponse, error) {
	list, err := s.repo.Listar(ctx, 0, dto.SearchScanLimit)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(nombre)
	result := make([]dto.PaisResponse, 0)
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Nombre), q) {
			result = append(result, mapPais(p))
		}
	}
	return result, nil
}
