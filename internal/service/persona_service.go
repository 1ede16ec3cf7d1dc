package service

import (
	"context"
	"strings"

	"personas/internal/dto"
	"personas/internal/model"
	"personas/internal/repository"
)

// PersonaService defines the operations exposed for Persona records.
type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (dto.PersonaResponse, error)
	Listar(ctx context.Context, q dto.ListarQuery) ([]dto.PersonaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.PersonaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (dto.PersonaResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Buscar(ctx context.Context, nombre string) ([]dto.PersonaResponse, error)
}

type personaService struct {
	repo repository.PersonaRepository
}

func NewPersonaService(repo repository.PersonaRepository) PersonaService {
	return &personaService{repo: repo}
}

// mapPersona converts a model to a DTO response.
func mapPersona(p model.Persona) dto.PersonaResponse {
	return dto.PersonaResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Apellido: p.Apellido,
		Edad:     p.Edad,
	}
}

func mapPersonas(list []model.Persona) []dto.PersonaResponse {
	result := make([]dto.PersonaResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPersona(p))
	}
	return result
}

func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (dto.PersonaResponse, error) {
	p := &model.Persona{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
	}
	if req.Edad != nil {
		p.Edad = *req.Edad
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.PersonaResponse{}, &CreateError{Entidad: "persona", Err: err}
	}
	return mapPersona(*p), nil
}

func (s *personaService) Listar(ctx context.Context, q dto.ListarQuery) ([]dto.PersonaResponse, error) {
	list, err := s.repo.Listar(ctx, q.Skip, q.Limit)
	if err != nil {
		return nil, err
	}
	return mapPersonas(list), nil
}

func (s *personaService) ObtenerPorID(ctx context.Context, id uint) (dto.PersonaResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PersonaResponse{}, err
	}
	if p == nil {
		return dto.PersonaResponse{}, ErrPersonaNoEncontrada
	}
	return mapPersona(*p), nil
}

func (s *personaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (dto.PersonaResponse, error) {
	p, err := s.repo.Actualizar(ctx, id, model.PersonaPatch{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Edad:     req.Edad,
	})
	if err != nil {
		return dto.PersonaResponse{}, err
	}
	if p == nil {
		return dto.PersonaResponse{}, ErrPersonaNoEncontrada
	}
	return mapPersona(*p), nil
}

func (s *personaService) Eliminar(ctx context.Context, id uint) error {
	ok, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPersonaNoEncontrada
	}
	return nil
}

// Buscar is a naive scan: it loads at most dto.SearchScanLimit rows and keeps
// those whose nombre or apellido contains the query, ignoring case.
// Rows beyond the scan window are never considered.
func (s *personaService) Buscar(ctx context.Context, nombre string) ([]dto.PersonaResponse, error) {
	list, err := s.repo.Listar(ctx, 0, dto.SearchScanLimit)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(nombre)
	result := make([]dto.PersonaResponse, 0)
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Nombre), q) || strings.Contains(strings.ToLower(p.Apellido), q) {
			result = append(result, mapPersona(p))
		}
	}
	return result, nil
}
