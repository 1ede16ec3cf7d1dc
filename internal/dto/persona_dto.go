package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CrearPersonaRequest is the create shape. Edad is a pointer so that a
// missing field is rejected while an explicit 0 is accepted.
type CrearPersonaRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=100"`
	Apellido string `json:"apellido" validate:"required,min=1,max=100"`
	Edad     *int   `json:"edad"     validate:"required,min=0,max=150"`
}

// ActualizarPersonaRequest is the update shape: nil means "leave unchanged".
type ActualizarPersonaRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitnil,min=1,max=100"`
	Apellido *string `json:"apellido" validate:"omitnil,min=1,max=100"`
	Edad     *int    `json:"edad"     validate:"omitnil,min=0,max=150"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PersonaResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Edad     int    `json:"edad"`
}
