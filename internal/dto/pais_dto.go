package dto

type CrearPaisRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

type ActualizarPaisRequest struct {
	Nombre *string `json:"nombre" validate:"omitnil,min=1,max=100"`
}

type PaisResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
