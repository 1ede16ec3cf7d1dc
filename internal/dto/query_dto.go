package dto

const (
	DefaultLimit = 100
	MaxLimit     = 1000
	// SearchScanLimit is how many rows a name search loads before filtering.
	SearchScanLimit = 1000
)

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ListarQuery struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=1000"`
}

type BuscarQuery struct {
	Nombre string `form:"nombre" validate:"required,min=2"`
}
