package model

// Persona is the only person record the service stores.
// Field constraints (lengths, edad range) are enforced at the API boundary,
// not by the table.
type Persona struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Nombre   string `gorm:"type:varchar(100);not null"`
	Apellido string `gorm:"type:varchar(100);not null"`
	Edad     int    `gorm:"not null"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Persona) TableName() string { return "personas" }

// PersonaPatch is a sparse update: nil fields are left untouched.
type PersonaPatch struct {
	Nombre   *string
	Apellido *string
	Edad     *int
}

// Apply overwrites the fields of p that are set in the patch.
func (patch PersonaPatch) Apply(p *Persona) {
	if patch.Nombre != nil {
		p.Nombre = *patch.Nombre
	}
	if patch.Apellido != nil {
		p.Apellido = *patch.Apellido
	}
	if patch.Edad != nil {
		p.Edad = *patch.Edad
	}
}
