package model

// Pais represents a country; it shares the personas CRUD contract but has
// no relation to Persona.
type Pais struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Nombre string `gorm:"type:varchar(100);not null"`
}

func (Pais) TableName() string { return "paises" }

type PaisPatch struct {
	Nombre *string
}

func (patch PaisPatch) Apply(p *Pais) {
	if patch.Nombre != nil {
		p.Nombre = *patch.Nombre
	}
}
