package models

import "github.com/shopspring/decimal"

func init() {
	// precio and total go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Tipos of plato the catalog accepts.
const (
	TipoPrincipal = "principal"
	TipoCombo     = "combo"
	TipoPostre    = "postre"
	TipoEntrada   = "entrada"
	TipoBebida    = "bebida"
)

// Plato is a sellable catalog item.
type Plato struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Tipo        string          `gorm:"size:50;not null" json:"tipo"`
	Nombre      string          `gorm:"size:100;not null" json:"nombre"`
	Precio      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"precio"`
	Descripcion string          `gorm:"type:text" json:"descripcion"`
}

func (Plato) TableName() string { return "platos" }
