package models

// Estados of a pedido. The pipeline only moves forward:
// pendiente -> aceptado -> en camino -> entregado.
const (
	EstadoPendiente = "pendiente"
	EstadoAceptado  = "aceptado"
	EstadoEnCamino  = "en camino"
	EstadoEntregado = "entregado"
)

// Pedido is one user's purchase request. Fecha is date-only (YYYY-MM-DD),
// stored as text so the string round-trips unchanged; a date column would
// come back from the postgres driver as a time.Time and gain a time
// component on the wire. A pedido never exists without at least one
// PlatoXPedido row; both are written in the same transaction.
type Pedido struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	IDUsuario int    `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Fecha     string `gorm:"size:10;not null" json:"fecha"`
	Estado    string `gorm:"size:50;not null;default:pendiente" json:"estado"`

	Usuario Usuario `gorm:"foreignKey:IDUsuario" json:"-"`
}

func (Pedido) TableName() string { return "pedidos" }

// PlatoXPedido associates one plato with one pedido plus a cantidad.
// Rows are created in bulk with their pedido and removed in bulk when the
// pedido is deleted, never touched individually.
type PlatoXPedido struct {
	ID       int `gorm:"primaryKey" json:"id"`
	IDPedido int `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	IDPlato  int `gorm:"column:id_plato;not null" json:"id_plato"`
	Cantidad int `gorm:"not null" json:"cantidad"`

	Pedido Pedido `gorm:"foreignKey:IDPedido" json:"-"`
	Plato  Plato  `gorm:"foreignKey:IDPlato" json:"-"`
}

func (PlatoXPedido) TableName() string { return "platosxpedidos" }
