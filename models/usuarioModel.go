package models

// Usuario is an account that can place pedidos. Admin accounts additionally
// manage the catalog and the order pipeline. The password column holds a
// bcrypt hash and is never serialized.
type Usuario struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Nombre   string `gorm:"size:50;not null" json:"nombre"`
	Apellido string `gorm:"size:50;not null" json:"apellido"`
	Email    string `gorm:"size:256;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:256;not null" json:"-"`
	Admin    bool   `gorm:"not null;default:false" json:"admin"`
}

func (Usuario) TableName() string { return "usuarios" }
