package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"burgertic/models"
	"burgertic/services"
)

// Seed inserts the admin account and the starter catalog when the
// corresponding tables are empty. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedPlatos(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Usuario{}).Where("admin = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := services.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	admin := models.Usuario{
		Nombre:   "Admin",
		Apellido: "BurgerTIC",
		Email:    "admin@burgertic.com",
		Password: hash,
		Admin:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}
	logrus.Info("seed: admin user created (admin@burgertic.com)")
	return nil
}

func seedPlatos(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Plato{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count platos: %w", err)
	}
	if count > 0 {
		return nil
	}

	platos := []models.Plato{
		{Tipo: models.TipoPrincipal, Nombre: "Hamburguesa Clásica", Precio: precio("12.99"), Descripcion: "Hamburguesa de carne con lechuga, tomate y queso"},
		{Tipo: models.TipoPrincipal, Nombre: "Hamburguesa Deluxe", Precio: precio("15.99"), Descripcion: "Hamburguesa doble carne con bacon, queso cheddar y salsa especial"},
		{Tipo: models.TipoPrincipal, Nombre: "Hamburguesa Veggie", Precio: precio("11.99"), Descripcion: "Hamburguesa vegetal con quinoa, lechuga y palta"},
		{Tipo: models.TipoCombo, Nombre: "Combo Familiar", Precio: precio("29.99"), Descripcion: "2 hamburguesas + papas grandes + 2 gaseosas"},
		{Tipo: models.TipoCombo, Nombre: "Combo Individual", Precio: precio("16.99"), Descripcion: "Hamburguesa + papas + gaseosa"},
		{Tipo: models.TipoEntrada, Nombre: "Papas Fritas Clásicas", Precio: precio("4.99"), Descripcion: "Papas fritas crujientes con sal marina"},
		{Tipo: models.TipoEntrada, Nombre: "Aros de Cebolla", Precio: precio("5.99"), Descripcion: "Aros de cebolla empanizados y fritos"},
		{Tipo: models.TipoBebida, Nombre: "Cola Americana", Precio: precio("2.99"), Descripcion: "Refrescante cola americana bien fría"},
		{Tipo: models.TipoBebida, Nombre: "Milkshake de Vainilla", Precio: precio("6.99"), Descripcion: "Cremoso milkshake de vainilla con crema batida"},
		{Tipo: models.TipoPostre, Nombre: "Apple Pie", Precio: precio("7.99"), Descripcion: "Pastel de manzana con helado de vainilla"},
	}
	if err := db.Create(&platos).Error; err != nil {
		return fmt.Errorf("seed: create platos: %w", err)
	}
	logrus.Infof("seed: %d platos created", len(platos))
	return nil
}

func precio(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
