package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"burgertic/models"
)

// newTestDB opens a private in-memory database. The pool is pinned to a
// single connection so every query sees the same sqlite instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Plato{},
		&models.Pedido{},
		&models.PlatoXPedido{},
	))
	return db
}

func seedCatalogo(t *testing.T, db *gorm.DB) (models.Usuario, []models.Plato) {
	t.Helper()

	usuario := models.Usuario{Nombre: "Juan", Apellido: "Pérez", Email: "juan.perez@email.com", Password: "x"}
	require.NoError(t, db.Create(&usuario).Error)

	platos := []models.Plato{
		{Tipo: models.TipoPrincipal, Nombre: "Hamburguesa Clásica", Precio: decimal.RequireFromString("12.99")},
		{Tipo: models.TipoEntrada, Nombre: "Papas Fritas", Precio: decimal.RequireFromString("4.99")},
		{Tipo: models.TipoBebida, Nombre: "Cola", Precio: decimal.RequireFromString("2.99")},
	}
	require.NoError(t, db.Create(&platos).Error)
	return usuario, platos
}

func contarFilas(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestCreatePedido(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)

	pedido, err := service.CreatePedido(context.Background(), usuario.ID, []ItemPedido{
		{ID: platos[0].ID, Cantidad: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, models.EstadoPendiente, pedido.Estado)
	assert.Equal(t, usuario.ID, pedido.IDUsuario)
	assert.NotEmpty(t, pedido.Fecha)
	require.Len(t, pedido.Platos, 1)
	assert.Equal(t, platos[0].ID, pedido.Platos[0].ID)
	assert.Equal(t, 2, pedido.Platos[0].Cantidad)
	assert.True(t, pedido.Total.Equal(decimal.RequireFromString("25.98")),
		"total was %s", pedido.Total)
}

func TestCreatePedidoVariosPlatos(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)

	pedido, err := service.CreatePedido(context.Background(), usuario.ID, []ItemPedido{
		{ID: platos[0].ID, Cantidad: 1},
		{ID: platos[1].ID, Cantidad: 2},
		{ID: platos[2].ID, Cantidad: 3},
	})
	require.NoError(t, err)
	require.Len(t, pedido.Platos, 3)

	// 12.99 + 2*4.99 + 3*2.99
	assert.True(t, pedido.Total.Equal(decimal.RequireFromString("31.94")),
		"total was %s", pedido.Total)
}

func TestCreatePedidoValidacion(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)

	casos := []struct {
		nombre string
		items  []ItemPedido
	}{
		{"sin platos", []ItemPedido{}},
		{"nil", nil},
		{"cantidad cero", []ItemPedido{{ID: platos[0].ID, Cantidad: 0}}},
		{"cantidad negativa", []ItemPedido{{ID: platos[0].ID, Cantidad: -1}}},
		{"sin id", []ItemPedido{{Cantidad: 2}}},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			_, err := service.CreatePedido(context.Background(), usuario.ID, caso.items)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Zero(t, contarFilas(t, db, &models.Pedido{}))
			assert.Zero(t, contarFilas(t, db, &models.PlatoXPedido{}))
		})
	}
}

func TestCreatePedidoPlatoInexistente(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)

	// First item is valid; the unknown second item must abort everything.
	_, err := service.CreatePedido(context.Background(), usuario.ID, []ItemPedido{
		{ID: platos[0].ID, Cantidad: 1},
		{ID: 9999, Cantidad: 1},
	})

	var platoErr *PlatoInexistenteError
	require.ErrorAs(t, err, &platoErr)
	assert.Equal(t, 9999, platoErr.ID)

	assert.Zero(t, contarFilas(t, db, &models.Pedido{}), "no partial pedido may survive")
	assert.Zero(t, contarFilas(t, db, &models.PlatoXPedido{}))
}

func TestTransiciones(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)
	ctx := context.Background()

	creado, err := service.CreatePedido(ctx, usuario.ID, []ItemPedido{{ID: platos[0].ID, Cantidad: 1}})
	require.NoError(t, err)

	// entregar out of pendiente must fail and leave the estado untouched
	_, err = service.EntregarPedido(ctx, creado.ID)
	var transicionErr *TransicionInvalidaError
	require.ErrorAs(t, err, &transicionErr)
	assert.Equal(t, models.EstadoPendiente, transicionErr.EstadoActual)

	pedido, err := service.AceptarPedido(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoAceptado, pedido.Estado)

	// skipping comenzar is not allowed
	_, err = service.EntregarPedido(ctx, creado.ID)
	require.ErrorAs(t, err, &transicionErr)
	assert.Equal(t, models.EstadoAceptado, transicionErr.EstadoActual)

	// re-applying a transition whose precondition already passed fails too
	_, err = service.AceptarPedido(ctx, creado.ID)
	require.ErrorAs(t, err, &transicionErr)

	pedido, err = service.ComenzarPedido(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoEnCamino, pedido.Estado)

	pedido, err = service.EntregarPedido(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoEntregado, pedido.Estado)
}

func TestTransicionConcurrente(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)
	ctx := context.Background()

	creado, err := service.CreatePedido(ctx, usuario.ID, []ItemPedido{{ID: platos[0].ID, Cantidad: 1}})
	require.NoError(t, err)

	// two admins race the same transition; the conditional UPDATE lets
	// exactly one of them through
	const intentos = 2
	errs := make(chan error, intentos)
	var wg sync.WaitGroup
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AceptarPedido(ctx, creado.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ganadores := 0
	var transicionErr *TransicionInvalidaError
	for err := range errs {
		if err == nil {
			ganadores++
			continue
		}
		require.ErrorAs(t, err, &transicionErr)
		assert.Equal(t, models.EstadoAceptado, transicionErr.EstadoActual)
	}
	assert.Equal(t, 1, ganadores, "exactly one concurrent aceptar may win")

	pedido, err := service.GetPedidoByID(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoAceptado, pedido.Estado, "the estado advanced exactly one step")
}

func TestEstadoTerminal(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)
	ctx := context.Background()

	creado, err := service.CreatePedido(ctx, usuario.ID, []ItemPedido{{ID: platos[0].ID, Cantidad: 1}})
	require.NoError(t, err)

	_, err = service.AceptarPedido(ctx, creado.ID)
	require.NoError(t, err)
	_, err = service.ComenzarPedido(ctx, creado.ID)
	require.NoError(t, err)
	_, err = service.EntregarPedido(ctx, creado.ID)
	require.NoError(t, err)

	var transicionErr *TransicionInvalidaError
	for _, avanzar := range []func(context.Context, int) (*PedidoDetalle, error){
		service.AceptarPedido, service.ComenzarPedido, service.EntregarPedido,
	} {
		_, err = avanzar(ctx, creado.ID)
		require.ErrorAs(t, err, &transicionErr)
		assert.Equal(t, models.EstadoEntregado, transicionErr.EstadoActual)
	}

	// deletion is still allowed for delivered pedidos
	require.NoError(t, service.DeletePedido(ctx, creado.ID))
}

func TestTransicionPedidoInexistente(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	service := NewPedidoService(db)

	_, err := service.AceptarPedido(context.Background(), 424242)
	assert.True(t, errors.Is(err, ErrPedidoNoEncontrado))
}

func TestDeletePedido(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)
	ctx := context.Background()

	creado, err := service.CreatePedido(ctx, usuario.ID, []ItemPedido{
		{ID: platos[0].ID, Cantidad: 1},
		{ID: platos[1].ID, Cantidad: 1},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, contarFilas(t, db, &models.PlatoXPedido{}))

	require.NoError(t, service.DeletePedido(ctx, creado.ID))

	assert.Zero(t, contarFilas(t, db, &models.Pedido{}))
	assert.Zero(t, contarFilas(t, db, &models.PlatoXPedido{}), "line rows must go with their pedido")

	err = service.DeletePedido(ctx, creado.ID)
	assert.True(t, errors.Is(err, ErrPedidoNoEncontrado))
}

func TestTotalSigueElPrecioActual(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	service := NewPedidoService(db)
	ctx := context.Background()

	creado, err := service.CreatePedido(ctx, usuario.ID, []ItemPedido{{ID: platos[0].ID, Cantidad: 2}})
	require.NoError(t, err)
	assert.True(t, creado.Total.Equal(decimal.RequireFromString("25.98")))

	// reading twice without a price change is stable
	releido, err := service.GetPedidoByID(ctx, creado.ID)
	require.NoError(t, err)
	assert.True(t, releido.Total.Equal(creado.Total))

	// a catalog price change shows up in the next read without touching
	// any stored pedido data
	require.NoError(t, db.Model(&models.Plato{}).Where("id = ?", platos[0].ID).
		Update("precio", decimal.RequireFromString("20.00")).Error)

	releido, err = service.GetPedidoByID(ctx, creado.ID)
	require.NoError(t, err)
	assert.True(t, releido.Total.Equal(decimal.RequireFromString("40.00")),
		"total was %s", releido.Total)
	assert.Equal(t, models.EstadoPendiente, releido.Estado)
	require.Len(t, releido.Platos, 1)
	assert.Equal(t, 2, releido.Platos[0].Cantidad)
}

func TestGetPedidosOrdenYResumen(t *testing.T) {
	db := newTestDB(t)
	usuario, platos := seedCatalogo(t, db)
	otro := models.Usuario{Nombre: "María", Apellido: "González", Email: "maria@email.com", Password: "x"}
	require.NoError(t, db.Create(&otro).Error)
	service := NewPedidoService(db)
	ctx := context.Background()

	viejo := models.Pedido{IDUsuario: usuario.ID, Fecha: "2024-11-14", Estado: models.EstadoEntregado}
	require.NoError(t, db.Omit(clause.Associations).Create(&viejo).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&models.PlatoXPedido{
		IDPedido: viejo.ID, IDPlato: platos[0].ID, Cantidad: 1,
	}).Error)

	nuevo := models.Pedido{IDUsuario: otro.ID, Fecha: "2024-11-15", Estado: models.EstadoPendiente}
	require.NoError(t, db.Omit(clause.Associations).Create(&nuevo).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&models.PlatoXPedido{
		IDPedido: nuevo.ID, IDPlato: platos[1].ID, Cantidad: 2,
	}).Error)

	todos, err := service.GetPedidos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, nuevo.ID, todos[0].ID, "newest pedido comes first")
	assert.Equal(t, viejo.ID, todos[1].ID)

	require.NotNil(t, todos[0].Usuario)
	assert.Equal(t, "María", todos[0].Usuario.Nombre)
	assert.Equal(t, "maria@email.com", todos[0].Usuario.Email)

	// per-user listing filters to the owner and skips the summary
	mios, err := service.GetPedidosByUsuario(ctx, usuario.ID)
	require.NoError(t, err)
	require.Len(t, mios, 1)
	assert.Equal(t, viejo.ID, mios[0].ID)
	assert.Nil(t, mios[0].Usuario)
}

func TestGetPedidoByIDInexistente(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	service := NewPedidoService(db)

	_, err := service.GetPedidoByID(context.Background(), 31337)
	assert.True(t, errors.Is(err, ErrPedidoNoEncontrado))
}
