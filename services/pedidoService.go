package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"burgertic/models"
)

// ItemPedido is one requested line of a new pedido.
type ItemPedido struct {
	ID       int `json:"id"`
	Cantidad int `json:"cantidad"`
}

// PlatoDelPedido is a line item resolved against the catalog.
type PlatoDelPedido struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Tipo        string          `json:"tipo"`
	Precio      decimal.Decimal `json:"precio"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int             `json:"cantidad"`
}

// ResumenUsuario is the owner summary attached to admin order listings.
type ResumenUsuario struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
}

// PedidoDetalle is a pedido with its resolved line items and total.
type PedidoDetalle struct {
	ID        int              `json:"id"`
	IDUsuario int              `json:"id_usuario"`
	Fecha     string           `json:"fecha"`
	Estado    string           `json:"estado"`
	Usuario   *ResumenUsuario  `json:"usuario,omitempty"`
	Platos    []PlatoDelPedido `json:"platos"`
	Total     decimal.Decimal  `json:"total"`
}

type PedidoService struct {
	db *gorm.DB
}

func NewPedidoService(db *gorm.DB) *PedidoService {
	return &PedidoService{db: db}
}

// platosDelPedido resolves the line items of a pedido against the current
// catalog and sums the total.
//
// Totals are always derived from the catalog's current precio; nothing is
// snapshotted at order time. Known limitation: if an admin changes a
// precio, the totals of already-placed pedidos change with it.
func (s *PedidoService) platosDelPedido(tx *gorm.DB, idPedido int) ([]PlatoDelPedido, decimal.Decimal, error) {
	var platos []PlatoDelPedido
	err := tx.Table("platosxpedidos").
		Select("platos.id, platos.nombre, platos.tipo, platos.precio, platos.descripcion, platosxpedidos.cantidad").
		Joins("JOIN platos ON platos.id = platosxpedidos.id_plato").
		Where("platosxpedidos.id_pedido = ?", idPedido).
		Order("platosxpedidos.id").
		Scan(&platos).Error
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range platos {
		total = total.Add(p.Precio.Mul(decimal.NewFromInt(int64(p.Cantidad))))
	}
	if platos == nil {
		platos = []PlatoDelPedido{}
	}
	return platos, total, nil
}

func (s *PedidoService) detalle(tx *gorm.DB, pedido *models.Pedido, conUsuario bool) (*PedidoDetalle, error) {
	platos, total, err := s.platosDelPedido(tx, pedido.ID)
	if err != nil {
		return nil, err
	}

	d := &PedidoDetalle{
		ID:        pedido.ID,
		IDUsuario: pedido.IDUsuario,
		Fecha:     pedido.Fecha,
		Estado:    pedido.Estado,
		Platos:    platos,
		Total:     total,
	}
	if conUsuario {
		var usuario models.Usuario
		if err := tx.First(&usuario, pedido.IDUsuario).Error; err == nil {
			d.Usuario = &ResumenUsuario{
				ID:       usuario.ID,
				Nombre:   usuario.Nombre,
				Apellido: usuario.Apellido,
				Email:    usuario.Email,
			}
		}
	}
	return d, nil
}

func (s *PedidoService) listar(ctx context.Context, conUsuario bool, conds ...interface{}) ([]PedidoDetalle, error) {
	tx := s.db.WithContext(ctx)

	var pedidos []models.Pedido
	q := tx.Order("fecha DESC, id DESC")
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&pedidos).Error; err != nil {
		return nil, err
	}

	detalles := make([]PedidoDetalle, 0, len(pedidos))
	for i := range pedidos {
		d, err := s.detalle(tx, &pedidos[i], conUsuario)
		if err != nil {
			return nil, err
		}
		detalles = append(detalles, *d)
	}
	return detalles, nil
}

// GetPedidos returns every pedido, newest first, with owner summaries.
func (s *PedidoService) GetPedidos(ctx context.Context) ([]PedidoDetalle, error) {
	return s.listar(ctx, true)
}

// GetPedidosByUsuario returns one user's pedidos, newest first.
func (s *PedidoService) GetPedidosByUsuario(ctx context.Context, idUsuario int) ([]PedidoDetalle, error) {
	return s.listar(ctx, false, "id_usuario = ?", idUsuario)
}

func (s *PedidoService) GetPedidoByID(ctx context.Context, id int) (*PedidoDetalle, error) {
	tx := s.db.WithContext(ctx)

	var pedido models.Pedido
	err := tx.First(&pedido, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPedidoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return s.detalle(tx, &pedido, true)
}

// CreatePedido validates the requested items against the catalog and
// persists the pedido together with all of its line rows in a single
// transaction: either everything commits or nothing does. Items are
// validated in the order given; the first unknown plato aborts the whole
// request.
func (s *PedidoService) CreatePedido(ctx context.Context, idUsuario int, items []ItemPedido) (*PedidoDetalle, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Message: "debe incluir al menos un plato en el pedido"}
	}
	for _, item := range items {
		if item.ID <= 0 || item.Cantidad <= 0 {
			return nil, &ValidationError{Message: "cada plato debe tener 'id' y 'cantidad' mayores a 0"}
		}
	}

	var pedido models.Pedido
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var plato models.Plato
			if err := tx.First(&plato, item.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &PlatoInexistenteError{ID: item.ID}
				}
				return err
			}
		}

		pedido = models.Pedido{
			IDUsuario: idUsuario,
			Fecha:     time.Now().Format("2006-01-02"),
			Estado:    models.EstadoPendiente,
		}
		if err := tx.Omit(clause.Associations).Create(&pedido).Error; err != nil {
			return err
		}

		filas := make([]models.PlatoXPedido, 0, len(items))
		for _, item := range items {
			filas = append(filas, models.PlatoXPedido{
				IDPedido: pedido.ID,
				IDPlato:  item.ID,
				Cantidad: item.Cantidad,
			})
		}
		return tx.Omit(clause.Associations).Create(&filas).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPedidoByID(ctx, pedido.ID)
}

// AceptarPedido moves a pedido from pendiente to aceptado.
func (s *PedidoService) AceptarPedido(ctx context.Context, id int) (*PedidoDetalle, error) {
	return s.avanzar(ctx, id, models.EstadoPendiente, models.EstadoAceptado)
}

// ComenzarPedido moves a pedido from aceptado to en camino.
func (s *PedidoService) ComenzarPedido(ctx context.Context, id int) (*PedidoDetalle, error) {
	return s.avanzar(ctx, id, models.EstadoAceptado, models.EstadoEnCamino)
}

// EntregarPedido moves a pedido from en camino to entregado, the terminal
// estado. Nothing transitions out of entregado.
func (s *PedidoService) EntregarPedido(ctx context.Context, id int) (*PedidoDetalle, error) {
	return s.avanzar(ctx, id, models.EstadoEnCamino, models.EstadoEntregado)
}

// avanzar performs one state-machine step. The precondition check and the
// write are a single compare-and-swap UPDATE, so two concurrent admins
// racing on the same pedido cannot both win: the loser's UPDATE matches
// zero rows and surfaces a TransicionInvalidaError.
func (s *PedidoService) avanzar(ctx context.Context, id int, esperado, siguiente string) (*PedidoDetalle, error) {
	tx := s.db.WithContext(ctx)

	result := tx.Model(&models.Pedido{}).
		Where("id = ? AND estado = ?", id, esperado).
		Update("estado", siguiente)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		var pedido models.Pedido
		err := tx.First(&pedido, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNoEncontrado
		}
		if err != nil {
			return nil, err
		}
		return nil, &TransicionInvalidaError{EstadoActual: pedido.Estado, EstadoRequerido: esperado}
	}

	return s.GetPedidoByID(ctx, id)
}

// DeletePedido removes a pedido and its line rows, in that dependency
// order, inside one transaction. Allowed in any estado, entregado
// included; this is the only way out of the pipeline.
func (s *PedidoService) DeletePedido(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		err := tx.First(&pedido, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPedidoNoEncontrado
		}
		if err != nil {
			return err
		}

		if err := tx.Where("id_pedido = ?", id).Delete(&models.PlatoXPedido{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pedido).Error
	})
}
