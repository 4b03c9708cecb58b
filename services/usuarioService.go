package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"burgertic/models"
)

// HashPassword applies a salted one-way bcrypt hash. Callers hash at the
// point of user creation; nothing rewrites the password column behind the
// caller's back during a save.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword reports whether the plain password matches the stored
// hash. A mismatch is a plain false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type UsuarioService struct {
	db *gorm.DB
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

// CreateUsuario registers a new non-admin account. The admin flag is never
// taken from the request; elevation only happens out of band.
func (s *UsuarioService) CreateUsuario(ctx context.Context, nombre, apellido, email, password string) (*models.Usuario, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Usuario{}).
		Where("LOWER(email) = LOWER(?)", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistrado
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		Nombre:   nombre,
		Apellido: apellido,
		Email:    email,
		Password: hash,
		Admin:    false,
	}
	if err := s.db.WithContext(ctx).Create(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) GetUsuarioByID(ctx context.Context, id int) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Authenticate resolves an email/password pair to a stored usuario.
// Unknown email and wrong password fail indistinguishably.
func (s *UsuarioService) Authenticate(ctx context.Context, email, password string) (*models.Usuario, error) {
	usuario, err := s.GetUsuarioByEmail(ctx, email)
	if errors.Is(err, ErrUsuarioNoEncontrado) {
		return nil, ErrCredencialesInvalidas
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, usuario.Password) {
		return nil, ErrCredencialesInvalidas
	}
	return usuario, nil
}
