package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"burgertic/models"
)

type PlatoService struct {
	db *gorm.DB
}

func NewPlatoService(db *gorm.DB) *PlatoService {
	return &PlatoService{db: db}
}

func (s *PlatoService) GetPlatos(ctx context.Context) ([]models.Plato, error) {
	var platos []models.Plato
	if err := s.db.WithContext(ctx).Order("id").Find(&platos).Error; err != nil {
		return nil, err
	}
	return platos, nil
}

func (s *PlatoService) GetPlatoByID(ctx context.Context, id int) (*models.Plato, error) {
	var plato models.Plato
	err := s.db.WithContext(ctx).First(&plato, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlatoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &plato, nil
}

func (s *PlatoService) CreatePlato(ctx context.Context, plato *models.Plato) error {
	return s.db.WithContext(ctx).Create(plato).Error
}

func (s *PlatoService) DeletePlato(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Plato{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlatoNoEncontrado
	}
	return nil
}
