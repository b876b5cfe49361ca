package service

import (
	"context"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
)

// KeyRepo defines the persistence operations for payment keys.
type KeyRepo interface {
	Create(ctx context.Context, key *models.PaymentKey) error
	GetAll(ctx context.Context) (*[]models.PaymentKey, error)
	GetByID(ctx context.Context, id string) (*models.PaymentKey, error)
	Delete(ctx context.Context, id string) error
}

type KeyService struct {
	Repo KeyRepo
}

func NewKeyService(repo KeyRepo) *KeyService {
	return &KeyService{Repo: repo}
}

func (s *KeyService) ListKeys(ctx context.Context) ([]models.PaymentKey, error) {
	keys, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return *keys, nil
}

// AddKey validates and stores a new key. All three text fields are required.
func (s *KeyService) AddKey(ctx context.Context, keyDTO *dto.PaymentKey) (*models.PaymentKey, error) {
	keyDTO.Sanitize()
	key := keyDTO.ToEntity()
	if err := key.Validate(); err != nil {
		return nil, errs.Validation("%s", err.Error())
	}
	key.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (s *KeyService) DeleteKey(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
