package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/BrunoMartendal/webhook-pix2/internal/service"
	"github.com/BrunoMartendal/webhook-pix2/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddKey_Success(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	keyService := service.NewKeyService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(k *models.PaymentKey) bool {
			return k.Description == "Principal" &&
				k.KeyType == models.KeyTypeEmail &&
				k.KeyValue == "exemplo@pix.com" &&
				!k.CreatedAt.IsZero()
		})).
		Return(nil).
		Once()

	key, err := keyService.AddKey(ctx, &dto.PaymentKey{Description: "  Principal ", KeyType: "E-mail", KeyValue: " exemplo@pix.com"})

	require.NoError(t, err)
	assert.Equal(t, "Principal", key.Description)
}

func TestAddKey_MissingFields(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	keyService := service.NewKeyService(mockRepo)

	for _, in := range []dto.PaymentKey{
		{KeyType: "CPF", KeyValue: "123"},
		{Description: "x", KeyType: "CPF", KeyValue: "   "},
		{Description: "x", KeyType: "Fax", KeyValue: "123"},
	} {
		_, err := keyService.AddKey(context.Background(), &in)
		assert.ErrorIs(t, err, errs.ErrValidation)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddKey_RepoError(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	keyService := service.NewKeyService(mockRepo)
	ctx := context.Background()
	expectedError := errs.StoreUnavailable(errors.New("disk I/O error"))

	mockRepo.EXPECT().Create(ctx, mock.AnythingOfType("*models.PaymentKey")).Return(expectedError).Once()

	_, err := keyService.AddKey(ctx, &dto.PaymentKey{Description: "a", KeyType: "Aleatória", KeyValue: "b"})
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestListKeys(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	keyService := service.NewKeyService(mockRepo)
	ctx := context.Background()
	keys := []models.PaymentKey{{ID: "k1"}, {ID: "k2"}}

	mockRepo.EXPECT().GetAll(ctx).Return(&keys, nil).Once()

	got, err := keyService.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, keys, got)
}

func TestDeleteKey_NotFound(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	keyService := service.NewKeyService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, "missing").Return(errs.ErrNotFound).Once()

	assert.ErrorIs(t, keyService.DeleteKey(ctx, "missing"), errs.ErrNotFound)
}
