package service

import (
	"context"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/shenikar/fire_ops_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPropertyService(t *testing.T) (PropertyService, *mocks.MockPropertyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPropertyRepository(ctrl)
	return NewPropertyService(repoMock, newTestLogger()), repoMock
}

func TestCreateProperty_RequiresParcelID(t *testing.T) {
	service, _ := newTestPropertyService(t)

	_, err := service.CreateProperty(context.Background(), models.Property{Address: "1 Main St"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateProperty_DuplicateParcel(t *testing.T) {
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()

	repoMock.EXPECT().ParcelIDExists(ctx, "P-100", "").Return(true, nil)

	_, err := service.CreateProperty(ctx, models.Property{ParcelID: "P-100"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateProperty_Success(t *testing.T) {
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	input := models.Property{ParcelID: "P-101", Address: "5 Oak Ave"}

	repoMock.EXPECT().ParcelIDExists(ctx, "P-101", "").Return(false, nil)
	repoMock.EXPECT().CreateProperty(ctx, input).Return(models.Property{ID: "prop-1", ParcelID: "P-101"}, nil)

	result, err := service.CreateProperty(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "prop-1", result.ID)
}
