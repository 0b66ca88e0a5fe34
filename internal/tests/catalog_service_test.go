package tests

import (
	"testing"

	"campus-canteen/internal/domain"
	"campus-canteen/internal/mocks"
	"campus-canteen/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_Create(t *testing.T) {
	tests := []struct {
		name          string
		item          domain.Item
		prepareMocks  func(repo *mocks.CatalogRepository)
		expectedError error
	}{
		{
			name: "success_assigns_id",
			item: domain.Item{Name: "Dosa", Price: 40, AvailableQty: 50},
			prepareMocks: func(repo *mocks.CatalogRepository) {
				repo.On("CreateItem", mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_missing_name",
			item:          domain.Item{Price: 40},
			prepareMocks:  func(repo *mocks.CatalogRepository) {},
			expectedError: service.ErrMissingFields,
		},
		{
			name:          "error_negative_price",
			item:          domain.Item{Name: "Dosa", Price: -1},
			prepareMocks:  func(repo *mocks.CatalogRepository) {},
			expectedError: service.ErrNegativePrice,
		},
		{
			name:          "error_negative_quantity",
			item:          domain.Item{Name: "Dosa", Price: 40, AvailableQty: -5},
			prepareMocks:  func(repo *mocks.CatalogRepository) {},
			expectedError: service.ErrNegativeQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			svc := service.NewCatalogService(repo)
			testCase.prepareMocks(repo)

			err := svc.Create(&testCase.item)
			assert.ErrorIs(t, err, testCase.expectedError)

			if testCase.expectedError == nil {
				assert.NotEmpty(t, testCase.item.ID)
			}
		})
	}
}

func TestCatalogService_SetQuantity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo)

		updated := &domain.Item{ID: "item-dosa", Name: "Dosa", AvailableQty: 12}
		repo.On("SetQuantity", "item-dosa", 12).Return(updated, nil).Once()

		item, err := svc.SetQuantity("item-dosa", 12)
		assert.NoError(t, err)
		assert.Equal(t, 12, item.AvailableQty)
	})

	t.Run("error_negative_quantity_never_hits_repo", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo)

		_, err := svc.SetQuantity("item-dosa", -1)
		assert.ErrorIs(t, err, service.ErrNegativeQuantity)
	})

	t.Run("error_unknown_item", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		svc := service.NewCatalogService(repo)

		repo.On("SetQuantity", "item-ghost", 3).Return(nil, domain.ErrItemNotFound).Once()

		_, err := svc.SetQuantity("item-ghost", 3)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
