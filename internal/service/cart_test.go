package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(products *mocks.MockProductRepo, carts *mocks.MockCartRepo)

	dealStart := time.Now().Add(-time.Hour)
	dealEnd := time.Now().Add(time.Hour)
	product := entities.Product{
		ID:   1,
		Name: "Serum",
		Variations: []entities.Variation{
			{ID: 11, Size: "30ml", Price: decimal.NewFromInt(500)},
			{ID: 12, Size: "50ml", Price: decimal.NewFromInt(800)},
		},
	}
	onDeal := product
	onDeal.DealPrice = decimal.NewNullDecimal(decimal.NewFromInt(350))
	onDeal.DealStartTime = &dealStart
	onDeal.DealEndTime = &dealEnd

	testCases := []struct {
		name         string
		variationID  int64
		quantity     int
		mockBehavior MockBehavior
		wantPrice    string
		wantSize     string
		wantErr      error
	}{
		{
			name:        "first variation by default",
			quantity:    1,
			wantPrice:   "500",
			wantSize:    "30ml",
			mockBehavior: func(products *mocks.MockProductRepo, _ *mocks.MockCartRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(product, nil)
			},
		},
		{
			name:        "selected variation",
			variationID: 12,
			quantity:    2,
			wantPrice:   "800",
			wantSize:    "50ml",
			mockBehavior: func(products *mocks.MockProductRepo, _ *mocks.MockCartRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(product, nil)
			},
		},
		{
			name:        "active deal wins",
			variationID: 12,
			quantity:    1,
			wantPrice:   "350",
			wantSize:    "50ml",
			mockBehavior: func(products *mocks.MockProductRepo, _ *mocks.MockCartRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(onDeal, nil)
			},
		},
		{
			name:        "unknown variation",
			variationID: 99,
			quantity:    1,
			mockBehavior: func(products *mocks.MockProductRepo, _ *mocks.MockCartRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(product, nil)
			},
			wantErr: entities.ErrPricingUnavailable,
		},
		{
			name:     "unknown product",
			quantity: 1,
			mockBehavior: func(products *mocks.MockProductRepo, _ *mocks.MockCartRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:         "zero quantity",
			quantity:     0,
			mockBehavior: func(_ *mocks.MockProductRepo, _ *mocks.MockCartRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := mocks.NewMockProductRepo(t)
			carts := mocks.NewMockCartRepo(t)
			tc.mockBehavior(products, carts)
			if tc.wantErr == nil {
				carts.EXPECT().AddItem(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, item entities.CartItem) (entities.CartItem, error) {
						item.ID = 1
						return item, nil
					}).Once()
			}

			svc := service.NewCartService(newLogger(), products, carts)
			item, err := svc.AddItem(context.Background(), "s1", 1, tc.variationID, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "s1", item.SessionID)
			assert.Equal(t, "Serum", item.Name)
			assert.Equal(t, tc.wantSize, item.Size)
			assert.Equal(t, tc.wantPrice, item.UnitPrice.String())
			assert.Equal(t, tc.quantity, item.Quantity)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	carts := mocks.NewMockCartRepo(t)
	svc := service.NewCartService(newLogger(), mocks.NewMockProductRepo(t), carts)

	assert.ErrorIs(t, svc.UpdateQuantity(context.Background(), "s1", 1, 0), entities.ErrInvalidInput)

	carts.EXPECT().UpdateQuantity(mock.Anything, "s1", int64(1), 3).Return(entities.ErrCartItemNotFound).Once()
	assert.ErrorIs(t, svc.UpdateQuantity(context.Background(), "s1", 1, 3), entities.ErrCartItemNotFound)
}
