package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
	"inventory/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_List(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Store: 100},
		{ID: "2", Name: "Product B", Counter: 50},
	}
	filter := repositories.ProductFilter{Name: "product"}
	params := query.Params{Sort: query.DefaultSort}

	mockRepo.On("List", ctx, filter, params).Return(expectedProducts, int64(7), nil).Once()

	products, total, err := service.List(ctx, filter, params)

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	assert.EqualValues(t, 7, total)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Get(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	expectedProduct := &models.Product{ID: "1", Name: "Product A"}
	mockRepo.On("GetByID", ctx, "1").Return(expectedProduct, nil).Once()
	product, err := service.Get(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", ctx, "99").Return(nil, repositories.ErrNotFound).Once()
	_, err = service.Get(ctx, "99")
	var be *services.BusinessError
	assert.True(t, errors.As(err, &be))
	assert.Equal(t, "Product not found", be.Message)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.On("GetByID", ctx, "500").Return(nil, fmt.Errorf("connection reset")).Once()
	_, err = service.Get(ctx, "500")
	assert.Error(t, err)
	assert.False(t, errors.As(err, &be))
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	in := &models.ProductInput{
		CategoryID: "cat-1",
		Name:       "New Product",
		UnitCost:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(8),
		Store:      10,
		Counter:    5,
	}
	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "New Product" && p.Store == 10 && p.Counter == 5 && p.CategoryID == "cat-1"
	})).Return(nil).Once()

	product, err := service.Create(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, "New Product", product.Name)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("db error")).Once()
	_, err = service.Create(ctx, in)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateIgnoresStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	in := &models.ProductInput{ID: "1", CategoryID: "cat-1", Name: "Renamed", Store: 500, Counter: 500}
	mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Name == "Renamed" && p.Store == 0 && p.Counter == 0
	})).Return(nil).Once()
	mockRepo.On("GetByID", ctx, "1").Return(&models.Product{ID: "1", Name: "Renamed", Store: 3}, nil).Once()

	product, err := service.Update(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, 3, product.Store)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Update", ctx, mock.AnythingOfType("*models.Product")).Return(repositories.ErrNotFound).Once()
	_, err = service.Update(ctx, in)
	assert.EqualError(t, err, "Product not updated. Please try again: record not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, []string{"1", "2"}).Return(int64(2), nil).Once()
	assert.NoError(t, service.Delete(ctx, []string{"1", "2"}))

	mockRepo.On("Delete", ctx, []string{"1", "99"}).Return(int64(1), nil).Once()
	err := service.Delete(ctx, []string{"1", "99"})
	var be *services.BusinessError
	assert.True(t, errors.As(err, &be))
	assert.Equal(t, "1 products not deleted. Please try again", be.Message)

	mockRepo.On("Delete", ctx, []string{"3"}).Return(int64(0), fmt.Errorf("db error")).Once()
	assert.Error(t, service.Delete(ctx, []string{"3"}))
	mockRepo.AssertExpectations(t)
}
