package handler

import (
	"net/http"
	"testing"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListProducts_Success(t *testing.T) {
	f := newHandlerFixture()

	products := []entity.ProductView{
		{Product: entity.Product{ID: 1, Name: "Масло", Price: decimal.RequireFromString("2500.00")}, ManufacturerName: "Toyota"},
		{Product: entity.Product{ID: 2, Name: "Фильтр", Price: decimal.RequireFromString("800.00")}},
	}
	f.productRepo.On("GetAll", mock.Anything, entity.ProductFilter{}).Return(products, nil)

	w := f.do(t, http.MethodGet, "/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ProductListResponse
	decodeResponse(t, w, &response)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, "Масло", response.Products[0].Name)
	assert.Equal(t, "Toyota", response.Products[0].ManufacturerName)
}

func TestListProducts_WithFilterAndSort(t *testing.T) {
	f := newHandlerFixture()

	manufacturerID := int64(3)
	expectedFilter := entity.ProductFilter{
		ManufacturerID: &manufacturerID,
		SortBy:         "price",
		SortOrder:      "desc",
	}
	f.productRepo.On("GetAll", mock.Anything, expectedFilter).Return([]entity.ProductView{}, nil)

	w := f.do(t, http.MethodGet, "/products?manufacturer_id=3&sort_by=price&sort_order=desc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.productRepo.AssertExpectations(t)
}

func TestListProducts_InvalidManufacturerID(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(t, http.MethodGet, "/products?manufacturer_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.productRepo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
}

func TestGetProduct_Success(t *testing.T) {
	f := newHandlerFixture()

	view := &entity.ProductView{
		Product:              entity.Product{ID: 1, Name: "Масло", Price: decimal.RequireFromString("2500.00")},
		ManufacturerName:     "Toyota",
		RelatedProductsCount: 2,
	}
	f.productRepo.On("GetByID", mock.Anything, int64(1)).Return(view, nil)

	w := f.do(t, http.MethodGet, "/products/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ProductView
	decodeResponse(t, w, &response)
	assert.Equal(t, "Масло", response.Name)
	assert.Equal(t, int64(2), response.RelatedProductsCount)
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrProductNotFound)

	w := f.do(t, http.MethodGet, "/products/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProduct_InvalidID(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(t, http.MethodGet, "/products/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 7
		}).
		Return(nil)
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(&entity.ProductView{
		Product: entity.Product{ID: 7, Name: "Масло", Price: decimal.RequireFromString("2500.00"), IsActive: true},
	}, nil)

	w := f.do(t, http.MethodPost, "/products", entity.SaveProductRequest{
		Name:  "Масло",
		Price: decimal.RequireFromString("2500.00"),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.ProductView
	decodeResponse(t, w, &response)
	assert.Equal(t, int64(7), response.ID)
	assert.True(t, response.IsActive)
}

func TestCreateProduct_ValidationFailed(t *testing.T) {
	f := newHandlerFixture()

	// Пустое имя не проходит валидацию запроса
	w := f.do(t, http.MethodPost, "/products", entity.SaveProductRequest{
		Name:  "",
		Price: decimal.RequireFromString("100.00"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(t, http.MethodPost, "/products", entity.SaveProductRequest{
		Name:  "Масло",
		Price: decimal.RequireFromString("-1.00"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_UnknownManufacturer(t *testing.T) {
	f := newHandlerFixture()

	manufacturerID := int64(999)
	f.manufacturerRepo.On("GetByID", mock.Anything, manufacturerID).
		Return(nil, repository.ErrManufacturerNotFound)

	w := f.do(t, http.MethodPost, "/products", entity.SaveProductRequest{
		Name:           "Масло",
		Price:          decimal.RequireFromString("100.00"),
		ManufacturerID: &manufacturerID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct_Success(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.productRepo.On("GetByID", mock.Anything, int64(5)).Return(&entity.ProductView{
		Product: entity.Product{ID: 5, Name: "Новое имя", Price: decimal.RequireFromString("150.50")},
	}, nil)

	w := f.do(t, http.MethodPut, "/products/5", entity.SaveProductRequest{
		Name:  "Новое имя",
		Price: decimal.RequireFromString("150.50"),
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ProductView
	decodeResponse(t, w, &response)
	assert.Equal(t, "Новое имя", response.Name)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	w := f.do(t, http.MethodPut, "/products/404", entity.SaveProductRequest{
		Name:  "Призрак",
		Price: decimal.RequireFromString("1.00"),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct_Success(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("DeleteWithRelations", mock.Anything, int64(1)).Return(nil)

	w := f.do(t, http.MethodDelete, "/products/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.productRepo.AssertExpectations(t)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	f := newHandlerFixture()

	f.productRepo.On("DeleteWithRelations", mock.Anything, int64(404)).
		Return(repository.ErrProductNotFound)

	w := f.do(t, http.MethodDelete, "/products/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListManufacturers_Success(t *testing.T) {
	f := newHandlerFixture()

	manufacturers := []entity.Manufacturer{
		{ID: 1, Name: "Bosch"},
		{ID: 2, Name: "Toyota"},
	}
	f.manufacturerRepo.On("GetAll", mock.Anything).Return(manufacturers, nil)

	w := f.do(t, http.MethodGet, "/manufacturers", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ManufacturerListResponse
	decodeResponse(t, w, &response)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, "Bosch", response.Manufacturers[0].Name)
}

func TestCreateManufacturer_Success(t *testing.T) {
	f := newHandlerFixture()

	f.manufacturerRepo.On("EnsureByName", mock.Anything, "Toyota").
		Return(&entity.Manufacturer{ID: 1, Name: "Toyota"}, nil)

	w := f.do(t, http.MethodPost, "/manufacturers", entity.CreateManufacturerRequest{Name: "Toyota"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.Manufacturer
	decodeResponse(t, w, &response)
	assert.Equal(t, int64(1), response.ID)
}

func TestCreateManufacturer_EmptyName(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(t, http.MethodPost, "/manufacturers", entity.CreateManufacturerRequest{Name: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.manufacturerRepo.AssertNotCalled(t, "EnsureByName", mock.Anything, mock.Anything)
}
