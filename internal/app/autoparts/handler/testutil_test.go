package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoparts/internal/app/autoparts/repository/mocks"
	"autoparts/internal/app/autoparts/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// handlerFixture собирает реальные handlers и services поверх моков репозиториев
type handlerFixture struct {
	manufacturerRepo *mocks.MockManufacturerRepository
	productRepo      *mocks.MockProductRepository
	relationRepo     *mocks.MockRelationRepository
	salesRepo        *mocks.MockSalesRepository
	router           *gin.Engine
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		manufacturerRepo: new(mocks.MockManufacturerRepository),
		productRepo:      new(mocks.MockProductRepository),
		relationRepo:     new(mocks.MockRelationRepository),
		salesRepo:        new(mocks.MockSalesRepository),
	}

	catalogHandler := NewCatalogHandler(service.NewCatalogService(f.manufacturerRepo, f.productRepo))
	relationHandler := NewRelationHandler(service.NewRelationService(f.relationRepo))
	salesHandler := NewSalesHandler(service.NewSalesService(f.productRepo, f.salesRepo))

	router := gin.New()

	products := router.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.POST("", catalogHandler.CreateProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)

		products.GET("/:id/related", relationHandler.ListRelated)
		products.GET("/:id/related/available", relationHandler.ListAvailableTargets)
		products.POST("/:id/related", relationHandler.AddRelation)
	}

	router.DELETE("/relations/:id", relationHandler.RemoveRelation)

	manufacturers := router.Group("/manufacturers")
	{
		manufacturers.GET("", catalogHandler.ListManufacturers)
		manufacturers.POST("", catalogHandler.CreateManufacturer)
	}

	sales := router.Group("/sales")
	{
		sales.GET("", salesHandler.ListSales)
		sales.POST("", salesHandler.RecordSale)
	}

	f.router = router
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
