package materials

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMaterialTypeRepository struct {
	mock.Mock
}

func (m *MockMaterialTypeRepository) GetMaterialTypes() ([]models.MaterialType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaterialType), args.Error(1)
}

func (m *MockMaterialTypeRepository) GetMaterialType(id int) (*models.MaterialType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaterialType), args.Error(1)
}

func (m *MockMaterialTypeRepository) DensityFor(name string) (string, bool, error) {
	args := m.Called(name)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockMaterialTypeRepository) PersistMaterialType(name, density string) (*models.MaterialType, error) {
	args := m.Called(name, density)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaterialType), args.Error(1)
}

func (m *MockMaterialTypeRepository) UpdateMaterialType(id int, name, density string) error {
	args := m.Called(id, name, density)
	return args.Error(0)
}

func (m *MockMaterialTypeRepository) DeleteMaterialType(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupRouter(h *MaterialTypeHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/material-types/:id", h.DeleteMaterialType)
	return router
}

func TestDeleteMaterialTypeBlockedWhileReferenced(t *testing.T) {
	repo := new(MockMaterialTypeRepository)
	repo.On("DeleteMaterialType", 3).
		Return(custom_error.WrapDBError(fmt.Sprintf("material type %q", "MS"), "23503"))

	router := setupRouter(NewHandler(repo))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/material-types/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "still referenced")
	repo.AssertExpectations(t)
}

func TestDeleteMaterialTypeUnreferenced(t *testing.T) {
	repo := new(MockMaterialTypeRepository)
	repo.On("DeleteMaterialType", 4).Return(nil)

	router := setupRouter(NewHandler(repo))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/material-types/4", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestDeleteMaterialTypeInvalidID(t *testing.T) {
	repo := new(MockMaterialTypeRepository)
	router := setupRouter(NewHandler(repo))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/material-types/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "DeleteMaterialType")
}
