package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	mockService *MockTenantService
	handler     *TenantHandler
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) ListByStatus(ctx context.Context, status string) ([]dto.TenantResponse, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]dto.TenantResponse), args.Error(1)
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockTenantService)
	s.handler = NewTenantHandler(s.mockService)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	now := time.Now()
	req := dto.CreateTenantRequest{Name: "Test Tenant", Plan: "pro"}
	expected := dto.TenantResponse{
		ID:        "tenant-new",
		Name:      req.Name,
		Status:    "active",
		Plan:      "pro",
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mockService.On("Create", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/tenants", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateTenant(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected.ID, response.ID)
	s.Equal(expected.Name, response.Name)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_MissingName() {
	body := []byte(`{"plan":"pro"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/tenants", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateTenant(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *TenantHandlerTestSuite) TestListTenants_Success() {
	expected := []dto.TenantResponse{
		{ID: "tenant-1", Name: "Acme Industrial"},
		{ID: "tenant-2", Name: "Globex Logistics"},
	}
	s.mockService.On("List", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/tenants", nil)

	s.handler.ListTenants(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal("tenant-1", response[0].ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestListTenants_ByStatus() {
	expected := []dto.TenantResponse{{ID: "tenant-s", Name: "Suspended Co", Status: "suspended"}}
	s.mockService.On("ListByStatus", mock.Anything, "suspended").Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/tenants?status=suspended", nil)

	s.handler.ListTenants(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrTenantNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/tenants/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.handler.GetTenant(c)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
