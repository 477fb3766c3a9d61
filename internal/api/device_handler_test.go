package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

type DeviceHandlerTestSuite struct {
	suite.Suite
	mockService *MockDeviceService
	handler     *DeviceHandler
}

type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) Register(ctx context.Context, req dto.CreateDeviceRequest) (dto.DeviceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.DeviceResponse), args.Error(1)
}

func (m *MockDeviceService) GetByID(ctx context.Context, id string) (dto.DeviceResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.DeviceResponse), args.Error(1)
}

func (m *MockDeviceService) List(ctx context.Context, filter domain.DeviceFilter) ([]dto.DeviceResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.DeviceResponse), args.Error(1)
}

func (m *MockDeviceService) Heartbeat(ctx context.Context, id string, req dto.DeviceHeartbeatRequest) (dto.DeviceResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.DeviceResponse), args.Error(1)
}

func (m *MockDeviceService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (s *DeviceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockDeviceService)
	s.handler = NewDeviceHandler(s.mockService)
}

func TestDeviceHandler(t *testing.T) {
	suite.Run(t, new(DeviceHandlerTestSuite))
}

func (s *DeviceHandlerTestSuite) TestRegisterDevice_Success() {
	req := dto.CreateDeviceRequest{Name: "gw-eu-1", DeviceType: "gateway"}
	expected := dto.DeviceResponse{ID: "dev-1", TenantID: "tenant-1", Name: "gw-eu-1", Status: "offline"}

	s.mockService.On("Register", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/devices", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.RegisterDevice(c)

	s.Equal(http.StatusCreated, w.Code)
	var response dto.DeviceResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("dev-1", response.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *DeviceHandlerTestSuite) TestRegisterDevice_NoTenant() {
	req := dto.CreateDeviceRequest{Name: "gw-eu-1", DeviceType: "gateway"}
	s.mockService.On("Register", mock.Anything, req).
		Return(dto.DeviceResponse{}, store.ErrNoTenantContext)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/devices", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.RegisterDevice(c)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *DeviceHandlerTestSuite) TestListDevices_WithFilter() {
	expected := []dto.DeviceResponse{{ID: "dev-1", DeviceType: "gateway"}}
	s.mockService.On("List", mock.Anything, domain.DeviceFilter{DeviceType: "gateway"}).
		Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/devices?device_type=gateway", nil)

	s.handler.ListDevices(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.DeviceResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 1)
	s.mockService.AssertExpectations(s.T())
}

func (s *DeviceHandlerTestSuite) TestHeartbeat_InvalidStatus() {
	req := dto.DeviceHeartbeatRequest{Status: "sleeping"}
	s.mockService.On("Heartbeat", mock.Anything, "dev-1", req).
		Return(dto.DeviceResponse{}, service.ErrInvalidDeviceStatus)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/devices/dev-1/heartbeat", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "dev-1"}}

	s.handler.Heartbeat(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *DeviceHandlerTestSuite) TestGetDevice_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "missing").
		Return(dto.DeviceResponse{}, service.ErrDeviceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/devices/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.handler.GetDevice(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *DeviceHandlerTestSuite) TestDeviceStatusSummary() {
	s.mockService.On("CountByStatus", mock.Anything).
		Return(map[string]int64{"online": 2, "offline": 1}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/devices/summary", nil)

	s.handler.DeviceStatusSummary(c)

	s.Equal(http.StatusOK, w.Code)
	var response map[string]int64
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(int64(2), response["online"])
}
