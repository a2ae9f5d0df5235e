package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/handlers"
	"github.com/sabzimandi/mandi_backend/internal/platform/config"
	"github.com/sabzimandi/mandi_backend/internal/realtime"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyService) GetBalance(ctx context.Context, partyID string) (*domain.PaymentDetail, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetail), args.Error(1)
}
func (m *MockPartyService) ListBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDetail), args.Error(1)
}
func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}
func (m *MockPartyService) CorrectBalance(ctx context.Context, partyID string, req dto.CorrectBalanceRequest) (*domain.PaymentDetail, error) {
	args := m.Called(ctx, partyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetail), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPartyService
}

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockPartyService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Party: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, services, realtime.NewHub(slog.Default()))
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Created() {
	created := &domain.Party{
		PartyID: uuid.NewString(),
		Type:    domain.PartySupplier,
		Name:    "Ramesh Traders",
	}
	suite.mockService.On("CreateParty", mock.Anything, mock.MatchedBy(func(req dto.CreatePartyRequest) bool {
		return req.Name == "Ramesh Traders" && req.Type == domain.PartySupplier
	})).Return(created, nil).Once()

	body, _ := json.Marshal(gin.H{"type": "Supplier", "name": "Ramesh Traders"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PartyID, resp.PartyID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_InvalidType() {
	body, _ := json.Marshal(gin.H{"type": "Vendor", "name": "X"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Duplicate() {
	suite.mockService.On("CreateParty", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(gin.H{"type": "Customer", "name": "Mohan"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PartyHandlerTestSuite) TestGetParty_NotFound() {
	partyID := uuid.NewString()
	suite.mockService.On("GetPartyByID", mock.Anything, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/"+partyID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PartyHandlerTestSuite) TestListParties_RequiresType() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PartyHandlerTestSuite) TestGetBalance_OK() {
	partyID := uuid.NewString()
	suite.mockService.On("GetBalance", mock.Anything, partyID).
		Return(&domain.PaymentDetail{
			PartyID:   partyID,
			PartyType: domain.PartyCustomer,
			PartyName: "Mohan",
			DueAmount: decimal.NewFromInt(450),
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/"+partyID+"/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "450")
}

func (suite *PartyHandlerTestSuite) TestDeleteParty_NoContent() {
	partyID := uuid.NewString()
	suite.mockService.On("DeleteParty", mock.Anything, partyID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/parties/"+partyID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestPartyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
