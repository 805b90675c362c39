package credit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/service/eligibilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/facilityservice"
	"github.com/agrofount/agrofount-credit/pkg/auth"
	"github.com/agrofount/agrofount-credit/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService, *MockEligibilityService) {
	ctrl := gomock.NewController(t)
	facilityService := NewMockService(ctrl)
	eligibilityService := NewMockEligibilityService(ctrl)
	handler := New(facilityService, eligibilityService)
	defer ctrl.Finish()
	return handler, facilityService, eligibilityService
}

func authedRequest(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func pendingRequest() *domain.CreditFacilityRequest {
	return &domain.CreditFacilityRequest{
		ID:              10,
		PublicID:        "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		UserID:          1,
		RequestedAmount: decimal.NewFromInt(300000),
		Purpose:         "expand stock",
		RepaymentWeeks:  6,
		AcceptTerms:     true,
		Status:          domain.FacilityStatusPending,
		CreatedAt:       time.Now(),
	}
}

func TestRequestCreditHandler(t *testing.T) {
	handler, facilityService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request created",
			body: `{"amount":"300000","purpose":"expand stock","repayment_period_weeks":6,"accept_terms":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "expand stock", 6, true).
					Return(pendingRequest(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pending request exists",
			body: `{"amount":"300000","purpose":"expand stock","repayment_period_weeks":6,"accept_terms":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "expand stock", 6, true).
					Return(nil, facilityservice.ErrPendingRequestExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already has a pending credit request",
		},
		{
			name: "Invalid repayment period",
			body: `{"amount":"300000","purpose":"expand stock","repayment_period_weeks":8,"accept_terms":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "expand stock", 8, true).
					Return(nil, facilityservice.ErrInvalidPeriod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Terms not accepted",
			body: `{"amount":"300000","purpose":"expand stock","repayment_period_weeks":6,"accept_terms":false}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "expand stock", 6, false).
					Return(nil, facilityservice.ErrTermsNotAccepted)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"amount":"300000","purpose":"expand stock","repayment_period_weeks":6,"accept_terms":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "expand stock", 6, true).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RequestCredit(rr, authedRequest("POST", "/api/user/credit/request", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDecideCreditHandler(t *testing.T) {
	handler, facilityService, _ := NewMock(t)

	approved := pendingRequest()
	approved.Status = domain.FacilityStatusApproved
	approved.ApprovedAmount = approved.RequestedAmount

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Request approved",
			body: `{"request_id":10,"approve":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Decide(gomock.Any(), 10, facilityservice.DecideInput{Approve: true, AdminID: 1}).
					Return(approved, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			body: `{"request_id":11,"approve":true}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Decide(gomock.Any(), 11, gomock.Any()).
					Return(nil, facilityservice.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already decided",
			body: `{"request_id":10,"approve":false}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Decide(gomock.Any(), 10, gomock.Any()).
					Return(nil, facilityservice.ErrAlreadyDecided)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invalid approved amount",
			body: `{"request_id":10,"approve":true,"approved_amount":"-5"}`,
			prepareMock: func() {
				facilityService.EXPECT().
					Decide(gomock.Any(), 10, gomock.Any()).
					Return(nil, facilityservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.DecideCredit(rr, authedRequest("POST", "/api/admin/credit/decide", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetMyRequestsHandler(t *testing.T) {
	handler, facilityService, _ := NewMock(t)

	t.Run("Requests returned", func(t *testing.T) {
		facilityService.EXPECT().ListForUser(gomock.Any(), 1, 20, 0).Return([]domain.CreditFacilityRequest{*pendingRequest()}, nil)

		rr := httptest.NewRecorder()
		handler.GetMyRequests(rr, authedRequest("GET", "/api/user/credit/requests", ""))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", resp[0]["id"])
	})

	t.Run("No requests", func(t *testing.T) {
		facilityService.EXPECT().ListForUser(gomock.Any(), 1, 20, 0).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.GetMyRequests(rr, authedRequest("GET", "/api/user/credit/requests", ""))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestGetAllRequestsHandler(t *testing.T) {
	handler, facilityService, _ := NewMock(t)

	facilityService.EXPECT().ListAll(gomock.Any(), 20, 0).Return([]domain.CreditFacilityRequest{*pendingRequest()}, nil)

	rr := httptest.NewRecorder()
	handler.GetAllRequests(rr, authedRequest("GET", "/api/admin/credit/requests", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetDisbursementsHandler(t *testing.T) {
	handler, facilityService, _ := NewMock(t)

	withRouteID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Plan returned", func(t *testing.T) {
		facilityService.EXPECT().GetDisbursements(gomock.Any(), 1, 10).Return([]domain.Disbursement{
			{ID: 1, FacilityID: 10, UserID: 1, Amount: decimal.NewFromInt(100000), Phase: 1, ScheduledAt: time.Now(), Completed: true},
			{ID: 2, FacilityID: 10, UserID: 1, Amount: decimal.NewFromInt(100000), Phase: 2, ScheduledAt: time.Now()},
			{ID: 3, FacilityID: 10, UserID: 1, Amount: decimal.NewFromInt(100000), Phase: 3, ScheduledAt: time.Now()},
		}, nil)

		rr := httptest.NewRecorder()
		req := withRouteID(authedRequest("GET", "/api/user/credit/requests/10/disbursements", ""), "10")
		handler.GetDisbursements(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 3)
		assert.Equal(t, float64(1), resp[0]["phase"])
		assert.Equal(t, true, resp[0]["completed"])
	})

	t.Run("Facility not found", func(t *testing.T) {
		facilityService.EXPECT().GetDisbursements(gomock.Any(), 1, 99).Return(nil, facilityservice.ErrRequestNotFound)

		rr := httptest.NewRecorder()
		req := withRouteID(authedRequest("GET", "/api/user/credit/requests/99/disbursements", ""), "99")
		handler.GetDisbursements(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Non-numeric facility id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := withRouteID(authedRequest("GET", "/api/user/credit/requests/abc/disbursements", ""), "abc")
		handler.GetDisbursements(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCheckEligibilityHandler(t *testing.T) {
	handler, _, eligibilityService := NewMock(t)

	t.Run("Assessment returned", func(t *testing.T) {
		eligibilityService.EXPECT().Assess(gomock.Any(), 1).Return(&eligibilityservice.Assessment{
			Eligible:      true,
			Score:         700,
			MaxAmount:     decimal.NewFromInt(30000),
			InterestRate:  decimal.NewFromInt(8),
			RepaymentRate: decimal.NewFromInt(100),
			Reason:        "eligible with score 700 from 3 completed orders",
		}, nil)

		rr := httptest.NewRecorder()
		handler.CheckEligibility(rr, authedRequest("GET", "/api/user/credit/eligibility", ""))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, true, resp["eligible"])
	})

	t.Run("Scorer error", func(t *testing.T) {
		eligibilityService.EXPECT().Assess(gomock.Any(), 1).Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.CheckEligibility(rr, authedRequest("GET", "/api/user/credit/eligibility", ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
