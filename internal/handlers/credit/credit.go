package credit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/dto"
	"github.com/agrofount/agrofount-credit/internal/service/eligibilityservice"
	"github.com/agrofount/agrofount-credit/internal/service/facilityservice"
	"github.com/agrofount/agrofount-credit/pkg/auth"
	"github.com/agrofount/agrofount-credit/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	Request(ctx context.Context, userID int, amount decimal.Decimal, purpose string, repaymentWeeks int, acceptTerms bool) (*domain.CreditFacilityRequest, error)
	Decide(ctx context.Context, requestID int, input facilityservice.DecideInput) (*domain.CreditFacilityRequest, error)
	ListForUser(ctx context.Context, userID, limit, offset int) ([]domain.CreditFacilityRequest, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.CreditFacilityRequest, error)
	GetDisbursements(ctx context.Context, userID, facilityID int) ([]domain.Disbursement, error)
}

type EligibilityService interface {
	Assess(ctx context.Context, userID int) (*eligibilityservice.Assessment, error)
}

type CreditHandler struct {
	facilityService    Service
	eligibilityService EligibilityService
}

func New(facilityService Service, eligibilityService EligibilityService) *CreditHandler {
	return &CreditHandler{
		facilityService:    facilityService,
		eligibilityService: eligibilityService,
	}
}

// RequestCredit godoc
//
//	@Summary		Request a credit facility
//	@Description	Create a pending credit facility request. One pending request per user at a time.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditRequestDTO	true	"Credit request payload"
//	@Success		200		{object}	dto.CreditRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, period or terms"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Pending request already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credit/request [post]
func (h *CreditHandler) RequestCredit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.facilityService.Request(r.Context(), userID, req.Amount, req.Purpose, req.RepaymentWeeks, req.AcceptTerms)
	if err != nil {
		switch {
		case errors.Is(err, facilityservice.ErrPendingRequestExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, facilityservice.ErrInvalidAmount),
			errors.Is(err, facilityservice.ErrInvalidPeriod),
			errors.Is(err, facilityservice.ErrTermsNotAccepted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, requestResponse(created))
}

// DecideCredit godoc
//
//	@Summary		Decide a credit facility request
//	@Description	Approve or reject a pending request. Approval schedules the 3-phase disbursement plan and credits phase 1. Admin only.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditDecideRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.CreditRequestResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already decided"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/credit/decide [post]
func (h *CreditHandler) DecideCredit(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreditDecideRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decided, err := h.facilityService.Decide(r.Context(), req.RequestID, facilityservice.DecideInput{
		Approve:        req.Approve,
		ApprovedAmount: req.ApprovedAmount,
		AdminID:        adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, facilityservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, facilityservice.ErrAlreadyDecided):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, facilityservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, requestResponse(decided))
}

// GetMyRequests godoc
//
//	@Summary		List own credit requests
//	@Description	List the authenticated user's credit facility requests, newest first.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CreditRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credit/requests [get]
func (h *CreditHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	requests, err := h.facilityService.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credit requests")
		return
	}
	h.respondRequests(w, requests)
}

// GetAllRequests godoc
//
//	@Summary		List all credit requests
//	@Description	List credit facility requests across all users. Admin only.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CreditRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/credit/requests [get]
func (h *CreditHandler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	requests, err := h.facilityService.ListAll(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credit requests")
		return
	}
	h.respondRequests(w, requests)
}

// GetDisbursements godoc
//
//	@Summary		Get a disbursement plan
//	@Description	List the scheduled disbursement phases of one of the user's own credit facilities.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Credit facility request ID"
//	@Success		200	{array}		dto.DisbursementResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid facility ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Facility not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credit/requests/{id}/disbursements [get]
func (h *CreditHandler) GetDisbursements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	facilityID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid facility id")
		return
	}

	disbursements, err := h.facilityService.GetDisbursements(r.Context(), userID, facilityID)
	if err != nil {
		if errors.Is(err, facilityservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DisbursementResponseDTO, len(disbursements))
	for i, d := range disbursements {
		response[i] = dto.DisbursementResponseDTO{
			Phase:       d.Phase,
			Amount:      d.Amount,
			ScheduledAt: d.ScheduledAt,
			Completed:   d.Completed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CheckEligibility godoc
//
//	@Summary		Check credit eligibility
//	@Description	Score the user's order history and persist an assessment record.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EligibilityResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credit/eligibility [get]
func (h *CreditHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	assessment, err := h.eligibilityService.Assess(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibilityResponseDTO{
		Eligible:      assessment.Eligible,
		Score:         assessment.Score,
		MaxAmount:     assessment.MaxAmount,
		InterestRate:  assessment.InterestRate,
		RepaymentRate: assessment.RepaymentRate,
		Reason:        assessment.Reason,
	})
}

func (h *CreditHandler) respondRequests(w http.ResponseWriter, requests []domain.CreditFacilityRequest) {
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Credit requests not found")
		return
	}

	response := make([]dto.CreditRequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = requestResponse(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func requestResponse(req *domain.CreditFacilityRequest) dto.CreditRequestResponseDTO {
	return dto.CreditRequestResponseDTO{
		ID:              req.PublicID,
		Amount:          req.RequestedAmount,
		Purpose:         req.Purpose,
		RepaymentWeeks:  req.RepaymentWeeks,
		Status:          req.Status,
		ApprovedAmount:  req.ApprovedAmount,
		CreditStartDate: req.CreditStartDate,
		CreditEndDate:   req.CreditEndDate,
		CreatedAt:       req.CreatedAt,
	}
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
