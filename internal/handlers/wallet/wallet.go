package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/agrofount/agrofount-credit/internal/domain"
	"github.com/agrofount/agrofount-credit/internal/dto"
	"github.com/agrofount/agrofount-credit/internal/service/walletservice"
	"github.com/agrofount/agrofount-credit/pkg/auth"
	"github.com/agrofount/agrofount-credit/pkg/utils"
	"github.com/agrofount/agrofount-credit/pkg/validate"
)

type Service interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
	Freeze(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID, limit, offset int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve wallet balance, credit limit and borrowed total for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetOrCreate(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, walletResponse(wallet))
}

// TopUp godoc
//
//	@Summary		Top up wallet
//	@Description	Credit the wallet with funds confirmed by the payment provider reference.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletTopUpRequestDTO	true	"Top-up payload"
//	@Success		200		{object}	dto.WalletResponseDTO		"Updated wallet"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid amount or reference"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WalletTopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if ok := validate.PaymentReference(req.Reference); !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment reference")
		return
	}

	wallet, err := h.walletService.Credit(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, walletResponse(wallet))
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	List the append-only ledger transactions for the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Amount:    tx.Amount,
			Type:      tx.Type,
			Status:    tx.Status,
			CreatedAt: tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Freeze godoc
//
//	@Summary		Freeze a user wallet
//	@Description	Block debits from a wallet. Idempotent. Admin only.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletFreezeRequestDTO	true	"Freeze payload"
//	@Success		200		{object}	dto.WalletResponseDTO		"Frozen wallet"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not an admin"
//	@Failure		404		{object}	utils.Response				"Wallet not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/wallet/freeze [post]
func (h *WalletHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletFreezeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, err := h.walletService.Freeze(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, walletResponse(wallet))
}

func walletResponse(wallet *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		Balance:       wallet.Balance,
		CreditLimit:   wallet.CreditLimit,
		BorrowedTotal: wallet.BorrowedTotal,
		IsFrozen:      wallet.IsFrozen,
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
