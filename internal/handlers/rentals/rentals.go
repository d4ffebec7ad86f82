package rentals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ESChernov/steamrent/internal/dto"
	"github.com/ESChernov/steamrent/internal/guard"
	"github.com/ESChernov/steamrent/internal/service/rentalservice"
	"github.com/ESChernov/steamrent/pkg/utils"
)

//go:generate mockgen -source=rentals.go -destination=mock_rentals.go -package=rentals

type Service interface {
	ClaimForOrder(ctx context.Context, buyerID string, orderDescription string, quantity int) (*rentalservice.ClaimResult, error)
	RequestCode(ctx context.Context, accountID int, requesterID string) (*rentalservice.CodeGrant, error)
	GetRentalStatus(ctx context.Context, accountID int) (*rentalservice.RentalStatus, error)
	ExtendRental(ctx context.Context, accountID int, deltaHours int) (bool, error)
	HandleReview(ctx context.Context, reviewerID string, retracted bool) error
}

type RentalHandler struct {
	rentalService Service
}

func New(rentalService Service) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

// Claim matches an order description against the catalog and rents out up to
// the requested number of accounts.
func (h *RentalHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BuyerID == "" || req.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "buyer_id and description are required")
		return
	}

	result, err := h.rentalService.ClaimForOrder(r.Context(), req.BuyerID, req.Description, req.Quantity)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	resp := dto.ClaimResponseDTO{
		AccountName: result.AccountName,
		Requested:   result.Requested,
		Claimed:     make([]dto.ClaimedAccountDTO, 0, len(result.Claimed)),
	}
	for _, grant := range result.Claimed {
		resp.Claimed = append(resp.Claimed, dto.ClaimedAccountDTO{
			AccountID: grant.AccountID,
			Login:     grant.Login,
			Password:  grant.Password,
			Code:      grant.Code,
			ExpiresAt: grant.ExpiresAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RequestCode returns a fresh Guard code for the renter, consuming one
// access-cap slot.
func (h *RentalHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.CodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RequesterID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "requester_id is required")
		return
	}

	grant, err := h.rentalService.RequestCode(r.Context(), accountID, req.RequesterID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CodeResponseDTO{
		Code:           grant.Code,
		AccessCount:    grant.AccessCount,
		MaxAccessCount: grant.MaxAccessCount,
	})
}

func (h *RentalHandler) Status(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	status, err := h.rentalService.GetRentalStatus(r.Context(), accountID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	resp := dto.StatusResponseDTO{
		AccountID:       status.AccountID,
		Rented:          status.Rented,
		Owner:           status.Owner,
		AccessRemaining: status.AccessRemaining,
	}
	if status.Rented {
		expiresAt := status.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Extend is the operator-driven duration adjustment, positive or negative.
func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.ExtendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeltaHours == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "delta_hours is required and must not be zero")
		return
	}

	extended, err := h.rentalService.ExtendRental(r.Context(), accountID, req.DeltaHours)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if !extended {
		utils.RespondWithError(w, http.StatusNotFound, "Account is not rented")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ExtendResponseDTO{
		Message: "Rental duration adjusted",
	})
}

// Review applies or retracts the review bonus for the reviewer's most recent
// active rental.
func (h *RentalHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReviewerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "reviewer_id is required")
		return
	}

	if err := h.rentalService.HandleReview(r.Context(), req.ReviewerID, req.Retracted); err != nil {
		respondWithServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReviewResponseDTO{
		Message: "Review processed",
	})
}

func accountIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rentalservice.ErrNoStock):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rentalservice.ErrNotFound), errors.Is(err, rentalservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rentalservice.ErrExpired), errors.Is(err, rentalservice.ErrCapReached):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, guard.ErrBadBundle):
		utils.RespondWithError(w, http.StatusBadGateway, "Code generation is temporarily unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
