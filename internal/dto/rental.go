package dto

import "time"

type ClaimRequestDTO struct {
	BuyerID     string `json:"buyer_id" validate:"required"`
	Description string `json:"description" validate:"required"`
	Quantity    int    `json:"quantity" example:"1"`
}

type ClaimedAccountDTO struct {
	AccountID int       `json:"account_id" example:"1"`
	Login     string    `json:"login" example:"steamlogin42"`
	Password  string    `json:"password" example:"hunter2"`
	Code      string    `json:"code,omitempty" example:"CX2MR"`
	ExpiresAt time.Time `json:"expires_at" example:"2020-12-09T16:09:57+03:00"`
}

type ClaimResponseDTO struct {
	AccountName string              `json:"account_name" example:"Game X"`
	Requested   int                 `json:"requested" example:"2"`
	Claimed     []ClaimedAccountDTO `json:"claimed"`
}

type CodeRequestDTO struct {
	RequesterID string `json:"requester_id" validate:"required"`
}

type CodeResponseDTO struct {
	Code           string `json:"code" example:"CX2MR"`
	AccessCount    int    `json:"access_count" example:"1"`
	MaxAccessCount int    `json:"max_access_count" example:"3"`
}

type StatusResponseDTO struct {
	AccountID       int        `json:"account_id" example:"1"`
	Rented          bool       `json:"rented" example:"true"`
	Owner           string     `json:"owner,omitempty" example:"customer-1"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" example:"2020-12-09T16:09:57+03:00"`
	AccessRemaining int        `json:"access_remaining" example:"2"`
}

type ExtendRequestDTO struct {
	DeltaHours int `json:"delta_hours" validate:"required" example:"1"`
}

type ExtendResponseDTO struct {
	Message string `json:"message"`
}

type ReviewRequestDTO struct {
	ReviewerID string `json:"reviewer_id" validate:"required"`
	Retracted  bool   `json:"retracted" example:"false"`
}

type ReviewResponseDTO struct {
	Message string `json:"message"`
}
