package rentalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/internal/domain"
	accountrepo "github.com/ESChernov/steamrent/internal/repo/account-repo"
)

//go:generate mockgen -source=rentalservice.go -destination=mock_rentalservice.go -package=rentalservice

type AccountRepo interface {
	Claim(ctx context.Context, accountID int, owner string, startedAt time.Time) (bool, error)
	Release(ctx context.Context, accountID int) error
	ExtendDuration(ctx context.Context, accountID int, deltaHours int) (bool, error)
	IncrementAccess(ctx context.Context, accountID int, owner string, at time.Time) (int, int, error)
	UpdatePassword(ctx context.Context, accountID int, password string) error
	GetByID(ctx context.Context, accountID int) (*domain.AccountRecord, error)
	FindActiveByOwner(ctx context.Context, owner string) (*domain.AccountRecord, error)
	ListNames(ctx context.Context) ([]string, error)
	ListUnownedByName(ctx context.Context, accountName string) ([]domain.AccountRecord, error)
	ListOwned(ctx context.Context) ([]domain.AccountRecord, error)
}

type ActivityRepo interface {
	RecordPurchase(ctx context.Context, owner string, accountID int, at time.Time) error
	RecordAccess(ctx context.Context, owner string, accountID int) error
	RecordExtension(ctx context.Context, owner string, accountID int, hours int) error
	RecordFeedback(ctx context.Context, owner string, rating string) error
}

// CodeSource generates a Guard code from the credential bundle at the given
// path.
type CodeSource interface {
	CodeFor(ctx context.Context, bundlePath string) (string, error)
}

// Notifier delivers a message to a renter or, for OperatorRecipient, to the
// operator. Send failures never roll back a state transition.
type Notifier interface {
	Send(ctx context.Context, recipient string, message string) error
}

// Rotator changes the Steam password of the account behind the credential
// bundle and returns the new one.
type Rotator interface {
	Rotate(ctx context.Context, bundlePath string, oldPassword string) (string, error)
}

// OperatorRecipient is the reserved recipient id for operator alerts.
const OperatorRecipient = "operator"

var (
	ErrNoStock    = errors.New("no matching accounts available")
	ErrNotFound   = errors.New("account not found")
	ErrNotOwner   = errors.New("account is not rented by this user")
	ErrExpired    = errors.New("rental period is over")
	ErrCapReached = errors.New("code request limit reached for this rental")
)

type Options struct {
	BonusHours      int
	RotationTimeout time.Duration
}

type Service struct {
	accounts AccountRepo
	activity ActivityRepo
	codes    CodeSource
	notifier Notifier
	rotator  Rotator

	bonusHours      int
	rotationTimeout time.Duration
	now             func() time.Time
}

func New(accounts AccountRepo, activity ActivityRepo, codes CodeSource, notifier Notifier, rotator Rotator, opts Options) *Service {
	bonus := opts.BonusHours
	if bonus <= 0 {
		bonus = 1
	}
	rotationTimeout := opts.RotationTimeout
	if rotationTimeout <= 0 {
		rotationTimeout = 30 * time.Second
	}
	return &Service{
		accounts:        accounts,
		activity:        activity,
		codes:           codes,
		notifier:        notifier,
		rotator:         rotator,
		bonusHours:      bonus,
		rotationTimeout: rotationTimeout,
		now:             time.Now,
	}
}

type ClaimedAccount struct {
	AccountID int
	Login     string
	Password  string
	Code      string
	ExpiresAt time.Time
}

type ClaimResult struct {
	AccountName string
	Requested   int
	Claimed     []ClaimedAccount
}

// ClaimForOrder matches the order description against the catalog and claims
// up to quantity unowned accounts for the buyer. A claim race lost on one
// record moves on to the next, never retrying the same row. Partial stock is
// reported, not silently dropped: the result carries requested vs claimed
// counts and the buyer is told about the shortfall.
func (s *Service) ClaimForOrder(ctx context.Context, buyerID string, orderDescription string, quantity int) (*ClaimResult, error) {
	if quantity <= 0 {
		quantity = 1
	}

	names, err := s.accounts.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	name, ok := MatchName(orderDescription, names)
	if !ok {
		zap.L().Info("no catalog entry matches order", zap.String("buyer", buyerID), zap.String("description", orderDescription))
		s.send(ctx, buyerID, "Sorry, no accounts match your order. Please contact the operator.")
		return nil, ErrNoStock
	}

	candidates, err := s.accounts.ListUnownedByName(ctx, name)
	if err != nil {
		return nil, err
	}

	result := &ClaimResult{AccountName: name, Requested: quantity}
	startedAt := s.now()

	for _, account := range candidates {
		if len(result.Claimed) == quantity {
			break
		}

		claimed, err := s.accounts.Claim(ctx, account.ID, buyerID, startedAt)
		if err != nil {
			return nil, err
		}
		if !claimed {
			// lost the race, try the next record
			zap.L().Info("claim race lost", zap.Int("accountID", account.ID), zap.String("buyer", buyerID))
			continue
		}

		grant := ClaimedAccount{
			AccountID: account.ID,
			Login:     account.Login,
			Password:  account.Password,
			ExpiresAt: startedAt.Add(time.Duration(account.RentalDuration) * time.Hour),
		}

		code, err := s.codes.CodeFor(ctx, account.SecretBundlePath)
		if err != nil {
			zap.L().Error("can't generate code for claimed account", zap.Int("accountID", account.ID), zap.Error(err))
			s.send(ctx, OperatorRecipient, fmt.Sprintf("Account %d (%s): code generation failed: %v", account.ID, account.AccountName, err))
		} else {
			grant.Code = code
		}

		s.send(ctx, buyerID, welcomeMessage(&account, grant))

		if err := s.activity.RecordPurchase(ctx, buyerID, account.ID, startedAt); err != nil {
			zap.L().Warn("can't record purchase activity", zap.Error(err))
		}

		result.Claimed = append(result.Claimed, grant)
	}

	if len(result.Claimed) == 0 {
		s.send(ctx, buyerID, fmt.Sprintf("Sorry, %q is out of stock. Please contact the operator for a refund.", name))
		return nil, ErrNoStock
	}
	if len(result.Claimed) < quantity {
		s.send(ctx, buyerID, fmt.Sprintf(
			"Only %d of %d %q accounts were available. Please contact the operator about the remaining %d.",
			len(result.Claimed), quantity, name, quantity-len(result.Claimed)))
		s.send(ctx, OperatorRecipient, fmt.Sprintf(
			"Order from %s partially fulfilled: %d of %d %q accounts claimed.",
			buyerID, len(result.Claimed), quantity, name))
	}

	return result, nil
}

type CodeGrant struct {
	Code           string
	AccessCount    int
	MaxAccessCount int
}

// RequestCode verifies access and returns a fresh Guard code. Every code
// request consumes one access-cap slot: access is counted per retrieval of
// secret material, code and credentials alike.
func (s *Service) RequestCode(ctx context.Context, accountID int, requesterID string) (*CodeGrant, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(account, requesterID); err != nil {
		return nil, err
	}

	code, err := s.codes.CodeFor(ctx, account.SecretBundlePath)
	if err != nil {
		zap.L().Error("can't generate code", zap.Int("accountID", accountID), zap.Error(err))
		s.send(ctx, OperatorRecipient, fmt.Sprintf("Account %d (%s): code generation failed: %v", account.ID, account.AccountName, err))
		return nil, err
	}

	accessCount, maxAccessCount, err := s.accounts.IncrementAccess(ctx, accountID, requesterID, s.now())
	if err != nil {
		if errors.Is(err, accountrepo.ErrNotUpdated) {
			return nil, ErrCapReached
		}
		return nil, err
	}

	if err := s.activity.RecordAccess(ctx, requesterID, accountID); err != nil {
		zap.L().Warn("can't record access activity", zap.Error(err))
	}

	return &CodeGrant{Code: code, AccessCount: accessCount, MaxAccessCount: maxAccessCount}, nil
}

// CanAccess reports whether requesterID may fetch a code for the account,
// without mutating any state. The returned error carries the specific
// refusal reason.
func (s *Service) CanAccess(ctx context.Context, accountID int, requesterID string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	return s.checkAccess(account, requesterID)
}

func (s *Service) checkAccess(account *domain.AccountRecord, requesterID string) error {
	if account == nil {
		return ErrNotFound
	}
	if !account.Rented() || *account.Owner != requesterID {
		return ErrNotOwner
	}
	if account.Expired(s.now()) {
		return ErrExpired
	}
	if account.AccessCount >= account.MaxAccessCount {
		return ErrCapReached
	}
	return nil
}

// HandleReview applies the review bonus to the reviewer's most recent active
// rental, or takes it back when the review was retracted.
func (s *Service) HandleReview(ctx context.Context, reviewerID string, retracted bool) error {
	account, err := s.accounts.FindActiveByOwner(ctx, reviewerID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrNotFound
	}

	delta := s.bonusHours
	if retracted {
		delta = -delta
	}

	extended, err := s.accounts.ExtendDuration(ctx, account.ID, delta)
	if err != nil {
		return err
	}
	if !extended {
		return ErrNotFound
	}

	if retracted {
		s.send(ctx, reviewerID, fmt.Sprintf("Your review was retracted: %d bonus hour(s) removed from the rental.", s.bonusHours))
	} else {
		s.send(ctx, reviewerID, fmt.Sprintf("Thanks for the review! %d bonus hour(s) added to your rental.", s.bonusHours))
	}
	s.send(ctx, OperatorRecipient, fmt.Sprintf("Review from %s: rental %d adjusted by %+d hour(s).", reviewerID, account.ID, delta))

	if err := s.activity.RecordExtension(ctx, reviewerID, account.ID, delta); err != nil {
		zap.L().Warn("can't record extension activity", zap.Error(err))
	}
	rating := "positive"
	if retracted {
		rating = "retracted"
	}
	if err := s.activity.RecordFeedback(ctx, reviewerID, rating); err != nil {
		zap.L().Warn("can't record feedback activity", zap.Error(err))
	}

	return nil
}

// ExtendRental is the operator-driven duration adjustment.
func (s *Service) ExtendRental(ctx context.Context, accountID int, deltaHours int) (bool, error) {
	extended, err := s.accounts.ExtendDuration(ctx, accountID, deltaHours)
	if err != nil || !extended {
		return false, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err == nil && account != nil && account.Rented() {
		s.send(ctx, *account.Owner, fmt.Sprintf("Your rental was adjusted by %+d hour(s). It now ends at %s.",
			deltaHours, account.ExpiresAt().Format(time.RFC3339)))
		if err := s.activity.RecordExtension(ctx, *account.Owner, accountID, deltaHours); err != nil {
			zap.L().Warn("can't record extension activity", zap.Error(err))
		}
	}
	return true, nil
}

type RentalStatus struct {
	AccountID       int
	Rented          bool
	Owner           string
	ExpiresAt       time.Time
	AccessRemaining int
}

func (s *Service) GetRentalStatus(ctx context.Context, accountID int) (*RentalStatus, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	status := &RentalStatus{AccountID: account.ID}
	if account.Rented() {
		status.Rented = true
		status.Owner = *account.Owner
		status.ExpiresAt = account.ExpiresAt()
		status.AccessRemaining = account.MaxAccessCount - account.AccessCount
		if status.AccessRemaining < 0 {
			status.AccessRemaining = 0
		}
	}
	return status, nil
}

// ExpireDue reclaims every rental whose window has elapsed. Per-record
// failures are logged and the scan continues; a released record never shows
// up in the next scan, which makes the transition idempotent.
func (s *Service) ExpireDue(ctx context.Context) error {
	accounts, err := s.accounts.ListOwned(ctx)
	if err != nil {
		zap.L().Error("can't list rented accounts for expiry scan", zap.Error(err))
		return err
	}

	now := s.now()
	for _, account := range accounts {
		account := account
		if !account.Expired(now) {
			continue
		}
		if err := s.expireOne(ctx, &account); err != nil {
			zap.L().Error("can't expire rental", zap.Int("accountID", account.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) expireOne(ctx context.Context, account *domain.AccountRecord) error {
	owner := *account.Owner

	rotateCtx, cancel := context.WithTimeout(ctx, s.rotationTimeout)
	newPassword, rotateErr := s.rotator.Rotate(rotateCtx, account.SecretBundlePath, account.Password)
	cancel()

	// the rental must never be held past expiry, even when rotation failed
	if err := s.accounts.Release(ctx, account.ID); err != nil {
		return err
	}

	if rotateErr != nil {
		zap.L().Error("password rotation failed", zap.Int("accountID", account.ID), zap.Error(rotateErr))
		s.send(ctx, OperatorRecipient, fmt.Sprintf(
			"MANUAL INTERVENTION: rental %d (%s) released but password rotation failed: %v",
			account.ID, account.AccountName, rotateErr))
	} else {
		if err := s.accounts.UpdatePassword(ctx, account.ID, newPassword); err != nil {
			zap.L().Error("can't persist rotated password", zap.Int("accountID", account.ID), zap.Error(err))
			s.send(ctx, OperatorRecipient, fmt.Sprintf(
				"MANUAL INTERVENTION: rental %d (%s) rotated but the new password was not saved: %s",
				account.ID, account.AccountName, newPassword))
		} else {
			s.send(ctx, OperatorRecipient, fmt.Sprintf(
				"Rental %d (%s) expired. New password: %s", account.ID, account.AccountName, newPassword))
		}
	}

	s.send(ctx, owner, fmt.Sprintf("Your rental of %q has ended. Thank you!", account.AccountName))
	return nil
}

// send delivers a notification without letting a failure escape: delivery
// problems are logged and the state transition stands.
func (s *Service) send(ctx context.Context, recipient string, message string) {
	if err := s.notifier.Send(ctx, recipient, message); err != nil {
		zap.L().Warn("can't send notification", zap.String("recipient", recipient), zap.Error(err))
	}
}

func welcomeMessage(account *domain.AccountRecord, grant ClaimedAccount) string {
	msg := fmt.Sprintf(
		"Your rental of %q is ready.\nLogin: %s\nPassword: %s\nRental ends at %s.",
		account.AccountName, grant.Login, grant.Password, grant.ExpiresAt.Format(time.RFC3339))
	if grant.Code != "" {
		msg += fmt.Sprintf("\nSteam Guard code: %s", grant.Code)
	} else {
		msg += "\nSteam Guard code is temporarily unavailable, request one with /code."
	}
	return msg
}
