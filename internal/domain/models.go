package domain

import "time"

// OtherAccountOwner is the sentinel stored in the owner column of sibling
// rows that share a Steam login with a rented account. Such rows cannot be
// claimed until the genuine rental ends.
const OtherAccountOwner = "OTHER_ACCOUNT"

type AccountRecord struct {
	ID               int        `db:"id"`
	AccountName      string     `db:"account_name"`
	Login            string     `db:"login"`
	Password         string     `db:"password"`
	SecretBundlePath string     `db:"secret_bundle_path"`
	RentalDuration   int        `db:"rental_duration"`
	Owner            *string    `db:"owner"`
	RentalStart      *time.Time `db:"rental_start"`
	AccessCount      int        `db:"access_count"`
	MaxAccessCount   int        `db:"max_access_count"`
	LastAccess       *time.Time `db:"last_access"`
}

// Rented reports whether the record is held by a real renter, as opposed to
// being free or blocked by the sibling sentinel.
func (a *AccountRecord) Rented() bool {
	return a.Owner != nil && *a.Owner != OtherAccountOwner && a.RentalStart != nil
}

func (a *AccountRecord) ExpiresAt() time.Time {
	if a.RentalStart == nil {
		return time.Time{}
	}
	return a.RentalStart.Add(time.Duration(a.RentalDuration) * time.Hour)
}

func (a *AccountRecord) Expired(now time.Time) bool {
	return a.Rented() && !now.Before(a.ExpiresAt())
}

type CustomerActivity struct {
	ID             int       `db:"id"`
	Owner          string    `db:"owner"`
	AccountID      int       `db:"account_id"`
	PurchasedAt    time.Time `db:"purchased_at"`
	AccessCount    int       `db:"access_count"`
	ExtensionHours int       `db:"extension_hours"`
	Rating         *string   `db:"rating"`
}
