package guard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrBadBundle marks a missing or malformed credential bundle. It blocks all
// future code generation for the account, so callers must alert the operator
// instead of retrying.
var ErrBadBundle = errors.New("bad credential bundle")

// SecretBundle is the maFile-style credential bundle stored next to each
// account: the shared secret for Guard codes plus the identity material the
// password-rotation automation needs.
type SecretBundle struct {
	AccountName    string `json:"account_name"`
	SharedSecret   string `json:"shared_secret"`
	IdentitySecret string `json:"identity_secret"`
	DeviceID       string `json:"device_id"`
}

func LoadBundle(path string) (*SecretBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBundle, err)
	}

	var bundle SecretBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBundle, err)
	}
	if bundle.SharedSecret == "" {
		return nil, fmt.Errorf("%w: shared_secret is missing in %s", ErrBadBundle, path)
	}
	return &bundle, nil
}
