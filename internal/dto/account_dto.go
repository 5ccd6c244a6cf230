package dto

import "github.com/dresslab/dresslab-api/pkg/jsonx"

// AccountPatch is a partial account update. Only keys present in the payload
// are applied; a present null (or empty string) clears the field.
type AccountPatch struct {
	FirstName   jsonx.String `json:"first_name"`
	LastName    jsonx.String `json:"last_name"`
	Phone       jsonx.String `json:"phone"`
	AccountType jsonx.String `json:"account_type"`
}
