package dto

import "github.com/dresslab/dresslab-api/internal/model"

// ProfileUpdateInput covers PUT/PATCH on the /profiles endpoints: account
// fields at the top level plus an optional nested body-profile patch.
type ProfileUpdateInput struct {
	AccountPatch
	BodyProfile *BodyProfilePatch `json:"body_profile"`
}

type ProfileResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Account     *model.Account       `json:"account"`
	BodyProfile *BodyProfileResponse `json:"body_profile"`
}

type DeletedAccount struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
