package models

import "time"

// VaultListResponse is returned by the owner listing endpoint.
type VaultListResponse struct {
	Owner   OwnerID `json:"owner"`
	Numbers []int   `json:"numbers"`
}

// VaultResponse describes a single vault. Slots is omitted when the vault
// does not exist.
type VaultResponse struct {
	Owner  OwnerID      `json:"owner"`
	Number int          `json:"number"`
	Exists bool         `json:"exists"`
	Size   int          `json:"size,omitempty"`
	Slots  []*SlotStack `json:"slots,omitempty"`
}

// SaveFailure is one entry of the persistence failure journal.
type SaveFailure struct {
	ID         string    `json:"id"`
	Owner      OwnerID   `json:"owner"`
	Stage      string    `json:"stage"`
	Structural bool      `json:"structural"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FailuresResponse is returned by the diagnostics endpoint.
type FailuresResponse struct {
	Failures []SaveFailure `json:"failures"`
	Length   int           `json:"length"`
}

// OpenViewRequest is the body of the host-bridge open call.
type OpenViewRequest struct {
	Owner  string `json:"owner"`
	Number int    `json:"number"`
	Size   int    `json:"size"`
}

// JoinRequest is the body of the host-bridge join call.
type JoinRequest struct {
	Owner string `json:"owner"`
}

// OpenViewResponse returns the live contents after a view was opened.
type OpenViewResponse struct {
	Vault   VaultIdentity `json:"vault"`
	Viewers int           `json:"viewers"`
	Slots   []*SlotStack  `json:"slots"`
}

// MutationRequest is the body of the host-bridge mutation call.
type MutationRequest struct {
	Kind        string      `json:"kind"`
	Slot        int         `json:"slot"`
	Stack       *SlotStack  `json:"stack"`
	Involved    []SlotStack `json:"involved,omitempty"`
	Permissions []string    `json:"permissions,omitempty"`
}

// DecisionResponse reports whether a host action is allowed.
type DecisionResponse struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons,omitempty"`
}

// RelocationRequest is the body of the host-bridge relocation call.
type RelocationRequest struct {
	Cause string `json:"cause"`
}

// SaveResponse reports what a lifecycle notification did.
type SaveResponse struct {
	Outcome string `json:"outcome"`
}

// RelocationResponse tells the host whether it must close the session's view.
// The host reports the close through the close notification, which saves.
type RelocationResponse struct {
	CloseView bool `json:"close_view"`
}

// InteractionRequest is the body of the host-bridge entity interaction call.
type InteractionRequest struct {
	Entity string `json:"entity"`
}

// SaveStateResponse reports the save guard of a session.
type SaveStateResponse struct {
	Session SessionID `json:"session"`
	State   string    `json:"state"`
}
