// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"errors"

	"github.com/canonical/voluntold-service/internal/types"
)

const (
	NoAccessMessage       = "If an account exists for this email, you will receive access instructions shortly."
	SelectMessage         = "Choose how you want to sign in."
	AdminRedirectMessage  = "Continue to the administrator sign-in page."
	GenericFailureMessage = "We could not complete your sign-in right now, please try again later."
)

var ErrDispatchFailed = errors.New("sign-in dispatch failed")

type DecisionKind int

const (
	NoAccess DecisionKind = iota
	SingleOption
	MultipleOptions
)

// Decision is the routing step computed from an access summary.
type Decision struct {
	Kind    DecisionKind
	Option  *types.AccessOption
	Options []*types.AccessOption
}

type Outcome string

const (
	OutcomeNoAccess      Outcome = "no_access"
	OutcomeSelect        Outcome = "select"
	OutcomeAdminRedirect Outcome = "admin_redirect"
	OutcomeLinkSent      Outcome = "link_sent"
)

type Result struct {
	Success     bool                  `json:"success"`
	Outcome     Outcome               `json:"outcome"`
	Message     string                `json:"message"`
	RedirectURL string                `json:"redirectUrl,omitempty"`
	Options     []*types.AccessOption `json:"options,omitempty"`
}

func noAccessResult() *Result {
	return &Result{Success: true, Outcome: OutcomeNoAccess, Message: NoAccessMessage}
}
