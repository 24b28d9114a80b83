// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
)

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
