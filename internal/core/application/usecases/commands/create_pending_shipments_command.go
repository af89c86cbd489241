package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreatePendingShipmentsCommandIsNotConstructed = errors.New(
	"CreatePendingShipmentsCommand must be created via NewCreatePendingShipmentsCommand constructor",
)

// CreatePendingShipmentsCommand creates shipments for packed orders that have none yet,
// at most limit per run.
type CreatePendingShipmentsCommand struct {
	limit int

	guard guard.ConstructorGuard
}

func NewCreatePendingShipmentsCommand(limit int) (CreatePendingShipmentsCommand, error) {
	if limit <= 0 {
		return CreatePendingShipmentsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	return CreatePendingShipmentsCommand{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePendingShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrCreatePendingShipmentsCommandIsNotConstructed)
}

func (c CreatePendingShipmentsCommand) Limit() int {
	return c.limit
}
