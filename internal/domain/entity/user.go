package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the slice of the identity subsystem the catalog needs: an
// identifier and a non-negative balance. The balance is consulted for
// affordability checks and never mutated by the domain model.
type User struct {
	ID       uuid.UUID
	UserName string
	Balance  decimal.Decimal
}

// CanAfford reports whether the balance covers the given price. The
// insufficient funds state is the strict complement: balance < price.
func (u *User) CanAfford(price decimal.Decimal) bool {
	return !u.Balance.LessThan(price)
}
