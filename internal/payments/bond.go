package payments

import (
	"fmt"

	"festiva/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

// DamageClaim records damage filed against a cash bond
type DamageClaim struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashBond is a refundable security deposit tracked separately from the
// event's contracted total. It never enters the total, down payment or
// balance.
type CashBond struct {
	Required bool            `json:"required"`
	Status   BondStatus      `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Damage   *DamageClaim    `json:"damage,omitempty"`
}

// NewCashBond creates a pending bond for the configured deposit amount
func NewCashBond(amount decimal.Decimal) CashBond {
	return CashBond{
		Required: true,
		Status:   BondPending,
		Amount:   amount,
	}
}

// SetStatus moves the bond to a new status. Transitioning to claimed is
// only possible through FileDamageClaim, which supplies the damage record.
func (b *CashBond) SetStatus(status BondStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidation(apperrors.CodeInvalidStatus, "cash_bond.status",
			fmt.Sprintf("unknown bond status %q", status))
	}
	if status == BondClaimed && b.Damage == nil {
		return apperrors.NewValidation(apperrors.CodeDamageRecordRequired, "cash_bond.damage",
			"claiming a bond requires a damage record")
	}
	b.Status = status
	return nil
}

// FileDamageClaim records damage against the bond and marks it claimed
func (b *CashBond) FileDamageClaim(description string, amount decimal.Decimal) error {
	if description == "" {
		return apperrors.NewValidation(apperrors.CodeDamageRecordRequired, "cash_bond.damage.description",
			"damage description must not be empty")
	}
	if !amount.IsPositive() {
		return apperrors.NewValidation(apperrors.CodeDamageRecordRequired, "cash_bond.damage.amount",
			"damage amount must be positive")
	}
	b.Damage = &DamageClaim{Description: description, Amount: amount}
	b.Status = BondClaimed
	return nil
}

// DisplayAmount is the bond-related amount shown to the user: the damage
// amount while claimed, the deposit amount otherwise.
func (b *CashBond) DisplayAmount() decimal.Decimal {
	if b.Status == BondClaimed && b.Damage != nil {
		return b.Damage.Amount
	}
	return b.Amount
}
