package payments

// ScheduleType is the named payment-split policy
type ScheduleType string

const (
	ScheduleFull      ScheduleType = "full"
	ScheduleHalf      ScheduleType = "half"
	ScheduleMonthly   ScheduleType = "monthly"
	ScheduleQuarterly ScheduleType = "quarterly"
	ScheduleCustom    ScheduleType = "custom"
)

// IsValid checks if the schedule type is valid
func (t ScheduleType) IsValid() bool {
	switch t {
	case ScheduleFull, ScheduleHalf, ScheduleMonthly, ScheduleQuarterly, ScheduleCustom:
		return true
	}
	return false
}

// String returns the string representation of ScheduleType
func (t ScheduleType) String() string {
	return string(t)
}

// DefaultPercentage returns the down-payment percentage that selecting this
// schedule type applies. Custom has no default, the user supplies one.
func (t ScheduleType) DefaultPercentage() (float64, bool) {
	switch t {
	case ScheduleFull:
		return 100, true
	case ScheduleHalf:
		return 50, true
	case ScheduleMonthly:
		return 30, true
	case ScheduleQuarterly:
		return 25, true
	}
	return 0, false
}

// BondStatus tracks the cash-bond sub-ledger state
type BondStatus string

const (
	BondPending  BondStatus = "pending"
	BondPaid     BondStatus = "paid"
	BondClaimed  BondStatus = "claimed"
	BondRefunded BondStatus = "refunded"
)

// IsValid checks if the bond status is valid
func (s BondStatus) IsValid() bool {
	switch s {
	case BondPending, BondPaid, BondClaimed, BondRefunded:
		return true
	}
	return false
}

// String returns the string representation of BondStatus
func (s BondStatus) String() string {
	return string(s)
}

// PaymentMethod identifies how a down payment was made
type PaymentMethod string

const (
	MethodGCash        PaymentMethod = "gcash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodGCash, MethodBankTransfer, MethodCash:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// RequiresReference reports whether recording a payment with this method
// needs a non-empty reference number
func (m PaymentMethod) RequiresReference() bool {
	return m == MethodGCash || m == MethodBankTransfer
}
