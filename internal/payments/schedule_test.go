package payments

import (
	"testing"

	"festiva/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestPlan(total string) Plan {
	return NewPlan(d(total), d("3000"))
}

func assertConsistent(t *testing.T, p Plan) {
	t.Helper()
	if !p.DownPayment.Add(p.Balance).Equal(p.Total) {
		t.Fatalf("down payment %s + balance %s != total %s", p.DownPayment, p.Balance, p.Total)
	}
}

func TestNewPlan_DefaultsToFullPayment(t *testing.T) {
	p := newTestPlan("180000")

	if p.ScheduleType != ScheduleFull {
		t.Fatalf("ScheduleType = %s, want full", p.ScheduleType)
	}
	if !p.DownPayment.Equal(d("180000")) || !p.Balance.IsZero() {
		t.Fatalf("DownPayment/Balance = %s/%s, want 180000/0", p.DownPayment, p.Balance)
	}
	assertConsistent(t, p)
}

func TestSetScheduleType_HalfSplitsEvenly(t *testing.T) {
	p := newTestPlan("180000")

	if err := p.SetScheduleType(ScheduleHalf); err != nil {
		t.Fatalf("SetScheduleType(half): %v", err)
	}
	if !p.DownPayment.Equal(d("90000")) || !p.Balance.Equal(d("90000")) {
		t.Fatalf("DownPayment/Balance = %s/%s, want 90000/90000", p.DownPayment, p.Balance)
	}
	assertConsistent(t, p)
}

func TestSetScheduleType_AppliesDefaultPercentages(t *testing.T) {
	cases := []struct {
		scheduleType ScheduleType
		wantPct      float64
		wantDown     string
	}{
		{ScheduleFull, 100, "100000"},
		{ScheduleHalf, 50, "50000"},
		{ScheduleMonthly, 30, "30000"},
		{ScheduleQuarterly, 25, "25000"},
	}
	for _, tc := range cases {
		p := newTestPlan("100000")
		if err := p.SetScheduleType(tc.scheduleType); err != nil {
			t.Fatalf("SetScheduleType(%s): %v", tc.scheduleType, err)
		}
		if p.Percentage != tc.wantPct {
			t.Errorf("%s: Percentage = %f, want %f", tc.scheduleType, p.Percentage, tc.wantPct)
		}
		if !p.DownPayment.Equal(d(tc.wantDown)) {
			t.Errorf("%s: DownPayment = %s, want %s", tc.scheduleType, p.DownPayment, tc.wantDown)
		}
		assertConsistent(t, p)
	}
}

func TestSetCustomPercentage_Recomputes(t *testing.T) {
	p := newTestPlan("180000")
	if err := p.SetScheduleType(ScheduleCustom); err != nil {
		t.Fatalf("SetScheduleType(custom): %v", err)
	}
	if err := p.SetCustomPercentage(30); err != nil {
		t.Fatalf("SetCustomPercentage(30): %v", err)
	}

	if !p.DownPayment.Equal(d("54000")) || !p.Balance.Equal(d("126000")) {
		t.Fatalf("DownPayment/Balance = %s/%s, want 54000/126000", p.DownPayment, p.Balance)
	}
	if p.ScheduleType != ScheduleCustom {
		t.Fatalf("ScheduleType = %s, want custom after percentage edit", p.ScheduleType)
	}
	assertConsistent(t, p)
}

func TestSetCustomPercentage_RejectsOutOfRange(t *testing.T) {
	p := newTestPlan("100000")
	if err := p.SetScheduleType(ScheduleCustom); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCustomPercentage(40); err != nil {
		t.Fatal(err)
	}

	for _, pct := range []float64{-1, 100.01, 500} {
		err := p.SetCustomPercentage(pct)
		ve, ok := apperrors.AsValidation(err)
		if !ok || ve.Code != apperrors.CodePercentageOutOfRange {
			t.Fatalf("SetCustomPercentage(%f) = %v, want percentage_out_of_range", pct, err)
		}
		if p.Percentage != 40 {
			t.Fatalf("Percentage = %f after rejected edit, want prior 40", p.Percentage)
		}
	}
}

func TestSetDownPayment_RejectsExceedingTotal(t *testing.T) {
	p := newTestPlan("100000")
	if err := p.SetDownPayment(d("25000")); err != nil {
		t.Fatal(err)
	}

	err := p.SetDownPayment(d("100001"))
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeDownPaymentExceedsTotal {
		t.Fatalf("SetDownPayment over total = %v, want down_payment_exceeds_total", err)
	}
	if !p.DownPayment.Equal(d("25000")) {
		t.Fatalf("DownPayment = %s after rejected edit, want prior 25000", p.DownPayment)
	}
	assertConsistent(t, p)
}

func TestSetDownPayment_RejectsNegative(t *testing.T) {
	p := newTestPlan("100000")
	if err := p.SetDownPayment(d("-1")); err == nil {
		t.Fatal("SetDownPayment(-1) = nil, want error")
	}
}

func TestRebase_ReclampsAfterBudgetDecrease(t *testing.T) {
	p := newTestPlan("180000")
	if err := p.SetScheduleType(ScheduleCustom); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCustomPercentage(30); err != nil {
		t.Fatal(err)
	}

	p.Rebase(d("100000"))

	if p.DownPayment.GreaterThan(p.Total) {
		t.Fatalf("DownPayment %s exceeds rebased total %s", p.DownPayment, p.Total)
	}
	if !p.DownPayment.Equal(d("30000")) {
		t.Fatalf("DownPayment = %s, want 30000 at 30%% of 100000", p.DownPayment)
	}
	assertConsistent(t, p)
}

func TestRecordPayment_RequiresReferenceForDigitalMethods(t *testing.T) {
	p := newTestPlan("100000")

	for _, method := range []PaymentMethod{MethodGCash, MethodBankTransfer} {
		_, err := p.RecordPayment(method, "")
		ve, ok := apperrors.AsValidation(err)
		if !ok || ve.Code != apperrors.CodeReferenceRequired {
			t.Fatalf("RecordPayment(%s, \"\") = %v, want reference_required", method, err)
		}
	}
	if len(p.Payments) != 0 {
		t.Fatalf("len(Payments) = %d after rejected records, want 0", len(p.Payments))
	}

	record, err := p.RecordPayment(MethodCash, "")
	if err != nil {
		t.Fatalf("RecordPayment(cash, \"\"): %v", err)
	}
	if !record.Amount.Equal(p.DownPayment) {
		t.Fatalf("record.Amount = %s, want down payment %s", record.Amount, p.DownPayment)
	}

	if _, err := p.RecordPayment(MethodGCash, "GC-12345"); err != nil {
		t.Fatalf("RecordPayment(gcash, ref): %v", err)
	}
	if len(p.Payments) != 2 {
		t.Fatalf("len(Payments) = %d, want 2", len(p.Payments))
	}
}

func TestRecordPayment_RejectsUnknownMethod(t *testing.T) {
	p := newTestPlan("100000")
	if _, err := p.RecordPayment(PaymentMethod("paypal"), "X"); err == nil {
		t.Fatal("RecordPayment(paypal) = nil, want error")
	}
}

func TestCashBond_LifecycleAndDisplayAmount(t *testing.T) {
	p := newTestPlan("180000")
	if err := p.SetScheduleType(ScheduleCustom); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCustomPercentage(30); err != nil {
		t.Fatal(err)
	}

	p.Bond.Required = true
	if !p.Bond.DisplayAmount().Equal(d("3000")) {
		t.Fatalf("DisplayAmount = %s, want deposit 3000", p.Bond.DisplayAmount())
	}

	if err := p.Bond.SetStatus(BondPaid); err != nil {
		t.Fatalf("SetStatus(paid): %v", err)
	}
	if err := p.Bond.FileDamageClaim("broken sound equipment", d("1500")); err != nil {
		t.Fatalf("FileDamageClaim: %v", err)
	}

	if p.Bond.Status != BondClaimed {
		t.Fatalf("Status = %s, want claimed", p.Bond.Status)
	}
	if !p.Bond.DisplayAmount().Equal(d("1500")) {
		t.Fatalf("DisplayAmount = %s, want damage amount 1500", p.Bond.DisplayAmount())
	}

	// the bond never touches the schedule
	if !p.Total.Equal(d("180000")) || !p.DownPayment.Equal(d("54000")) || !p.Balance.Equal(d("126000")) {
		t.Fatalf("Total/DownPayment/Balance = %s/%s/%s, want 180000/54000/126000",
			p.Total, p.DownPayment, p.Balance)
	}
}

func TestCashBond_ClaimRequiresDamageRecord(t *testing.T) {
	bond := NewCashBond(d("3000"))

	err := bond.SetStatus(BondClaimed)
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeDamageRecordRequired {
		t.Fatalf("SetStatus(claimed) without damage = %v, want damage_record_required", err)
	}
	if bond.Status != BondPending {
		t.Fatalf("Status = %s after rejected transition, want pending", bond.Status)
	}
}

func TestCashBond_RejectsEmptyDamageClaim(t *testing.T) {
	bond := NewCashBond(d("3000"))

	if err := bond.FileDamageClaim("", d("1500")); err == nil {
		t.Fatal("FileDamageClaim with empty description = nil, want error")
	}
	if err := bond.FileDamageClaim("scratched floor", d("0")); err == nil {
		t.Fatal("FileDamageClaim with zero amount = nil, want error")
	}
}
