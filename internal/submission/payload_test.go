package submission

import (
	"strings"
	"testing"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBuildPayload_FlattensSessionState(t *testing.T) {
	sessionID := uuid.New()
	pkg := catalog.Package{
		ID: "pkg-1",
		Components: []catalog.Component{
			{ID: "cat", Included: true},
			{ID: "photo", Included: false},
			{ID: "coord", Included: true},
		},
	}
	venue := &catalog.Venue{ID: "venue-1", Title: "Grand Hall", Price: d("40000")}
	customs := []catalog.CustomInclusion{{ID: "cust-1", Name: "Photo booth", Price: d("8000"), Category: catalog.CategoryOther}}
	budget := pricing.Budget{Total: d("148000")}

	plan := payments.NewPlan(d("148000"), d("3000"))
	if err := plan.SetScheduleType(payments.ScheduleHalf); err != nil {
		t.Fatalf("SetScheduleType: %v", err)
	}
	record, err := plan.RecordPayment(payments.MethodGCash, "GC-123456")
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	payload, err := BuildPayload(sessionID, pkg, venue, customs, nil, budget, plan)
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}

	if payload.SessionID != sessionID.String() {
		t.Errorf("SessionID = %s, want %s", payload.SessionID, sessionID)
	}
	if payload.PackageID != "pkg-1" || payload.VenueID != "venue-1" {
		t.Errorf("ids = %s/%s, want pkg-1/venue-1", payload.PackageID, payload.VenueID)
	}
	if got, want := payload.ComponentIDs, []string{"cat", "coord"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ComponentIDs = %v, want %v", got, want)
	}
	if len(payload.RemovedComponentIDs) != 1 || payload.RemovedComponentIDs[0] != "photo" {
		t.Errorf("RemovedComponentIDs = %v, want [photo]", payload.RemovedComponentIDs)
	}
	if !payload.TotalBudget.Equal(d("148000")) {
		t.Errorf("TotalBudget = %s, want 148000", payload.TotalBudget)
	}
	if payload.ScheduleType != "half" || payload.Percentage != 50 {
		t.Errorf("schedule = %s/%v, want half/50", payload.ScheduleType, payload.Percentage)
	}
	if !payload.DownPayment.Equal(d("74000")) || !payload.Balance.Equal(d("74000")) {
		t.Errorf("split = %s/%s, want 74000/74000", payload.DownPayment, payload.Balance)
	}
	if !payload.CashBondRequired || payload.CashBondStatus != "pending" || !payload.CashBondAmount.Equal(d("3000")) {
		t.Errorf("bond = %v/%s/%s, want required pending 3000",
			payload.CashBondRequired, payload.CashBondStatus, payload.CashBondAmount)
	}
	if len(payload.Payments) != 1 || payload.Payments[0].Reference != record.Reference {
		t.Errorf("Payments = %v, want the recorded gcash payment", payload.Payments)
	}
	if payload.SubmittedAt.IsZero() {
		t.Error("SubmittedAt is zero")
	}
}

func TestBuildPayload_NoVenue(t *testing.T) {
	payload, err := BuildPayload(uuid.New(), catalog.Package{ID: "pkg-1"}, nil, nil, nil,
		pricing.Budget{Total: d("50000")}, payments.NewPlan(d("50000"), d("3000")))
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	if payload.VenueID != "" {
		t.Errorf("VenueID = %s, want empty", payload.VenueID)
	}
}

func TestNewBookingRef_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		ref, err := NewBookingRef()
		if err != nil {
			t.Fatalf("NewBookingRef: %v", err)
		}
		parts := strings.Split(ref, "-")
		if len(parts) != 3 || parts[0] != "BKG" || len(parts[1]) != 8 || len(parts[2]) != 6 {
			t.Fatalf("ref = %s, want BKG-YYYYMMDD-XXXXXX", ref)
		}
		seen[ref] = true
	}
	if len(seen) < 2 {
		t.Error("booking references are not unique")
	}
}
