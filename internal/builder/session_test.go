package builder

import (
	"sync"
	"testing"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func testPackage() *catalog.Package {
	nominal := d("100000")
	return &catalog.Package{
		ID:           "pkg-1",
		Title:        "Classic Wedding",
		NominalPrice: &nominal,
		Components: []catalog.Component{
			{ID: "cat", Name: "Catering", Price: d("50000"), Category: catalog.CategoryCatering, Source: catalog.SourceCatalog, Included: true, Removable: true},
			{ID: "photo", Name: "Photography", Price: d("30000"), Category: catalog.CategoryPhotography, Source: catalog.SourceCatalog, Included: true, Removable: true},
			{ID: "coord", Name: "Coordination", Price: d("20000"), Category: catalog.CategoryCoordination, Source: catalog.SourceCatalog, Included: true, Removable: false},
		},
	}
}

func testVenue() *catalog.Venue {
	return &catalog.Venue{
		ID:    "venue-1",
		Title: "Grand Hall",
		Price: d("40000"),
		Inclusions: []catalog.VenueInclusion{
			{Name: "Sound system", Price: d("10000")},
			{Name: "Basic lighting", Price: d("5000")},
		},
	}
}

func TestNewSession_DerivesTotalsAndPlan(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))

	if !s.Derived.Budget.Total.Equal(d("100000")) {
		t.Fatalf("Total = %s, want 100000", s.Derived.Budget.Total)
	}
	if !s.Plan.DownPayment.Equal(d("100000")) {
		t.Fatalf("DownPayment = %s, want full schedule default", s.Plan.DownPayment)
	}
	if !s.Plan.Bond.Amount.Equal(d("3000")) {
		t.Fatalf("Bond.Amount = %s, want 3000", s.Plan.Bond.Amount)
	}
}

func TestSession_RemoveAndRestoreRoundTrip(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))
	before := s.Derived.Budget.Total

	if err := s.RemoveComponent("photo"); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	// nominal price still pins the package total
	if !s.Derived.Budget.Total.Equal(before) {
		t.Fatalf("Total = %s after removal, want %s (nominal price wins)", s.Derived.Budget.Total, before)
	}
	if got := len(s.Derived.Proration.Adjusted); got != 2 {
		t.Fatalf("prorated over %d items after removal, want 2", got)
	}

	if err := s.RestoreComponent("photo"); err != nil {
		t.Fatalf("RestoreComponent: %v", err)
	}
	if !s.Derived.Budget.Total.Equal(before) {
		t.Fatalf("Total = %s after round trip, want %s", s.Derived.Budget.Total, before)
	}
	if got := len(s.Derived.Proration.Adjusted); got != 3 {
		t.Fatalf("prorated over %d items after restore, want 3", got)
	}
}

func TestSession_NonRemovableComponentRefused(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))

	err := s.RemoveComponent("coord")
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeComponentNotRemovable {
		t.Fatalf("RemoveComponent(coord) = %v, want %s", err, apperrors.CodeComponentNotRemovable)
	}

	err = s.RemoveComponent("ghost")
	ve, ok = apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeComponentNotFound {
		t.Fatalf("RemoveComponent(ghost) = %v, want %s", err, apperrors.CodeComponentNotFound)
	}
}

func TestSession_VenueInclusionsLockedAndNotDoubleCounted(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))
	s.SelectVenue(testVenue())

	// venue fee joins the total once; inclusion prices do not
	if !s.Derived.Budget.Total.Equal(d("140000")) {
		t.Fatalf("Total = %s with venue, want 140000", s.Derived.Budget.Total)
	}
	if got := len(s.Derived.VenueInclusions); got != 2 {
		t.Fatalf("len(VenueInclusions) = %d, want 2", got)
	}

	inclusionID := s.Derived.VenueInclusions[0].ID
	err := s.RemoveComponent(inclusionID)
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeVenueInclusionLocked {
		t.Fatalf("RemoveComponent(%s) = %v, want %s", inclusionID, err, apperrors.CodeVenueInclusionLocked)
	}

	s.ClearVenue()
	if !s.Derived.Budget.Total.Equal(d("100000")) {
		t.Fatalf("Total = %s after ClearVenue, want 100000", s.Derived.Budget.Total)
	}
	if len(s.Derived.VenueInclusions) != 0 {
		t.Fatalf("VenueInclusions survived ClearVenue: %v", s.Derived.VenueInclusions)
	}
}

func TestSession_DownPaymentTracksBudgetChanges(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))
	if err := s.SetScheduleType(payments.ScheduleMonthly); err != nil {
		t.Fatalf("SetScheduleType: %v", err)
	}
	if !s.Plan.DownPayment.Equal(d("30000")) {
		t.Fatalf("DownPayment = %s, want 30000", s.Plan.DownPayment)
	}

	s.SelectVenue(testVenue())
	if !s.Plan.DownPayment.Equal(d("42000")) {
		t.Fatalf("DownPayment = %s after venue, want 42000", s.Plan.DownPayment)
	}

	s.ClearVenue()
	if !s.Plan.DownPayment.Equal(d("30000")) {
		t.Fatalf("DownPayment = %s after ClearVenue, want 30000", s.Plan.DownPayment)
	}
	if !s.Plan.DownPayment.Add(s.Plan.Balance).Equal(s.Derived.Budget.Total) {
		t.Fatalf("down payment %s + balance %s != total %s",
			s.Plan.DownPayment, s.Plan.Balance, s.Derived.Budget.Total)
	}
}

func TestSession_CustomInclusionsEnterAtFaceValue(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))

	added, err := s.AddCustomInclusion(catalog.CustomInclusion{Name: "Photo booth", Price: d("8000")})
	if err != nil {
		t.Fatalf("AddCustomInclusion: %v", err)
	}
	if added.ID == "" {
		t.Fatal("custom inclusion was not assigned an id")
	}
	if added.Category != catalog.CategoryOther {
		t.Fatalf("Category = %s, want default %s", added.Category, catalog.CategoryOther)
	}
	if !s.Derived.Budget.Total.Equal(d("108000")) {
		t.Fatalf("Total = %s, want 108000", s.Derived.Budget.Total)
	}

	if _, err := s.AddCustomInclusion(catalog.CustomInclusion{Price: d("500")}); err == nil {
		t.Fatal("nameless custom inclusion accepted, want error")
	}
}

func TestSession_SupplierServicesEnterAtFaceValue(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))

	if _, err := s.AddSupplierService(catalog.SupplierService{Name: "String quartet", Price: d("15000")}); err != nil {
		t.Fatalf("AddSupplierService: %v", err)
	}
	if !s.Derived.Budget.Total.Equal(d("115000")) {
		t.Fatalf("Total = %s, want 115000", s.Derived.Budget.Total)
	}
}

func TestSession_SelectVenueOptionChangesFallbackSum(t *testing.T) {
	pkg := testPackage()
	pkg.NominalPrice = nil
	pkg.Components = append(pkg.Components, catalog.Component{
		ID: "hall", Name: "Reception hall", Price: d("10000"),
		Category: catalog.CategoryVenue, Source: catalog.SourceCatalog, Included: true,
		VenueOptions: []catalog.VenueChoice{
			{ID: "garden", Name: "Garden", Price: d("25000"), MaxGuests: 150},
			{ID: "ballroom", Name: "Ballroom", Price: d("45000"), MaxGuests: 300},
		},
	})
	s := NewSession(pkg, d("3000"))

	if !s.Derived.Budget.Total.Equal(d("110000")) {
		t.Fatalf("Total = %s before selection, want 110000", s.Derived.Budget.Total)
	}
	if err := s.SelectVenueOption("hall", "ballroom"); err != nil {
		t.Fatalf("SelectVenueOption: %v", err)
	}
	if !s.Derived.Budget.Total.Equal(d("145000")) {
		t.Fatalf("Total = %s with ballroom, want 145000", s.Derived.Budget.Total)
	}

	err := s.SelectVenueOption("hall", "rooftop")
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodeVenueOptionNotFound {
		t.Fatalf("SelectVenueOption(rooftop) = %v, want %s", err, apperrors.CodeVenueOptionNotFound)
	}
}

func TestSession_ConcurrentCommandsAreSerialized(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.RemoveComponent("photo")
			_ = s.RestoreComponent("photo")
		}()
		go func() {
			defer wg.Done()
			_ = s.SetScheduleType(payments.ScheduleMonthly)
			_ = s.SetScheduleType(payments.ScheduleFull)
		}()
	}
	wg.Wait()

	if err := s.RestoreComponent("photo"); err != nil {
		t.Fatalf("RestoreComponent after concurrent commands: %v", err)
	}
	if !s.Derived.Budget.Total.Equal(d("100000")) {
		t.Fatalf("Total = %s after concurrent commands, want 100000", s.Derived.Budget.Total)
	}
	if !s.Plan.DownPayment.Add(s.Plan.Balance).Equal(s.Derived.Budget.Total) {
		t.Fatalf("down payment %s + balance %s != total %s",
			s.Plan.DownPayment, s.Plan.Balance, s.Derived.Budget.Total)
	}
}

func TestSession_SetScheduleRejectsBadPercentageWithoutApplyingType(t *testing.T) {
	s := NewSession(testPackage(), d("3000"))
	if err := s.SetSchedule(payments.ScheduleHalf, nil); err != nil {
		t.Fatalf("SetSchedule(half): %v", err)
	}

	pct := 150.0
	err := s.SetSchedule(payments.ScheduleCustom, &pct)
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Code != apperrors.CodePercentageOutOfRange {
		t.Fatalf("SetSchedule(custom, 150) = %v, want %s", err, apperrors.CodePercentageOutOfRange)
	}
	// the whole command is refused, not just the percentage half of it
	if s.Plan.ScheduleType != payments.ScheduleHalf {
		t.Fatalf("ScheduleType = %s after rejected command, want half", s.Plan.ScheduleType)
	}
	if s.Plan.Percentage != 50 || !s.Plan.DownPayment.Equal(d("50000")) {
		t.Fatalf("plan = %v%% / %s after rejected command, want 50%% / 50000",
			s.Plan.Percentage, s.Plan.DownPayment)
	}

	pct = 30
	if err := s.SetSchedule(payments.ScheduleCustom, &pct); err != nil {
		t.Fatalf("SetSchedule(custom, 30): %v", err)
	}
	if !s.Plan.DownPayment.Equal(d("30000")) || !s.Plan.Balance.Equal(d("70000")) {
		t.Fatalf("split = %s/%s, want 30000/70000", s.Plan.DownPayment, s.Plan.Balance)
	}
}

func TestSession_OwnsPrivateCopyOfPackage(t *testing.T) {
	pkg := testPackage()
	s := NewSession(pkg, d("3000"))

	if err := s.RemoveComponent("photo"); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if !pkg.Components[1].Included {
		t.Fatal("session mutation leaked into the caller's package")
	}
}
