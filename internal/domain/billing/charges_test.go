package billing

import "testing"

func TestDefaultPriceList(t *testing.T) {
	ledger := NewLedger(nil)
	cases := []struct {
		op     Operation
		amount MinorUnits
	}{
		{OpOverview, 0},
		{OpLookup, 1000},
		{OpSearch, 2000},
		{OpTop, 2000},
		{OpCompare, 3000},
		{OpReport, 5000},
	}
	for _, tc := range cases {
		if got := ledger.ChargeFor(tc.op); got != tc.amount {
			t.Fatalf("%s: expected %d, got %d", tc.op, tc.amount, got)
		}
	}
}

func TestOverridesReplaceKnownOperationsOnly(t *testing.T) {
	ledger := NewLedger(map[Operation]MinorUnits{
		OpLookup:            500,
		Operation("bogus"):  99,
		OpSearch:            -1, // negative overrides are ignored
	})
	if got := ledger.ChargeFor(OpLookup); got != 500 {
		t.Fatalf("expected override 500, got %d", got)
	}
	if got := ledger.ChargeFor(OpSearch); got != 2000 {
		t.Fatalf("negative override must keep the default, got %d", got)
	}
	if got := ledger.ChargeFor(Operation("bogus")); got != 0 {
		t.Fatalf("unknown operation must not be priced, got %d", got)
	}
}

func TestRecordAccumulatesTotal(t *testing.T) {
	ledger := NewLedger(nil)
	if amount := ledger.Record(OpLookup, "req-1"); amount != 1000 {
		t.Fatalf("expected lookup charge 1000, got %d", amount)
	}
	ledger.Record(OpReport, "req-2")
	ledger.Record(OpOverview, "req-3")

	if total := ledger.Total(); total != 6000 {
		t.Fatalf("expected total 6000, got %d", total)
	}
	records := ledger.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].RequestID != "req-1" || records[0].Amount != 1000 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[2].Operation != OpOverview || records[2].Amount != 0 {
		t.Fatalf("free operations still leave a zero-amount record: %+v", records[2])
	}
}

func TestRecordsReturnsACopy(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Record(OpSearch, "req-1")
	records := ledger.Records()
	records[0].Amount = 0
	if ledger.Records()[0].Amount != 2000 {
		t.Fatalf("mutating the returned slice must not affect the ledger")
	}
}
