package prefs

import "testing"

func TestSaveSession_RoundTrip(t *testing.T) {
	p := New(NewMemStore())
	p.SaveSession("tok-1", 1, "a@b.com", "A")

	sess := p.Session()
	if sess == nil {
		t.Fatal("expected a session")
	}
	if sess.Token != "tok-1" || sess.UserID != 1 || sess.Email != "a@b.com" || sess.Name != "A" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestSaveSession_Overwrites(t *testing.T) {
	p := New(NewMemStore())
	p.SaveSession("tok-1", 1, "a@b.com", "A")
	p.SaveSession("tok-2", 2, "c@d.com", "C")

	sess := p.Session()
	if sess == nil || sess.Token != "tok-2" || sess.UserID != 2 {
		t.Errorf("expected the second session, got %+v", sess)
	}
}

func TestClearSession_Idempotent(t *testing.T) {
	p := New(NewMemStore())
	p.SaveSession("tok", 1, "a@b.com", "A")

	p.ClearSession()
	if p.Session() != nil {
		t.Error("expected nil session after clear")
	}
	// a second clear must be a silent no-op
	p.ClearSession()
	if p.Session() != nil {
		t.Error("expected nil session after double clear")
	}
}

func TestSession_RequiresTokenAndFlag(t *testing.T) {
	store := NewMemStore()
	p := New(store)

	// logged-in flag without token: partially cleared state
	store.SetBool("logged_in", true)
	if p.Session() != nil {
		t.Error("expected nil session without a token")
	}

	// token without flag
	store.Remove("logged_in")
	store.SetString("auth_token", "tok")
	if p.Session() != nil {
		t.Error("expected nil session without the logged-in flag")
	}
}

func TestFirstLaunch(t *testing.T) {
	p := New(NewMemStore())
	if !p.IsFirstLaunch() {
		t.Error("expected first launch by default")
	}
	p.MarkFirstLaunchComplete()
	if p.IsFirstLaunch() {
		t.Error("expected first launch to be complete")
	}
}

func TestSavedAddress_UnsetVsEmpty(t *testing.T) {
	p := New(NewMemStore())

	if _, ok := p.SavedAddress(); ok {
		t.Error("expected no saved address initially")
	}
	p.SaveAddress("")
	if v, ok := p.SavedAddress(); !ok || v != "" {
		t.Errorf("a saved empty address must be present: got %q, %v", v, ok)
	}
}

func TestAddressNote_RoundTrip(t *testing.T) {
	p := New(NewMemStore())
	addr := "12 Coffee Lane"

	p.SaveAddressNote(addr, "ring twice")
	if note, ok := p.AddressNote(addr); !ok || note != "ring twice" {
		t.Errorf("AddressNote = %q, %v; want %q, true", note, ok, "ring twice")
	}

	p.ClearAddressNote(addr)
	if note, ok := p.AddressNote(addr); ok || note != "" {
		t.Errorf("expected no note after clear, got %q, %v", note, ok)
	}
}

func TestAddressNote_ExactKeying(t *testing.T) {
	p := New(NewMemStore())
	p.SaveAddressNote("12 Coffee Lane", "ring twice")

	// no normalization: a differently cased address is a different key
	if _, ok := p.AddressNote("12 coffee lane"); ok {
		t.Error("expected exact-string keying for address notes")
	}
}

func TestOrderStartedAt(t *testing.T) {
	p := New(NewMemStore())
	if _, ok := p.OrderStartedAt(); ok {
		t.Error("expected no start timestamp initially")
	}
	p.SetOrderStartedAt(1700000000)
	if ts, ok := p.OrderStartedAt(); !ok || ts != 1700000000 {
		t.Errorf("OrderStartedAt = %d, %v", ts, ok)
	}
	p.ClearOrderStartedAt()
	if _, ok := p.OrderStartedAt(); ok {
		t.Error("expected timestamp cleared")
	}
}
