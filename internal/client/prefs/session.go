package prefs

// Preference keys. Address notes are stored under a per-address key built
// from notePrefix and the exact address string, no normalization.
const (
	keyToken          = "auth_token"
	keyUserID         = "user_id"
	keyEmail          = "user_email"
	keyName           = "user_name"
	keyLoggedIn       = "logged_in"
	keyOnboarded      = "onboarding_done"
	keyAddress        = "saved_address"
	keyOrderStartedAt = "order_started_at"
	notePrefix        = "address_note:"
)

// Session is the authenticated-user record cached locally after a
// successful login or registration.
type Session struct {
	Token  string
	UserID int64
	Email  string
	Name   string
}

// Preferences is the typed façade over a Store used by every screen that
// needs to know who is logged in and what the user previously entered.
type Preferences struct {
	store Store
}

// New wraps the given store.
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// SaveSession persists all session fields and marks the user logged in.
// Any prior session is overwritten unconditionally.
func (p *Preferences) SaveSession(token string, userID int64, email, name string) {
	p.store.SetString(keyToken, token)
	p.store.SetInt64(keyUserID, userID)
	p.store.SetString(keyEmail, email)
	p.store.SetString(keyName, name)
	p.store.SetBool(keyLoggedIn, true)
}

// Session returns the stored session, or nil when there is none. It requires
// both the logged-in flag and a non-empty token, which guards against a
// partially cleared state.
func (p *Preferences) Session() *Session {
	loggedIn, _ := p.store.GetBool(keyLoggedIn)
	token, _ := p.store.GetString(keyToken)
	if !loggedIn || token == "" {
		return nil
	}
	userID, _ := p.store.GetInt64(keyUserID)
	email, _ := p.store.GetString(keyEmail)
	name, _ := p.store.GetString(keyName)
	return &Session{Token: token, UserID: userID, Email: email, Name: name}
}

// Token returns the stored bearer token, or the empty string when the user
// is not logged in.
func (p *Preferences) Token() string {
	s := p.Session()
	if s == nil {
		return ""
	}
	return s.Token
}

// ClearSession removes every session field. Safe to call when already
// logged out.
func (p *Preferences) ClearSession() {
	p.store.Remove(keyToken)
	p.store.Remove(keyUserID)
	p.store.Remove(keyEmail)
	p.store.Remove(keyName)
	p.store.SetBool(keyLoggedIn, false)
}

// IsFirstLaunch reports whether onboarding has not yet been completed.
// Defaults to true until MarkFirstLaunchComplete is called.
func (p *Preferences) IsFirstLaunch() bool {
	done, _ := p.store.GetBool(keyOnboarded)
	return !done
}

// MarkFirstLaunchComplete flips the one-way onboarding flag.
func (p *Preferences) MarkFirstLaunchComplete() {
	p.store.SetBool(keyOnboarded, true)
}

// SaveAddress stores the delivery address the user last entered.
func (p *Preferences) SaveAddress(text string) {
	p.store.SetString(keyAddress, text)
}

// SavedAddress returns the stored delivery address. The second return value
// distinguishes "never saved" from a saved empty string.
func (p *Preferences) SavedAddress() (string, bool) {
	return p.store.GetString(keyAddress)
}

// SaveAddressNote stores a free-text note keyed by the exact address string.
func (p *Preferences) SaveAddressNote(address, note string) {
	p.store.SetString(notePrefix+address, note)
}

// AddressNote returns the note stored for the exact address string.
func (p *Preferences) AddressNote(address string) (string, bool) {
	return p.store.GetString(notePrefix + address)
}

// ClearAddressNote removes the note stored for the address.
func (p *Preferences) ClearAddressNote(address string) {
	p.store.Remove(notePrefix + address)
}

// SetOrderStartedAt records the unix timestamp at which the active delivery
// order started.
func (p *Preferences) SetOrderStartedAt(ts int64) {
	p.store.SetInt64(keyOrderStartedAt, ts)
}

// OrderStartedAt returns the recorded order start timestamp, if any.
func (p *Preferences) OrderStartedAt() (int64, bool) {
	return p.store.GetInt64(keyOrderStartedAt)
}

// ClearOrderStartedAt removes the recorded order start timestamp.
func (p *Preferences) ClearOrderStartedAt() {
	p.store.Remove(keyOrderStartedAt)
}
