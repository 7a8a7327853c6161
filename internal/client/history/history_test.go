package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

func newRing() *Ring {
	return New(prefs.NewMemStore())
}

func TestAdd_MostRecentFirst(t *testing.T) {
	r := newRing()
	r.Add("latte")
	r.Add("mocha")
	r.Add("flat white")

	assert.Equal(t, []string{"flat white", "mocha", "latte"}, r.Entries())
}

func TestAdd_CapIsFour(t *testing.T) {
	r := newRing()
	for _, q := range []string{"one", "two", "three", "four", "five", "six"} {
		r.Add(q)
	}

	assert.Equal(t, []string{"six", "five", "four", "three"}, r.Entries())
}

func TestAdd_CaseInsensitiveDedup(t *testing.T) {
	r := newRing()
	r.Add("latte")
	r.Add("mocha")
	r.Add("LATTE")

	// the re-issued query moves to the front keeping the new casing
	assert.Equal(t, []string{"LATTE", "mocha"}, r.Entries())
}

func TestAdd_BlankIsIgnored(t *testing.T) {
	r := newRing()
	r.Add("latte")

	r.Add("")
	r.Add("   ")

	assert.Equal(t, []string{"latte"}, r.Entries())
}

func TestEntries_EmptyByDefault(t *testing.T) {
	assert.Empty(t, newRing().Entries())
}

func TestClear(t *testing.T) {
	r := newRing()
	r.Add("latte")
	r.Add("mocha")

	r.Clear()

	assert.Empty(t, r.Entries())
}
