package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAct(t *testing.T) {
	assert.True(t, Store.CanAct(Store))
	assert.False(t, Store.CanAct(Programmer))
	assert.True(t, QA.CanAct(Programmer, QA, Accounts))
	assert.False(t, Accounts.CanAct(Store, Programmer))
}

func TestAdminPassesEveryGate(t *testing.T) {
	assert.True(t, Admin.CanAct(Store))
	assert.True(t, Admin.CanAct(Programmer, QA))
	assert.True(t, Admin.CanAct())
}

func TestIsValid(t *testing.T) {
	for _, r := range []Role{Store, Programmer, QA, Accounts, Admin} {
		assert.True(t, r.IsValid(), r.String())
	}
	assert.False(t, Role("moderator").IsValid())
	assert.False(t, Role("").IsValid())
}
