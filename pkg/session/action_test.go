package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionTransitions(t *testing.T) {
	a := idle()
	assert.False(t, a.InFlight())
	assert.Equal(t, "idle", a.Phase.String())

	a = inFlight()
	assert.True(t, a.InFlight())
	assert.Nil(t, a.Err)

	err := errors.New("boom")

	a = failed(err)
	assert.Equal(t, PhaseFailed, a.Phase)
	assert.Equal(t, err, a.Err)

	a = succeeded()
	assert.Equal(t, PhaseSucceeded, a.Phase)
	assert.Nil(t, a.Err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "create agent", KindCreateAgent.String())
	assert.Equal(t, "upload", KindUpload.String())
	assert.Equal(t, "chat", KindChat.String())
	assert.Equal(t, "upload status", KindStatus.String())
}
