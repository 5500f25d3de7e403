package cserr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"metric"})

	assert.Nil(t, ErrInvalidReq.Extras)
	if assert.NotNil(t, e.Extras) {
		assert.Equal(t, []string{"metric"}, (*e.Extras)["violations"])
	}
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, "INVALID_REQUEST: invalid request: some or all request parameters are invalid", e.Error())
}
