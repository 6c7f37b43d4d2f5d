package controllers

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestModelDelete(t *testing.T) {
	t.Parallel()

	admin := newTestModelAdmin(t)
	deleted := false
	admin.DeleteModelFunc = func(ctx context.Context) error {
		deleted = true
		return nil
	}

	session := newTestSession(t)
	cleared := false
	session.ClearFunc = func() {
		cleared = true
	}

	c := &ModelDelete{Admin: admin, Session: session}
	if err := c.handle(context.Background()); err != nil {
		t.Errorf("Unexpected error: %s", err)
		return
	}
	if !deleted {
		t.Errorf("Expected model deletion")
	}
	if !cleared {
		t.Errorf("Expected session clear after deletion")
	}
}

func TestModelDelete_Failure(t *testing.T) {
	t.Parallel()

	admin := newTestModelAdmin(t)
	admin.DeleteModelFunc = func(ctx context.Context) error {
		return errors.New("upstream unavailable")
	}

	// Session mock default fails the test if a failed deletion clears state.
	c := &ModelDelete{Admin: admin, Session: newTestSession(t)}
	if err := c.handle(context.Background()); err == nil {
		t.Errorf("Expected error, got nil error")
	}
}
