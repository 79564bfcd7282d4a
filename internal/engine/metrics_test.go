package engine

import (
	"context"
	"errors"
	"testing"
)

func TestTrackOperationPassesThroughError(t *testing.T) {
	want := errors.New("boom")
	err := TrackOperation(context.Background(), "op", func(context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("TrackOperation() error = %v, want %v", err, want)
	}

	if err := TrackOperation(context.Background(), "op", func(context.Context) error {
		return nil
	}); err != nil {
		t.Errorf("TrackOperation() error = %v, want nil", err)
	}
}
