package bowling

import (
	"testing"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestUpdateFrameStatus(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		rolls    []int
		strike   bool
		spare    bool
		complete bool
	}{
		{name: "empty frame", index: 0, rolls: []int{}},
		{name: "one open roll", index: 0, rolls: []int{4}},
		{name: "strike", index: 3, rolls: []int{10}, strike: true, complete: true},
		{name: "spare", index: 3, rolls: []int{6, 4}, spare: true, complete: true},
		{name: "gutter then ten is a spare", index: 3, rolls: []int{0, 10}, spare: true, complete: true},
		{name: "open frame", index: 8, rolls: []int{6, 3}, complete: true},
		{name: "10th open frame", index: 9, rolls: []int{6, 3}, complete: true},
		{name: "10th strike needs three rolls", index: 9, rolls: []int{10, 10}, strike: true},
		{name: "10th strike with bonus", index: 9, rolls: []int{10, 0, 0}, strike: true, complete: true},
		{name: "10th spare needs a third roll", index: 9, rolls: []int{7, 3}, spare: true},
		{name: "10th spare with bonus", index: 9, rolls: []int{7, 3, 10}, spare: true, complete: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a frame holding the rolls
			frame := entity.BowlingFrame{FrameNumber: tt.index + 1, Rolls: tt.rolls}

			// When: its status is updated
			result := UpdateFrameStatus(frame, tt.index)

			// Then: the flags follow the frame rules
			assert.Equal(t, tt.strike, result.IsStrike)
			assert.Equal(t, tt.spare, result.IsSpare)
			assert.Equal(t, tt.complete, result.IsComplete)
		})
	}
}

func TestValidateRoll(t *testing.T) {
	t.Run("Rejects counts outside 0-10", func(t *testing.T) {
		frame := entity.BowlingFrame{Rolls: []int{}}

		assert.ErrorIs(t, ValidateRoll(frame, -1), apperror.ErrInvalidPins)
		assert.ErrorIs(t, ValidateRoll(frame, 11), apperror.ErrInvalidPins)
	})

	t.Run("Rejects more pins than are standing", func(t *testing.T) {
		frame := entity.BowlingFrame{Rolls: []int{7}}

		assert.ErrorIs(t, ValidateRoll(frame, 4), apperror.ErrInvalidPins)
		assert.NoError(t, ValidateRoll(frame, 3))
	})

	t.Run("10th frame resets the pins after a strike or spare", func(t *testing.T) {
		assert.NoError(t, ValidateRoll(entity.BowlingFrame{Rolls: []int{10}}, 10))
		assert.NoError(t, ValidateRoll(entity.BowlingFrame{Rolls: []int{4, 6}}, 10))
		assert.ErrorIs(t, ValidateRoll(entity.BowlingFrame{Rolls: []int{10, 3}}, 8), apperror.ErrInvalidPins)
		assert.NoError(t, ValidateRoll(entity.BowlingFrame{Rolls: []int{10, 3}}, 7))
	})
}

func TestRollLabels(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  []string
	}{
		{name: "open frame", rolls: []int{3, 4}, want: []string{"3", "4"}},
		{name: "gutter then miss", rolls: []int{0, 0}, want: []string{"G", "-"}},
		{name: "gutter spare", rolls: []int{0, 10}, want: []string{"G", "/"}},
		{name: "strike", rolls: []int{10}, want: []string{"X"}},
		{name: "10th strike then gutter starts a fresh sub-frame", rolls: []int{10, 0, 0}, want: []string{"X", "G", "-"}},
		{name: "10th strike then spare", rolls: []int{10, 3, 7}, want: []string{"X", "3", "/"}},
		{name: "10th spare then gutter", rolls: []int{5, 5, 0}, want: []string{"5", "/", "G"}},
		{name: "10th turkey", rolls: []int{10, 10, 10}, want: []string{"X", "X", "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RollLabels(entity.BowlingFrame{Rolls: tt.rolls}))
		})
	}
}
