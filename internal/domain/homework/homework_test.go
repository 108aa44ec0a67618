package homework_test

import (
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMessage_KnownVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		status   homework.Status
		expected string
	}{
		{
			name:     "approved",
			status:   homework.StatusApproved,
			expected: "Изменился статус проверки работы \"hw_final.zip\". Работа проверена: ревьюеру всё понравилось. Ура!",
		},
		{
			name:     "reviewing",
			status:   homework.StatusReviewing,
			expected: "Изменился статус проверки работы \"hw_final.zip\". Работа взята на проверку ревьюером.",
		},
		{
			name:     "rejected",
			status:   homework.StatusRejected,
			expected: "Изменился статус проверки работы \"hw_final.zip\". Работа проверена: у ревьюера есть замечания.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := homework.StatusMessage(homework.Homework{
				Name:   "hw_final.zip",
				Status: tt.status,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestStatusMessage_UnknownStatus(t *testing.T) {
	_, err := homework.StatusMessage(homework.Homework{
		Name:   "hw_final.zip",
		Status: "on_hold",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, homework.ErrUnknownStatus)
	assert.Contains(t, err.Error(), "on_hold")
}

func TestStatusMessage_EmptyStatus(t *testing.T) {
	_, err := homework.StatusMessage(homework.Homework{Name: "hw_final.zip"})

	assert.ErrorIs(t, err, homework.ErrUnknownStatus)
}
