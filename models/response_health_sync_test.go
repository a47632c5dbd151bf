package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthSyncResponse_Accepted(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{SyncStatusOK, true},
		{SyncStatusPartial, true},
		{SyncStatusError, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			resp := HealthSyncResponse{Status: tt.status}
			assert.Equal(t, tt.want, resp.Accepted())
		})
	}
}
