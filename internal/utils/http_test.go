package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
		wantErr    bool
	}{
		{name: "pong", data: map[string]int{"type": 1}, status: http.StatusOK, wantBody: `{"type":1}`, wantStatus: http.StatusOK},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null", wantStatus: http.StatusOK},
		{name: "custom status", data: []int32{1, 2}, status: http.StatusAccepted, wantBody: "[1,2]", wantStatus: http.StatusAccepted},
		{name: "unencodable", data: make(chan int), status: http.StatusOK, wantStatus: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
