package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghassen-kharrat/portfolio/internal/config"
)

func testConfig(endpoint string) config.Mailer {
	return config.Mailer{
		Endpoint:   endpoint,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "public_test",
	}
}

func TestClient_Send(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
		errIs      error
	}{
		{
			name:       "accepted",
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "rejected",
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errIs:      ErrRejected,
		},
		{
			name:       "server error",
			statusCode: http.StatusBadGateway,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++

				var req sendRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "service_test", req.ServiceID)
				assert.Equal(t, "template_test", req.TemplateID)
				assert.Equal(t, "public_test", req.UserID)
				assert.Equal(t, "Jane", req.TemplateParams.Name)

				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL))
			err := client.Send(context.Background(), Submission{
				Name:    "Jane",
				Email:   "jane@example.com",
				Subject: "Hi",
				Message: "Hello there",
			})

			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}

			// Exactly one attempt regardless of outcome: no automatic retry
			assert.Equal(t, 1, attempts)
		})
	}
}

func TestClient_Send_ServerErrorType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.Send(context.Background(), Submission{Name: "x"})

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusServiceUnavailable, serverErr.StatusCode)
}

func TestClient_Send_NotConfigured(t *testing.T) {
	client := NewClient(config.Mailer{Endpoint: "https://relay.example.com"})

	err := client.Send(context.Background(), Submission{Name: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, client.Configured())
}
