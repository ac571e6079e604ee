package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, WithHTTPClient(server.Client()))
}

func TestClient_FetchUsers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]entities.User{
			{ID: 1, Name: "Admin", Username: "admin", Role: entities.UserRoleAdmin},
			{ID: 2, Name: "Anna", Username: "user1", Role: entities.UserRoleUser, Favorites: []int{2, 6}},
		})
	})

	users, err := client.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[0].IsAdmin())
	assert.Equal(t, []int{2, 6}, users[1].Favorites)
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
		wantUserID int
	}{
		{
			name:       "valid credentials",
			statusCode: http.StatusOK,
			body:       `{"user":{"id":2,"name":"Anna","username":"user1","role":"user"}}`,
			wantUserID: 2,
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"bad credentials"}`,
			wantErr:    ErrInvalidCredentials,
		},
		{
			name:       "unknown user",
			statusCode: http.StatusNotFound,
			wantErr:    ErrInvalidCredentials,
		},
		{
			name:       "ok without user",
			statusCode: http.StatusOK,
			body:       `{}`,
			wantErr:    ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/login", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var req LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "user1", req.Username)
				assert.Equal(t, "password", req.Password)

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			user, err := client.Login(context.Background(), "user1", "password")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, user.ID)
		})
	}
}

func TestClient_GetComments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comments", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("bookId"))
		json.NewEncoder(w).Encode([]entities.Comment{
			{ID: 701, BookID: 7, UserID: 1, Author: "Admin", Text: "great"},
		})
	})

	comments, err := client.GetComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, int64(701), comments[0].ID)
}

func TestClient_AddComment(t *testing.T) {
	var got entities.Comment
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/comments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.AddComment(context.Background(), entities.Comment{ID: 42, BookID: 3, UserID: 2, Author: "Anna", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Anna", got.Author)
}

func TestClient_Deletes(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteComment(context.Background(), 1718000000000))
	require.NoError(t, client.DeleteUser(context.Background(), 3))
	assert.Equal(t, []string{"/api/comments/1718000000000", "/api/users/3"}, paths)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		check      func(t *testing.T, err error)
	}{
		{
			name:       "server error",
			statusCode: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.True(t, errors.As(err, &serverErr))
				assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
			},
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:       "bad request",
			statusCode: http.StatusBadRequest,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "unexpected status 400")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})
			err := client.DeleteUser(context.Background(), 1)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_DoesNotRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchUsers(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_RespectsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchUsers(ctx)
	assert.Error(t, err)
}

func TestNewClient_Options(t *testing.T) {
	client := NewClient("https://example.com/", WithTimeout(0), WithRateLimit(5))
	assert.Equal(t, "https://example.com", client.baseURL)
	assert.Equal(t, time.Duration(0), client.httpClient.Timeout)
	require.NotNil(t, client.limiter)

	client = NewClient("https://example.com", WithRateLimit(0))
	assert.Nil(t, client.limiter)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestClient_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	client := NewClient(server.URL, WithHTTPClient(server.Client()), WithTracerProvider(tp))

	_, err := client.GetComments(context.Background(), 7)
	require.NoError(t, err)
	require.Error(t, client.DeleteUser(context.Background(), 3))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "api.get", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("url.path", "/api/comments"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", 200))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "api.delete", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
