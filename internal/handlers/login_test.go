package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/postpal/postpal-server/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      LoginRequest
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]string)
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Username: "john", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("some.jwt.token", nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body map[string]string) {
				assert.Equal(t, "some.jwt.token", body["token"])
				assert.Equal(t, "Login successful", body["message"])
			},
		},
		{
			name:    "unknown username",
			reqBody: LoginRequest{Username: "ghost", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "secret").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]string) {
				assert.Equal(t, "Invalid username or password", body["message"])
			},
		},
		{
			name:    "wrong password",
			reqBody: LoginRequest{Username: "john", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "nope").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]string) {
				assert.Equal(t, "Invalid username or password", body["message"])
			},
		},
		{
			name:         "missing fields",
			reqBody:      LoginRequest{},
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]string) {
				assert.Equal(t, "Username and password are required", body["message"])
			},
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Username: "john", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body map[string]string) {
				assert.Equal(t, "Internal server error", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			tt.checkBody(t, body)
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable in
// both status and body.
func TestLoginHandler_GenericCredentialError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	run := func(username, password string) (int, string) {
		mockSvc := NewMockLoginer(ctrl)
		mockSvc.EXPECT().
			Login(gomock.Any(), username, password).
			Return("", services.ErrInvalidCredentials)

		handler := NewLoginHandler(mockSvc)
		bodyBytes, _ := json.Marshal(LoginRequest{Username: username, Password: password})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code, rr.Body.String()
	}

	codeA, bodyA := run("no-such-user", "whatever")
	codeB, bodyB := run("real-user", "wrong-password")

	assert.Equal(t, codeA, codeB)
	assert.Equal(t, bodyA, bodyB)
}
