package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autfiles/internal/models"
	"autfiles/internal/service"
)

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return m
}

func TestSignUp_Success(t *testing.T) {
	auth := &mockAuth{
		signUpUser:  &models.User{ID: "user-42", Name: "Ann", Email: "ann@x.com"},
		signUpToken: "tok123",
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(t, r, "/api/signup", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["success"] != true {
		t.Errorf("expected success=true, got %v", m["success"])
	}
	if m["token"] != "tok123" || m["userId"] != "user-42" || m["name"] != "Ann" {
		t.Errorf("unexpected body: %v", m)
	}
	if m["message"] != "User created successfully" {
		t.Errorf("unexpected message: %v", m["message"])
	}
	if auth.lastSignUpName != "Ann" || auth.lastSignUpEmail != "ann@x.com" || auth.lastSignUpPassword != "secret1" {
		t.Errorf("service received %q/%q/%q", auth.lastSignUpName, auth.lastSignUpEmail, auth.lastSignUpPassword)
	}
}

func TestSignUp_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "all fields missing",
			body:    `{}`,
			wantMsg: "All fields are required (name, email, password)",
		},
		{
			name:    "name missing",
			body:    `{"email":"ann@x.com","password":"secret1"}`,
			wantMsg: "Name is required",
		},
		{
			name:    "email missing",
			body:    `{"name":"Ann","password":"secret1"}`,
			wantMsg: "Email is required",
		},
		{
			name:    "password missing",
			body:    `{"name":"Ann","email":"ann@x.com"}`,
			wantMsg: "Password is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(t, r, "/api/signup", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}

			m := decodeBody(t, w)
			if m["success"] != false {
				t.Errorf("expected success=false, got %v", m["success"])
			}
			if m["message"] != tc.wantMsg {
				t.Errorf("message: got %v, want %q", m["message"], tc.wantMsg)
			}
			if auth.signUpCalls != 0 {
				t.Errorf("service must not be called on validation failure")
			}
		})
	}
}

func TestSignUp_AllFieldsMissingEchoesPayload(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	// The echo reproduces the body as received, including keys the
	// endpoint does not know about.
	w := postJSON(t, r, "/api/signup", `{"username":"ann","extra":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["message"] != "All fields are required (name, email, password)" {
		t.Fatalf("unexpected message: %v", m["message"])
	}
	received, ok := m["received"].(map[string]any)
	if !ok {
		t.Fatalf("expected received payload echo, got %v", m)
	}
	if received["username"] != "ann" || received["extra"] != float64(1) {
		t.Fatalf("echo dropped original keys: %v", received)
	}
	if _, ok := received["name"]; ok {
		t.Fatalf("echo must not invent fields the caller never sent: %v", received)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	auth := &mockAuth{signUpErr: models.ErrUserExists}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(t, r, "/api/signup", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["success"] != false || m["message"] != "User already exists" {
		t.Errorf("unexpected body: %v", m)
	}
}

func TestSignUp_ServiceFailure(t *testing.T) {
	auth := &mockAuth{signUpErr: errors.New("db down")}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(t, r, "/api/signup", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	// The client gets a generic message; the cause stays in the server log.
	if m["success"] != false || m["message"] != "Server error" {
		t.Errorf("unexpected body: %v", m)
	}
}

func TestSignUp_MalformedBody(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := postJSON(t, r, "/api/signup", `{"name":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestLogIn_Success(t *testing.T) {
	auth := &mockAuth{
		loginUser:  &models.User{ID: "user-42", Name: "Ann", Email: "ann@x.com"},
		loginToken: "tok456",
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(t, r, "/api/login", `{"email":"ann@x.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["success"] != true || m["token"] != "tok456" || m["userId"] != "user-42" || m["name"] != "Ann" {
		t.Errorf("unexpected body: %v", m)
	}
	if m["message"] != "Login successful" {
		t.Errorf("unexpected message: %v", m["message"])
	}
	if auth.lastLoginEmail != "ann@x.com" || auth.lastLoginPassword != "secret1" {
		t.Errorf("service received %q/%q", auth.lastLoginEmail, auth.lastLoginPassword)
	}
}

func TestLogIn_MissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"email":"ann@x.com"}`, `{"password":"secret1"}`} {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(t, r, "/api/login", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d", body, w.Code)
		}

		m := decodeBody(t, w)
		if m["message"] != "Email and password are required" {
			t.Errorf("body %s: message %v", body, m["message"])
		}
		if auth.loginCalls != 0 {
			t.Errorf("body %s: service must not be called", body)
		}
	}
}

func TestLogIn_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	r := newTestRouter(&service.Service{Authorization: auth})

	// Same status and message whether the email is unknown or the password
	// is wrong; the service collapses both into one error.
	w := postJSON(t, r, "/api/login", `{"email":"ann@x.com","password":"wrong"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["success"] != false || m["message"] != "Invalid credentials" {
		t.Errorf("unexpected body: %v", m)
	}
}

func TestLogIn_ServiceFailure(t *testing.T) {
	auth := &mockAuth{loginErr: errors.New("db down")}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(t, r, "/api/login", `{"email":"ann@x.com","password":"secret1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if m["message"] != "Server error" {
		t.Errorf("unexpected message: %v", m["message"])
	}
}
