package cusp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "admin@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "fresh-token",
			"user":  map[string]any{"id": 1, "username": "admin"},
			"msg":   "Login successful",
		})
	}))
	defer server.Close()

	client := New(server.URL, "", StaticToken(""))
	result, err := client.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token != "fresh-token" {
		t.Errorf("token = %q", result.Token)
	}
	if len(result.User) == 0 {
		t.Error("user payload missing")
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid credentials"})
	}))
	defer server.Close()

	client := New(server.URL, "", StaticToken(""))
	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	if KindOf(err, KindFetch) != KindAuth {
		t.Errorf("kind = %v, want auth", KindOf(err, KindFetch))
	}
}

func TestVerifyAcceptsExactMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer abc" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]string{"msg": "Token is valid"})
	}))
	defer server.Close()

	client := New(server.URL, "", StaticToken(""))
	if err := client.Verify(context.Background(), "abc"); err != nil {
		t.Errorf("verify failed: %v", err)
	}
}

func TestVerifyRejectsOtherMessages(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"wrong marker", http.StatusOK, `{"msg":"Token looks fine"}`},
		{"empty body", http.StatusOK, `{}`},
		{"server error", http.StatusInternalServerError, `{"msg":"Token is valid"}`},
		{"not json", http.StatusOK, `oops`},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))
		client := New(server.URL, "", StaticToken(""))
		if err := client.Verify(context.Background(), "abc"); err == nil {
			t.Errorf("%s: expected verify to fail", tc.name)
		}
		server.Close()
	}
}

func TestVerifyTransportFailureIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL, "", StaticToken(""))
	err := client.Verify(context.Background(), "abc")
	if err == nil {
		t.Fatal("expected verify to fail")
	}
	if KindOf(err, KindFetch) != KindAuth {
		t.Errorf("kind = %v, want auth", KindOf(err, KindFetch))
	}
}
