package commands

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mailapi-dev/mailapi-go"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func runCLI(t *testing.T, status int, response string, args ...string) (string, string, *recorded, error) {
	t.Helper()

	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.body = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--base-url", server.URL, "--env-file", ""}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), rec, err
}

func TestSendCommand(t *testing.T) {
	t.Parallel()

	stdout, _, rec, err := runCLI(t, http.StatusOK, `{"success":true,"messageId":"m1"}`,
		"--api-key", "k1", "send", "--to", "a@b.com", "--subject", "hi", "--message", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/email" {
		t.Errorf("expected POST /email, got %s %s", rec.method, rec.path)
	}

	if rec.auth != "Bearer k1" {
		t.Errorf("expected 'Bearer k1', got %s", rec.auth)
	}

	if !strings.Contains(rec.body, `"subject":"hi"`) {
		t.Errorf("unexpected body: %s", rec.body)
	}

	if strings.TrimSpace(stdout) != `{"success":true,"messageId":"m1"}` {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestSendCommand_InvalidTemplateData(t *testing.T) {
	t.Parallel()

	_, _, rec, err := runCLI(t, http.StatusOK, `{}`,
		"--api-key", "k1", "send", "--to", "a@b.com", "--subject", "hi", "--template-id", "t", "--template-data", "not json")

	if err == nil || !strings.Contains(err.Error(), "--template-data") {
		t.Errorf("expected template data error, got %v", err)
	}

	if rec.method != "" {
		t.Error("expected no request to be sent")
	}
}

func TestVerifyCommand_APIError(t *testing.T) {
	t.Parallel()

	_, stderr, rec, err := runCLI(t, http.StatusBadRequest, `{"error":"invalid email","code":"invalid_email"}`,
		"--api-key", "k1", "verify", "bad")

	var apiErr *mailapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *mailapi.Error, got %v", err)
	}

	if rec.query != "email=bad" {
		t.Errorf("expected query email=bad, got %s", rec.query)
	}

	if !strings.Contains(stderr, "invalid_email: invalid email") {
		t.Errorf("expected error on stderr, got %q", stderr)
	}
}

func TestUpdateCommand(t *testing.T) {
	t.Parallel()

	_, _, rec, err := runCLI(t, http.StatusOK, `{"success":true,"action":"updated"}`,
		"--api-key", "k1", "update", "x@y.com", "--tag", "a", "--tag", "b", "--status", "active", "--plan-name", "Pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.path != "/email/update" {
		t.Errorf("expected path=/email/update, got %s", rec.path)
	}

	for _, want := range []string{`"email":"x@y.com"`, `"tags":["a","b"]`, `"subscriptionStatus":"active"`, `"plan":{"name":"Pro"}`} {
		if !strings.Contains(rec.body, want) {
			t.Errorf("expected body to contain %s, got %s", want, rec.body)
		}
	}
}

func TestAddAndDeleteCommands(t *testing.T) {
	t.Parallel()

	_, _, rec, err := runCLI(t, http.StatusOK, `{}`, "--api-key", "k1", "add", "x@y.com")
	if err != nil {
		t.Fatalf("add: unexpected error: %v", err)
	}
	if rec.path != "/email/add" {
		t.Errorf("expected path=/email/add, got %s", rec.path)
	}

	_, _, rec, err = runCLI(t, http.StatusOK, `{}`, "--api-key", "k1", "delete", "x@y.com")
	if err != nil {
		t.Fatalf("delete: unexpected error: %v", err)
	}
	if rec.path != "/email/delete" || rec.body != `{"email":"x@y.com"}` {
		t.Errorf("unexpected delete request: %s %s", rec.path, rec.body)
	}
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	_, _, rec, err := runCLI(t, http.StatusOK, `{}`, "verify", "a@b.com")

	if !errors.Is(err, mailapi.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}

	if rec.method != "" {
		t.Error("expected no request to be sent")
	}
}

func TestAPIKeyFromEnvFile(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	os.Unsetenv(apiKeyEnv)

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(apiKeyEnv+"=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	_, _, rec, err := runCLI(t, http.StatusOK, `{}`, "--env-file", envFile, "verify", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.auth != "Bearer from-dotenv" {
		t.Errorf("expected key from env file, got %s", rec.auth)
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"now", "now", &now, false},
		{"rfc3339", "2026-01-02T03:04:05Z", ptr(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)), false},
		{"invalid", "yesterday", nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTime(tt.input, now)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if (got == nil) != (tt.want == nil) || (got != nil && !got.Equal(*tt.want)) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
