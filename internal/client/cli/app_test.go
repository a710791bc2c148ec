package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mlevkov/authbox/internal/client/client"
	"github.com/mlevkov/authbox/internal/logging"
)

// ---- fakes ----

type fakeStore struct {
	token        string
	tokenTTL     time.Duration
	pendingEmail string
	emailTTL     time.Duration
	clearCalled  bool
}

func (f *fakeStore) SetToken(_ context.Context, token string, ttl time.Duration) error {
	f.token, f.tokenTTL = token, ttl
	return nil
}
func (f *fakeStore) Token(context.Context) (string, error) { return f.token, nil }
func (f *fakeStore) ClearToken(context.Context) error      { f.token = ""; return nil }
func (f *fakeStore) SetPendingEmail(_ context.Context, email string, ttl time.Duration) error {
	f.pendingEmail, f.emailTTL = email, ttl
	return nil
}
func (f *fakeStore) PendingEmail(context.Context) (string, error) { return f.pendingEmail, nil }
func (f *fakeStore) ClearPendingEmail(context.Context) error      { f.pendingEmail = ""; return nil }
func (f *fakeStore) Clear(context.Context) error {
	f.token, f.pendingEmail, f.clearCalled = "", "", true
	return nil
}

type fakeAuthClient struct {
	loginOutcome     client.Outcome
	registerOutcome  client.Outcome
	verifyOutcome    client.Outcome
	resendOutcome    client.Outcome
	sendResetOutcome client.Outcome
	resetOutcome     client.Outcome

	loginCalls     int
	registerCalls  int
	verifyCalls    int
	resendCalls    int
	sendResetCalls int
	resetCalls     int

	lastEmail    string
	lastPassword string
	lastUsername string
	lastCode     string
	lastOTP      string
}

func (f *fakeAuthClient) Login(_ context.Context, email, password string) client.Outcome {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	return f.loginOutcome
}
func (f *fakeAuthClient) Register(_ context.Context, username, email, password string) client.Outcome {
	f.registerCalls++
	f.lastUsername, f.lastEmail, f.lastPassword = username, email, password
	return f.registerOutcome
}
func (f *fakeAuthClient) VerifyOTP(_ context.Context, email, code string) client.Outcome {
	f.verifyCalls++
	f.lastEmail, f.lastCode = email, code
	return f.verifyOutcome
}
func (f *fakeAuthClient) ResendOTP(_ context.Context, email string) client.Outcome {
	f.resendCalls++
	f.lastEmail = email
	return f.resendOutcome
}
func (f *fakeAuthClient) SendResetOTP(_ context.Context, email string) client.Outcome {
	f.sendResetCalls++
	f.lastEmail = email
	return f.sendResetOutcome
}
func (f *fakeAuthClient) ResetPassword(_ context.Context, otp, newPassword string) client.Outcome {
	f.resetCalls++
	f.lastOTP, f.lastPassword = otp, newPassword
	return f.resetOutcome
}

type toast struct {
	title       string
	description string
	severity    Severity
}

type fakeNotifier struct {
	toasts []toast
}

func (f *fakeNotifier) Notify(title, description string, severity Severity) {
	f.toasts = append(f.toasts, toast{title, description, severity})
}

func (f *fakeNotifier) last(t *testing.T) toast {
	t.Helper()
	if len(f.toasts) == 0 {
		t.Fatalf("no notifications shown")
	}
	return f.toasts[len(f.toasts)-1]
}

// ---- harness ----

func newTestApp(route string, api *fakeAuthClient, store *fakeStore) (*App, *fakeNotifier, *bytes.Buffer) {
	notifier := &fakeNotifier{}
	out := &bytes.Buffer{}
	a := &App{
		client:   api,
		store:    store,
		nav:      NewHistory(route),
		notifier: notifier,
		log:      logging.NewTextLogger(io.Discard, slog.LevelError),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
	}
	return a, notifier, out
}

// stubPrompts replaces the text-input seam with a queue of canned lines.
// Reading past the end yields EOF, like a closed stdin.
func stubPrompts(t *testing.T, lines ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords does the same for the no-echo password seam.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(passwords) {
			return "", io.EOF
		}
		pw := passwords[i]
		i++
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}
