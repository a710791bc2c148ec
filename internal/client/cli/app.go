package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mlevkov/authbox/internal/client/client"
	"github.com/mlevkov/authbox/internal/client/config"
	"github.com/mlevkov/authbox/internal/client/session"
	"github.com/mlevkov/authbox/internal/logging"

	_ "modernc.org/sqlite"
)

// Seconds the OTP screen waits before allowing a resend, and seconds the
// verify-account notice shows before redirecting to sign-in.
const (
	resendCooldownSeconds  = 60
	verifyAccountRedirects = 10
)

// errQuit signals that the user asked to leave the program.
var errQuit = errors.New("quit")

// App owns the collaborators every screen needs: the session store, the
// REST client, navigation history, and the notification sink.
type App struct {
	config   *config.Config
	client   client.Client
	store    session.Store
	nav      Navigator
	notifier Notifier
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB

	// submitting gates form submission while a request is outstanding, so
	// one controller never has two round trips in flight.
	submitting bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	return &App{
		config:   cfg,
		client:   client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log),
		store:    session.NewSQLiteStore(db),
		nav:      NewHistory(RouteLogin),
		notifier: NewToastWriter(os.Stdout),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		db:       db,
	}, nil
}

// Run drives the screen loop until the user exits or input reaches EOF.
// A live session found at startup goes straight to the dashboard.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	token, err := a.store.Token(ctx)
	if err != nil {
		a.log.Error(ctx, "session read failed", "error", err)
	}
	if token != "" {
		a.nav.Replace(RouteDashboard)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		route := a.nav.Current()
		switch {
		case route == RouteLogin:
			err = a.Login(ctx)
		case route == RouteRegister:
			err = a.Register(ctx)
		case route == RouteVerify:
			err = a.VerifyOTP(ctx)
		case route == RouteVerifyEmail:
			err = a.VerifyAccount(ctx)
		case route == RouteForgotPassword:
			err = a.SendReset(ctx)
		case route == RouteVerifyPassword:
			err = a.VerifyPassword(ctx)
		case strings.HasPrefix(route, routeResetPasswordPrefix):
			err = a.ResetPassword(ctx)
		case route == RouteDashboard:
			err = a.Dashboard(ctx)
		default:
			a.nav.Replace(RouteLogin)
		}

		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func printlnTo(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}

// showFieldErrors surfaces client-side validation errors inline, one line
// per field. The submission that produced them never left the machine.
func (a *App) showFieldErrors(fields map[string]string) {
	for _, msg := range fieldMessages(fields) {
		_, _ = io.WriteString(a.out, "  - "+msg+"\n")
	}
}

func fieldMessages(fields map[string]string) []string {
	// Deterministic order keeps output stable for tests and for the eye.
	order := []string{"Username", "Email", "Password", "Code", "NewPassword", "ConfirmPassword", "form"}
	msgs := make([]string, 0, len(fields))
	for _, f := range order {
		if m, ok := fields[f]; ok {
			msgs = append(msgs, m)
		}
	}
	for f, m := range fields {
		known := false
		for _, o := range order {
			if f == o {
				known = true
				break
			}
		}
		if !known {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
