package cli

import (
	"context"
	"fmt"

	"github.com/mlevkov/authbox/internal/client/session"
)

// Dashboard is the post-login shell. It is a protected screen: the session
// guard runs on mount and the screen goes inert when it fails.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.ensureAuthenticated(ctx) {
		return nil
	}

	a.printSessionInfo(ctx)

	for a.nav.Current() == RouteDashboard {
		cmd, err := getSimpleText(a.reader, "Dashboard: 'whoami', 'logout', or 'exit'", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "whoami", "w":
			if !a.ensureAuthenticated(ctx) {
				return nil
			}
			a.printSessionInfo(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			return errQuit
		case "":
			continue
		default:
			printlnTo(a.out, "Unknown command: "+cmd)
		}
	}
	return nil
}

// printSessionInfo shows what the stored token says about the session.
// The claims are read without verification; display only.
func (a *App) printSessionInfo(ctx context.Context) {
	token, err := a.store.Token(ctx)
	if err != nil || token == "" {
		return
	}
	info, err := session.InspectToken(token)
	if err != nil {
		a.log.Debug(ctx, "stored token is not a parsable JWT", "error", err)
		printlnTo(a.out, "Signed in.")
		return
	}
	line := "Signed in"
	if info.Subject != "" {
		line = fmt.Sprintf("%s as %s", line, info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		line = fmt.Sprintf("%s, session expires %s", line, info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	printlnTo(a.out, line+".")
}

// Logout clears the persisted session and returns to sign-in.
func (a *App) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		a.notifier.Notify("Error", "Could not clear your session. Please try again.", SeverityDestructive)
		return
	}
	a.nav.Replace(RouteLogin)
	a.notifier.Notify("Logout Success", "You have successfully logged out", SeveritySuccess)
}
