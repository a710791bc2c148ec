package cli

import (
	"context"

	"github.com/mlevkov/authbox/internal/client/client"
	"github.com/mlevkov/authbox/internal/client/session"
)

// Login drives the sign-in screen. The loop runs until the user navigates
// away or quits; every submission is one round trip with no retry.
func (a *App) Login(ctx context.Context) error {
	for a.nav.Current() == RouteLogin {
		cmd, err := getSimpleText(a.reader, "Sign In: 'login', 'register', 'forgot', or 'exit'", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "login", "l", "":
			if err := a.submitLogin(ctx); err != nil {
				return err
			}
		case "register", "r":
			a.nav.Navigate(RouteRegister)
		case "forgot", "f":
			a.nav.Navigate(RouteForgotPassword)
		case "exit", "quit":
			return errQuit
		default:
			printlnTo(a.out, "Unknown command: "+cmd)
		}
	}
	return nil
}

func (a *App) submitLogin(ctx context.Context) error {
	if a.submitting {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter your password", a.out)
	if err != nil {
		return err
	}

	if fields := checkForm(loginForm{Email: email, Password: password}); fields != nil {
		a.showFieldErrors(fields)
		return nil
	}

	a.submitting = true
	outcome := a.client.Login(ctx, email, password)
	a.submitting = false

	// A response landing after the user already left the screen is dropped.
	if a.nav.Current() != RouteLogin {
		return nil
	}

	switch outcome.Kind {
	case client.KindSuccess:
		if err := a.store.SetToken(ctx, outcome.Token, session.TokenTTL); err != nil {
			a.log.Error(ctx, "failed to persist session token", "error", err)
			a.notifier.Notify("Uh oh! Something went wrong.", "Could not save your session. Please try again.", SeverityDestructive)
			return nil
		}
		a.notifier.Notify("Success", "Login successful. Redirecting to the dashboard.", SeveritySuccess)
		a.nav.Navigate(RouteDashboard)
	case client.KindInvalidCredentials:
		a.notifier.Notify("Login Error", "Invalid email or password. Please try again.", SeverityDestructive)
	case client.KindForbidden:
		// The account exists but is unverified; verification comes first.
		a.nav.Navigate(RouteVerify)
		a.notifier.Notify("Login Error", "Please verify your email first.", SeverityDestructive)
	default:
		a.notifier.Notify("Uh oh! Something went wrong.", "Email or password is incorrect. Please try again.", SeverityDestructive)
	}
	return nil
}
