package cli

import (
	"context"

	"github.com/mlevkov/authbox/internal/client/client"
	"github.com/mlevkov/authbox/internal/client/session"
)

// Register drives the account-creation screen.
func (a *App) Register(ctx context.Context) error {
	for a.nav.Current() == RouteRegister {
		cmd, err := getSimpleText(a.reader, "Create an Account: 'register', 'later', 'back', or 'exit'", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "register", "r", "":
			if err := a.submitRegister(ctx); err != nil {
				return err
			}
		case "later":
			// The user wants to finish verification from the emailed link.
			a.nav.Navigate(RouteVerifyEmail)
		case "back", "b":
			a.nav.Navigate(RouteLogin)
		case "exit", "quit":
			return errQuit
		default:
			printlnTo(a.out, "Unknown command: "+cmd)
		}
	}
	return nil
}

func (a *App) submitRegister(ctx context.Context) error {
	if a.submitting {
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter your username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter your password", a.out)
	if err != nil {
		return err
	}

	if fields := checkForm(registerForm{Username: username, Email: email, Password: password}); fields != nil {
		a.showFieldErrors(fields)
		return nil
	}

	a.submitting = true
	outcome := a.client.Register(ctx, username, email, password)
	a.submitting = false

	if a.nav.Current() != RouteRegister {
		return nil
	}

	switch outcome.Kind {
	case client.KindSuccess:
		// Remember which account the upcoming OTP belongs to. The address
		// stays readable by the verify screen for a day.
		if err := a.store.SetPendingEmail(ctx, email, session.PendingEmailTTL); err != nil {
			a.log.Error(ctx, "failed to persist pending email", "error", err)
		}
		a.notifier.Notify("Success", "Please check your email and verify your account.", SeveritySuccess)
		a.nav.Navigate(RouteVerify)
	case client.KindForbidden:
		a.nav.Navigate(RouteVerify)
		a.notifier.Notify("Registration Error", "Your email address has not been verified. Please check your inbox for the verification email or resend it.", SeverityDestructive)
	case client.KindConflict:
		a.notifier.Notify("Registration Error", "The email address you provided is already registered and verified. Please try logging in or use a different email address.", SeverityDestructive)
	default:
		a.notifier.Notify("Something Went Wrong", "An unexpected error occurred during registration. Please try again later.", SeverityDestructive)
	}
	return nil
}
