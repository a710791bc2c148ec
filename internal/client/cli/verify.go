package cli

import (
	"context"
	"fmt"

	"github.com/mlevkov/authbox/internal/client/client"
)

// VerifyOTP drives the one-time-code screen. A resend cooldown starts when
// the screen mounts and is released on every exit path.
func (a *App) VerifyOTP(ctx context.Context) error {
	email, err := a.store.PendingEmail(ctx)
	if err != nil {
		a.log.Error(ctx, "session read failed", "error", err)
	}
	if email == "" {
		// The pending address expired or was never stored; the screen
		// cannot identify the account without re-entry.
		email, err = a.recoverPendingEmail(ctx)
		if err != nil {
			return err
		}
		if email == "" {
			return nil
		}
	}

	cooldown := NewCooldown(resendCooldownSeconds)
	cooldown.Start()
	defer cooldown.Stop()

	for a.nav.Current() == RouteVerify {
		prompt := fmt.Sprintf("Verify OTP for %s: enter the 6-digit code, 'resend', 'back', or 'exit'", email)
		if !cooldown.Ready() {
			prompt = fmt.Sprintf("%s (resend available in %d seconds)", prompt, cooldown.Remaining())
		}

		input, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch input {
		case "":
			continue
		case "resend":
			a.resendOTP(ctx, email, cooldown)
		case "back", "b":
			a.nav.Navigate(RouteLogin)
		case "exit", "quit":
			return errQuit
		default:
			a.submitOTP(ctx, email, input)
		}
	}
	return nil
}

// recoverPendingEmail prompts the user for the address the OTP was sent to.
// An empty or invalid entry sends the user back to sign-in.
func (a *App) recoverPendingEmail(ctx context.Context) (string, error) {
	printlnTo(a.out, "No pending verification found.")
	email, err := getSimpleText(a.reader, "Enter the email you registered with (empty to cancel)", a.out)
	if err != nil {
		return "", err
	}
	if email == "" {
		a.nav.Replace(RouteLogin)
		return "", nil
	}
	if fields := checkForm(emailForm{Email: email}); fields != nil {
		a.showFieldErrors(fields)
		a.nav.Replace(RouteLogin)
		return "", nil
	}
	return email, nil
}

func (a *App) submitOTP(ctx context.Context, email, code string) {
	if a.submitting {
		return
	}

	if fields := checkForm(otpForm{Code: code}); fields != nil {
		a.showFieldErrors(fields)
		return
	}

	a.submitting = true
	outcome := a.client.VerifyOTP(ctx, email, code)
	a.submitting = false

	if a.nav.Current() != RouteVerify {
		return
	}

	switch outcome.Kind {
	case client.KindSuccess:
		a.notifier.Notify("Success", "OTP verified successfully.", SeveritySuccess)
		a.nav.Navigate(RouteLogin)
		if err := a.store.ClearPendingEmail(ctx); err != nil {
			a.log.Error(ctx, "failed to clear pending email", "error", err)
		}
	case client.KindInvalidInput:
		// The pending email stays stored so the user can try again.
		a.notifier.Notify("Error", "Your OTP is invalid.", SeverityDestructive)
	default:
		a.notifier.Notify("Error", messageOr(outcome, "Something went wrong. Please try again."), SeverityDestructive)
	}
}

// resendOTP asks the server for a fresh code. Allowed only once the
// cooldown has run out; success rearms it.
func (a *App) resendOTP(ctx context.Context, email string, cooldown *Cooldown) {
	if !cooldown.Ready() {
		printlnTo(a.out, fmt.Sprintf("Resend OTP in %d seconds", cooldown.Remaining()))
		return
	}
	if a.submitting {
		return
	}

	a.submitting = true
	outcome := a.client.ResendOTP(ctx, email)
	a.submitting = false

	if outcome.Success() {
		a.notifier.Notify("Success", "OTP has been resent to your email.", SeveritySuccess)
		cooldown.Reset(resendCooldownSeconds)
		return
	}
	a.notifier.Notify("Error", messageOr(outcome, "Failed to resend OTP"), SeverityDestructive)
}

func messageOr(o client.Outcome, fallback string) string {
	if o.Message != "" {
		return o.Message
	}
	return fallback
}
