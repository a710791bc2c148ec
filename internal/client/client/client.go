// Package client implements the REST client for the remote authentication
// service. Each operation performs exactly one round trip and returns an
// Outcome derived from the HTTP status; callers never see transport errors.
package client

import "context"

type Client interface {
	Login(ctx context.Context, email, password string) Outcome
	Register(ctx context.Context, username, email, password string) Outcome
	VerifyOTP(ctx context.Context, email, code string) Outcome
	ResendOTP(ctx context.Context, email string) Outcome
	SendResetOTP(ctx context.Context, email string) Outcome
	ResetPassword(ctx context.Context, otp, newPassword string) Outcome
}
