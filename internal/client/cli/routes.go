package cli

import (
	"strings"
	"sync"
)

// Screen routes. The identifiers match the paths of the web application so
// logs and tests read the same across both clients.
const (
	RouteLogin          = "/"
	RouteRegister       = "/register"
	RouteVerify         = "/verify"
	RouteVerifyEmail    = "/verify-email"
	RouteForgotPassword = "/forgot-password"
	RouteVerifyPassword = "/verify-password"
	RouteDashboard      = "/dashboard"
)

const routeResetPasswordPrefix = "/reset-password/"

// ResetPasswordRoute builds the reset-password route carrying the one-time
// code as a path parameter.
func ResetPasswordRoute(otp string) string {
	return routeResetPasswordPrefix + otp
}

// resetPasswordOTP extracts the code from a reset-password route.
func resetPasswordOTP(route string) (string, bool) {
	if !strings.HasPrefix(route, routeResetPasswordPrefix) {
		return "", false
	}
	return strings.TrimPrefix(route, routeResetPasswordPrefix), true
}

// Navigator is the navigation collaborator: screens hand it a target route
// and it transitions the visible view.
type Navigator interface {
	// Navigate pushes a new history entry.
	Navigate(route string)

	// Replace swaps the current history entry. Replacing with the route
	// already on top is a no-op, so guards may fire more than once without
	// corrupting history.
	Replace(route string)

	// Current returns the route on top of the history.
	Current() string
}

// History is the in-process Navigator used by the terminal client.
type History struct {
	mu    sync.Mutex
	stack []string
}

func NewHistory(start string) *History {
	return &History{stack: []string{start}}
}

func (h *History) Navigate(route string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, route)
}

func (h *History) Replace(route string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stack[len(h.stack)-1] == route {
		return
	}
	h.stack[len(h.stack)-1] = route
}

func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stack[len(h.stack)-1]
}

// Len reports the history depth; used to verify guards do not stack entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}
