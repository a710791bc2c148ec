package client

// Kind classifies the result of an authentication call. Controllers switch
// on it exhaustively to decide the next screen transition; no transport
// detail leaks past this type.
type Kind int

const (
	// KindSuccess: the server accepted the request (any 2xx).
	KindSuccess Kind = iota

	// KindInvalidCredentials: login rejected with 401.
	KindInvalidCredentials

	// KindForbidden: 403. For login/register the account is unverified;
	// for send-reset-otp the email is not registered.
	KindForbidden

	// KindConflict: 409, the address is already registered and verified.
	KindConflict

	// KindInvalidInput: 400, the submitted one-time code was rejected.
	KindInvalidInput

	// KindServerError: any other failure, including no response at all.
	KindServerError
)

// Outcome is the classified result of one authentication round trip.
//
// Token is set on a successful login. Message carries the server-supplied
// message when one was present, otherwise a short canned reason. Fields
// holds per-field errors when the server returned them.
type Outcome struct {
	Kind    Kind
	Token   string
	Message string
	Fields  map[string]string
}

// Success reports whether the call was accepted by the server.
func (o Outcome) Success() bool {
	return o.Kind == KindSuccess
}
