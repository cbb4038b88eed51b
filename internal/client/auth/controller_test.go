package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/flowgate/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls []string

	token string
	err   error

	// during runs inside the backend call, before it returns
	during func()
	panicV any
}

func (f *fakeBackend) hit(call string) {
	f.calls = append(f.calls, call)
	if f.during != nil {
		f.during()
	}
	if f.panicV != nil {
		panic(f.panicV)
	}
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (string, error) {
	f.hit(fmt.Sprintf("login %s/%s", email, password))
	return f.token, f.err
}

func (f *fakeBackend) InitiateRegistration(_ context.Context, email string) error {
	f.hit("initiate " + email)
	return f.err
}

func (f *fakeBackend) VerifyRegistration(_ context.Context, email, otp, password string) (string, error) {
	f.hit(fmt.Sprintf("verify %s/%s/%s", email, otp, password))
	return f.token, f.err
}

type fakeSession struct {
	tokens []string
	err    error
}

func (f *fakeSession) Set(_ context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	f.tokens = append(f.tokens, token)
	return nil
}

func newTestController(b *fakeBackend, s *fakeSession) *Controller {
	return NewController(b, s, nil)
}

func fillLogin(c *Controller, email, password string) {
	c.Dispatch(FieldChanged{Field: FieldLoginEmail, Value: email})
	c.Dispatch(FieldChanged{Field: FieldLoginPassword, Value: password})
}

func TestController_LoginSuccessStoresSession(t *testing.T) {
	b := &fakeBackend{token: "tok-1"}
	s := &fakeSession{}
	c := newTestController(b, s)

	fillLogin(c, "a@b.com", "secret")
	st := c.Submit(context.Background())

	assert.Equal(t, []string{"login a@b.com/secret"}, b.calls)
	assert.Equal(t, []string{"tok-1"}, s.tokens)
	assert.Equal(t, PhaseSucceeded, st.Login.Phase())
	assert.False(t, st.Loading())
}

func TestController_ValidationSkipsBackend(t *testing.T) {
	b := &fakeBackend{token: "tok"}
	s := &fakeSession{}
	c := newTestController(b, s)

	fillLogin(c, "a@b.com", "")
	st := c.Submit(context.Background())

	assert.Empty(t, b.calls)
	assert.Empty(t, s.tokens)
	assert.Equal(t, MsgFillAllFields, st.Login.Error)
}

func TestController_LoginFailureIsGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unauthorized", &client.APIError{StatusCode: 401, Message: "bad password for a@b.com"}},
		{"network", fmt.Errorf("%w: connection refused", client.ErrUnavailable)},
		{"server", &client.APIError{StatusCode: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{err: tt.err}
			s := &fakeSession{}
			c := newTestController(b, s)

			fillLogin(c, "a@b.com", "secret")
			st := c.Submit(context.Background())

			assert.Equal(t, MsgInvalidCredentials, st.Login.Error)
			assert.False(t, st.Login.Loading)
			assert.Empty(t, s.tokens)
		})
	}
}

func TestController_EmptyTokenIsFailure(t *testing.T) {
	b := &fakeBackend{}
	s := &fakeSession{}
	c := newTestController(b, s)

	fillLogin(c, "a@b.com", "secret")
	st := c.Submit(context.Background())

	assert.Equal(t, MsgInvalidCredentials, st.Login.Error)
	assert.Empty(t, s.tokens)
}

func TestController_RegistrationFlow(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	s := &fakeSession{}
	c := newTestController(b, s)

	c.SelectTab(TabRegister)
	c.Dispatch(FieldChanged{Field: FieldEmail, Value: "a@b.com"})
	st := c.Submit(ctx)
	require.Equal(t, StepOTPPending, st.Wizard.Step)
	assert.Equal(t, fmt.Sprintf(MsgOTPSent, "a@b.com"), st.Wizard.Success)
	assert.Empty(t, s.tokens, "initiate does not sign in")

	c.Dispatch(FieldChanged{Field: FieldOTP, Value: "12-34-56"})
	st = c.Submit(ctx)
	require.Equal(t, StepPasswordSetup, st.Wizard.Step)
	assert.Len(t, b.calls, 1, "otp step is local")

	c.Dispatch(FieldChanged{Field: FieldPassword, Value: "abcdef"})
	c.Dispatch(FieldChanged{Field: FieldConfirmPassword, Value: "abcdef"})
	b.token = "tok-reg"
	st = c.Submit(ctx)

	assert.Equal(t, []string{"initiate a@b.com", "verify a@b.com/123456/abcdef"}, b.calls)
	assert.Equal(t, []string{"tok-reg"}, s.tokens)
	assert.True(t, st.Wizard.Done)
}

func TestController_VerifyOTPErrorRestartsWizard(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	c := newTestController(b, &fakeSession{})

	c.SelectTab(TabRegister)
	c.Dispatch(FieldChanged{Field: FieldEmail, Value: "a@b.com"})
	c.Submit(ctx)
	c.Dispatch(FieldChanged{Field: FieldOTP, Value: "123456"})
	c.Submit(ctx)
	c.Dispatch(FieldChanged{Field: FieldPassword, Value: "abcdef"})
	c.Dispatch(FieldChanged{Field: FieldConfirmPassword, Value: "abcdef"})

	b.err = &client.APIError{StatusCode: 400, Message: "OTP expired"}
	st := c.Submit(ctx)

	assert.Equal(t, Wizard{Step: StepEmailEntry, Email: "a@b.com", Error: "OTP expired"}, st.Wizard)
}

func TestController_VerifyNetworkErrorFallsBackAndRestarts(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	c := newTestController(b, &fakeSession{})

	c.SelectTab(TabRegister)
	c.Dispatch(FieldChanged{Field: FieldEmail, Value: "a@b.com"})
	c.Submit(ctx)
	c.Dispatch(FieldChanged{Field: FieldOTP, Value: "123456"})
	c.Submit(ctx)
	c.Dispatch(FieldChanged{Field: FieldPassword, Value: "abcdef"})
	c.Dispatch(FieldChanged{Field: FieldConfirmPassword, Value: "abcdef"})

	b.err = fmt.Errorf("%w: timeout", client.ErrUnavailable)
	st := c.Submit(ctx)

	assert.Equal(t, StepEmailEntry, st.Wizard.Step)
	assert.Equal(t, MsgVerifyFailed, st.Wizard.Error)
}

func TestController_TabSwitchDuringRequestDiscardsResult(t *testing.T) {
	b := &fakeBackend{token: "late"}
	s := &fakeSession{}
	c := newTestController(b, s)
	b.during = func() { c.SelectTab(TabRegister) }

	fillLogin(c, "a@b.com", "secret")
	st := c.Submit(context.Background())

	assert.Len(t, b.calls, 1)
	assert.Empty(t, s.tokens, "stale success must not sign in")
	assert.Equal(t, TabRegister, st.Tab)
	assert.Equal(t, LoginForm{}, st.Login)
	assert.False(t, st.Loading())
}

func TestController_TabSwitchDuringFailingRequest(t *testing.T) {
	b := &fakeBackend{err: errors.New("boom")}
	c := newTestController(b, &fakeSession{})
	b.during = func() { c.Reset() }

	fillLogin(c, "a@b.com", "secret")
	st := c.Submit(context.Background())

	assert.Equal(t, LoginForm{}, st.Login, "stale failure must not show an error")
}

func TestController_SessionSaveFailure(t *testing.T) {
	b := &fakeBackend{token: "tok"}
	c := newTestController(b, &fakeSession{err: errors.New("disk full")})

	fillLogin(c, "a@b.com", "secret")
	st := c.Submit(context.Background())

	assert.False(t, st.Login.Done)
	assert.False(t, st.Login.Loading)
	assert.Equal(t, MsgSessionSaveFailed, st.Login.Error)
}

func TestController_PanicClearsLoading(t *testing.T) {
	b := &fakeBackend{panicV: "kaboom"}
	c := newTestController(b, &fakeSession{})

	fillLogin(c, "a@b.com", "secret")
	assert.PanicsWithValue(t, "kaboom", func() { c.Submit(context.Background()) })

	st := c.State()
	assert.False(t, st.Loading())
	assert.Equal(t, MsgInvalidCredentials, st.Login.Error)
}

func TestController_SelectSameTabKeepsForm(t *testing.T) {
	c := newTestController(&fakeBackend{}, &fakeSession{})
	fillLogin(c, "a@b.com", "secret")

	st := c.SelectTab(TabSignIn)
	assert.Equal(t, "a@b.com", st.Login.Email)
	assert.Zero(t, st.Generation)

	st = c.SelectTab(TabRegister)
	assert.Equal(t, uint64(1), st.Generation)
	assert.Empty(t, st.Login.Email)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"validation", &ValidationError{Message: MsgEnterEmail}, KindValidation},
		{"network", fmt.Errorf("%w: dial tcp", client.ErrUnavailable), KindNetwork},
		{"unauthorized", &client.APIError{StatusCode: 401}, KindAuth},
		{"forbidden", &client.APIError{StatusCode: 403, Message: "otp"}, KindAuth},
		{"otp", &client.APIError{StatusCode: 400, Message: "OTP expired"}, KindOTP},
		{"server", &client.APIError{StatusCode: 500, Message: "oops"}, KindServer},
		{"missing token", client.ErrMissingToken, KindServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
