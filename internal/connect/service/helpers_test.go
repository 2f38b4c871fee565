package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/mail"
	"github.com/aussiebroadwan/connect/internal/connect/store/drivers/sqlite"
	"github.com/aussiebroadwan/connect/internal/dependencies/mocks"
	"github.com/aussiebroadwan/connect/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	return m.sent[len(m.sent)-1]
}

type fixture struct {
	store  *sqlite.Store
	clock  *mocks.MockClock
	tokens *TokenService
	otp    *cryptox.Codec
	mailer *recordingMailer
	reg    *RegistrationService
	prof   *ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clk := mocks.NewMockClock(time.Unix(1700000000, 0).UTC())

	otpCodec, err := cryptox.NewCodec("otp", bytes.Repeat([]byte{1}, 32), 24*time.Hour, cryptox.WithClock(clk.Now))
	require.NoError(t, err)
	tokenCodec, err := cryptox.NewCodec("token", bytes.Repeat([]byte{2}, 32), 7*24*time.Hour, cryptox.WithClock(clk.Now))
	require.NoError(t, err)

	tpl, err := mail.NewTemplates()
	require.NoError(t, err)

	tokens := &TokenService{Codec: tokenCodec}
	mailer := &recordingMailer{}

	return &fixture{
		store:  st,
		clock:  clk,
		tokens: tokens,
		otp:    otpCodec,
		mailer: mailer,
		reg: &RegistrationService{
			Store:     st,
			Tokens:    tokens,
			OTPCodec:  otpCodec,
			Mailer:    mailer,
			Templates: tpl,
			Address:   InstitutionalAddress{Domain: DefaultMailDomain},
			Validator: MustNewValidator(DefaultRegNoPattern),
			Passwords: cryptox.PasswordHasher{Pepper: "pepper"},
			From:      "Connect ++ <no-reply@muj.manipal.edu>",
			OTP:       func() (string, error) { return "aB3dE5gH7j", nil },
		},
		prof: &ProfileService{Store: st},
	}
}

func validSignUp() SignUpRequest {
	return SignUpRequest{Firstname: "Asha", Lastname: "Rao", Regno: "21BCE1111", Password: "hunter2"}
}
