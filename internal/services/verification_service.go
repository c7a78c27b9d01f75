package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marquesa/internal/domain"
	"marquesa/internal/utils"
)

const (
	codeTTL        = 10 * time.Minute
	resendCooldown = 60 * time.Second
	maxVerifyTries = 5
	sendTimeout    = 30 * time.Second
)

// VerificationState describes where an email sits in the resend cycle.
type VerificationState string

const (
	StateIdle        VerificationState = "idle"
	StateCoolingDown VerificationState = "coolingDown"
	StateReady       VerificationState = "ready"
)

// Mailer delivers a verification code. The context carries the send
// deadline; implementations must honor cancellation.
type Mailer interface {
	Send(ctx context.Context, email, code string) error
}

// LogMailer is the default delivery used outside production wiring.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, email, code string) error {
	utils.LogEvent("", "email", "send_code", fmt.Sprintf("email=%s code=%s", email, code))
	return nil
}

type codeEntry struct {
	hash     []byte
	sentAt   time.Time
	expires  time.Time
	attempts int
}

// VerificationService issues and checks email verification codes. The
// code store is owned by the service instance, never package state, so
// tests can run isolated instances side by side.
type VerificationService struct {
	Mailer Mailer

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	mu    sync.Mutex
	codes map[string]*codeEntry
}

func NewVerificationService(mailer Mailer) *VerificationService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &VerificationService{
		Mailer: mailer,
		codes:  map[string]*codeEntry{},
	}
}

func (s *VerificationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// State reports the resend cycle position for an email.
func (s *VerificationService) State(email string) VerificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, okk := s.codes[email]
	if !okk {
		return StateIdle
	}
	if s.now().Sub(entry.sentAt) < resendCooldown {
		return StateCoolingDown
	}
	return StateReady
}

// Request issues a fresh code and mails it. Within the resend cooldown
// the request is rejected with a conflict. The send itself is bounded
// by a 30s deadline; a slow mailer is cancelled, not abandoned.
func (s *VerificationService) Request(ctx context.Context, email string) error {
	email = utils.TrimOrEmpty(email)
	if email == "" {
		return domain.ValidationError{Field: "email", Msg: "el correo es obligatorio"}
	}

	s.mu.Lock()
	if entry, okk := s.codes[email]; okk {
		if remaining := resendCooldown - s.now().Sub(entry.sentAt); remaining > 0 {
			s.mu.Unlock()
			return domain.ConflictError{
				Resource: "verificación",
				Msg:      fmt.Sprintf("espera %d segundos antes de reenviar", int(remaining.Seconds())+1),
			}
		}
	}
	s.mu.Unlock()

	code, err := generateCode()
	if err != nil {
		return domain.InternalError{Msg: "no se pudo generar el código", Err: err}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "no se pudo proteger el código", Err: err}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := s.Mailer.Send(sendCtx, email, code); err != nil {
		return domain.InternalError{Msg: "no se pudo enviar el correo de verificación", Err: err}
	}

	now := s.now()
	s.mu.Lock()
	s.codes[email] = &codeEntry{hash: hash, sentAt: now, expires: now.Add(codeTTL)}
	s.mu.Unlock()

	utils.LogEvent("", "email", "request_code", "email="+email)
	return nil
}

// Verify consumes a code. Expired entries are dropped, and five wrong
// attempts burn the code.
func (s *VerificationService) Verify(email, code string) error {
	email = utils.TrimOrEmpty(email)
	code = utils.TrimOrEmpty(code)
	if email == "" || code == "" {
		return domain.ValidationError{Field: "code", Msg: "correo y código son obligatorios"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, okk := s.codes[email]
	if !okk {
		return domain.ValidationError{Field: "code", Msg: "no hay un código pendiente para este correo"}
	}
	if s.now().After(entry.expires) {
		delete(s.codes, email)
		return domain.ValidationError{Field: "code", Msg: "el código expiró, solicita uno nuevo"}
	}
	if entry.attempts >= maxVerifyTries {
		delete(s.codes, email)
		return domain.ConflictError{Resource: "verificación", Msg: "demasiados intentos, solicita un código nuevo"}
	}

	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(code)); err != nil {
		entry.attempts++
		return domain.ValidationError{Field: "code", Msg: "el código no es válido"}
	}

	delete(s.codes, email)
	utils.LogEvent("", "email", "verify_code", "email="+email)
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
