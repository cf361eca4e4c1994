package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
	"assistente_juridico/internal/domain/validation"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrRegistrationNotFound   = errors.New("registration not found")
	ErrRegistrationCompleted  = errors.New("registration already completed")
	ErrWrongStep              = errors.New("operation not allowed at the current step")
	ErrProfileInvalid         = errors.New("profile invalid")
	ErrUnknownLicense         = errors.New("unknown license type")
	ErrPaymentIntentNotReady  = errors.New("payment intent not ready")
	ErrCardInvalid            = errors.New("card details invalid")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// ProfileError carries the step-one fields that failed validation.
type ProfileError struct {
	Fields []string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProfileInvalid, strings.Join(e.Fields, ", "))
}

func (e *ProfileError) Is(target error) bool { return target == ErrProfileInvalid }

// ProfilePatch carries the step-one fields a client changed; nil fields are left as is.
type ProfilePatch struct {
	FullName *string
	Email    *string
	CPF      *string
	OAB      *string
	OABState *string
	Password *string
}

// IRegistrationUseCase drives the two-step signup wizard.
//
//	collecting_profile --Advance--> selecting_license --ConfirmPayment--> completed
//
// Selecting a tier records it right away and then asks for a payment intent. The
// result of that request is kept on the session, including failures, which can be
// retried. Confirmation creates the Lawyer account and fires at most once.
type IRegistrationUseCase interface {
	Start(ctx context.Context) (entities.RegistrationSession, error)
	Get(ctx context.Context, id string) (entities.RegistrationSession, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (entities.RegistrationSession, error)
	Advance(ctx context.Context, id string) (entities.RegistrationSession, error)
	SelectLicense(ctx context.Context, id string, tier entities.LicenseType) (entities.RegistrationSession, error)
	RetryPaymentIntent(ctx context.Context, id string) (entities.RegistrationSession, error)
	ConfirmPayment(ctx context.Context, id string, card *validation.CardDetails) (entities.RegistrationSession, error)
}

type RegistrationUseCase struct {
	// mu serialises every read-modify-write of a session.
	mu           sync.Mutex
	sessions     interfaces.IRegistrationRepository
	lawyers      interfaces.ILawyerRepository
	payments     interfaces.IPaymentRepository
	intents      IPaymentIntentUseCase
	now          func() time.Time
	hashPassword func(string) (string, error)
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(
	sessions interfaces.IRegistrationRepository,
	lawyers interfaces.ILawyerRepository,
	payments interfaces.IPaymentRepository,
	intents IPaymentIntentUseCase,
) *RegistrationUseCase {
	return &RegistrationUseCase{
		sessions:     sessions,
		lawyers:      lawyers,
		payments:     payments,
		intents:      intents,
		now:          time.Now,
		hashPassword: hashPassword,
	}
}

func (u *RegistrationUseCase) Start(ctx context.Context) (entities.RegistrationSession, error) {
	s := entities.RegistrationSession{
		ID:        uuid.NewString(),
		Step:      entities.StepCollectingProfile,
		Form:      entities.RegistrationForm{LicenseType: entities.LicensePro},
		CreatedAt: u.now().UTC(),
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.RegistrationSession{}, err
	}
	zap.L().Info("[registration][usecase] started", zap.String("registration_id", s.ID))
	return s, nil
}

func (u *RegistrationUseCase) Get(ctx context.Context, id string) (entities.RegistrationSession, error) {
	return u.load(ctx, id)
}

func (u *RegistrationUseCase) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (entities.RegistrationSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	if s.Step != entities.StepCollectingProfile {
		return entities.RegistrationSession{}, u.stepError(s)
	}

	f := &s.Form
	if patch.FullName != nil {
		f.FullName = *patch.FullName
	}
	if patch.Email != nil {
		f.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.CPF != nil {
		f.CPF = format.CPF(*patch.CPF)
	}
	if patch.OAB != nil {
		f.OAB = format.OAB(*patch.OAB)
	}
	if patch.OABState != nil {
		f.OABState = strings.ToUpper(strings.TrimSpace(*patch.OABState))
	}
	if patch.Password != nil {
		f.Password = *patch.Password
	}

	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.RegistrationSession{}, err
	}
	return s, nil
}

func (u *RegistrationUseCase) Advance(ctx context.Context, id string) (entities.RegistrationSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	if s.Step != entities.StepCollectingProfile {
		return entities.RegistrationSession{}, u.stepError(s)
	}
	if fields := validation.ProfileReport(s.Form); len(fields) > 0 {
		zap.L().Info("[registration][usecase] advance blocked",
			zap.String("registration_id", id), zap.Strings("invalid_fields", fields))
		return entities.RegistrationSession{}, &ProfileError{Fields: fields}
	}

	s.Step = entities.StepSelectingLicense
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.RegistrationSession{}, err
	}
	zap.L().Info("[registration][usecase] advanced to license selection", zap.String("registration_id", id))
	return s, nil
}

func (u *RegistrationUseCase) SelectLicense(ctx context.Context, id string, tier entities.LicenseType) (entities.RegistrationSession, error) {
	lic, ok := entities.LicenseByType(tier)
	if !ok {
		return entities.RegistrationSession{}, ErrUnknownLicense
	}

	u.mu.Lock()
	s, err := u.load(ctx, id)
	if err == nil && s.Step != entities.StepSelectingLicense {
		err = u.stepError(s)
	}
	if err != nil {
		u.mu.Unlock()
		return entities.RegistrationSession{}, err
	}
	s.Form.LicenseType = tier
	s.PaymentIntent = &entities.PaymentIntentResult{Status: entities.PaymentIntentRequesting, LicenseType: tier}
	err = u.sessions.Save(ctx, s)
	u.mu.Unlock()
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	zap.L().Info("[registration][usecase] license selected",
		zap.String("registration_id", id), zap.String("license", string(tier)))

	return u.requestIntent(ctx, id, lic)
}

func (u *RegistrationUseCase) RetryPaymentIntent(ctx context.Context, id string) (entities.RegistrationSession, error) {
	u.mu.Lock()
	s, err := u.load(ctx, id)
	if err == nil && s.Step != entities.StepSelectingLicense {
		err = u.stepError(s)
	}
	if err == nil && (s.PaymentIntent == nil || s.PaymentIntent.Status != entities.PaymentIntentFailed || !s.PaymentIntent.Retryable) {
		err = ErrWrongStep
	}
	if err != nil {
		u.mu.Unlock()
		return entities.RegistrationSession{}, err
	}
	tier := s.Form.LicenseType
	s.PaymentIntent = &entities.PaymentIntentResult{Status: entities.PaymentIntentRequesting, LicenseType: tier}
	err = u.sessions.Save(ctx, s)
	u.mu.Unlock()
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	zap.L().Info("[registration][usecase] retrying payment intent", zap.String("registration_id", id))

	lic, _ := entities.LicenseByType(tier)
	return u.requestIntent(ctx, id, lic)
}

// requestIntent runs outside the session lock. The result is only recorded when the
// session still waits for this tier; a newer selection wins.
func (u *RegistrationUseCase) requestIntent(ctx context.Context, id string, lic entities.LicenseTier) (entities.RegistrationSession, error) {
	res := u.intents.Request(ctx, lic.PriceCents, "Assinatura "+lic.Name)
	res.LicenseType = lic.ID
	if res.Status == entities.PaymentIntentFailed {
		zap.L().Warn("[registration][usecase] payment intent failed",
			zap.String("registration_id", id), zap.String("license", string(lic.ID)), zap.String("reason", res.Reason))
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	pending := s.PaymentIntent
	if s.Step != entities.StepSelectingLicense || pending == nil ||
		pending.Status != entities.PaymentIntentRequesting || pending.LicenseType != lic.ID {
		return s, nil
	}
	s.PaymentIntent = &res
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.RegistrationSession{}, err
	}
	return s, nil
}

func (u *RegistrationUseCase) ConfirmPayment(ctx context.Context, id string, card *validation.CardDetails) (entities.RegistrationSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	if s.Step != entities.StepSelectingLicense {
		return entities.RegistrationSession{}, u.stepError(s)
	}
	pi := s.PaymentIntent
	if pi == nil || pi.Status != entities.PaymentIntentReady || pi.Intent == nil || pi.LicenseType != s.Form.LicenseType {
		return entities.RegistrationSession{}, ErrPaymentIntentNotReady
	}
	if card != nil && !validation.CardValid(card.Normalize()) {
		return entities.RegistrationSession{}, ErrCardInvalid
	}

	existing, err := u.lawyers.GetByEmail(ctx, s.Form.Email)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	if existing.ID != "" {
		return entities.RegistrationSession{}, ErrEmailAlreadyRegistered
	}

	hash, err := u.hashPassword(s.Form.Password)
	if err != nil {
		return entities.RegistrationSession{}, err
	}

	now := u.now().UTC()
	lawyer := entities.Lawyer{
		ID:               uuid.NewString(),
		FullName:         strings.TrimSpace(s.Form.FullName),
		Email:            s.Form.Email,
		CPF:              s.Form.CPF,
		OABNumber:        s.Form.OAB,
		OABState:         s.Form.OABState,
		SubscriptionTier: s.Form.LicenseType,
		PasswordHash:     hash,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.lawyers.Create(ctx, lawyer); err != nil {
		zap.L().Error("[registration][usecase] lawyer create failed", zap.String("registration_id", id), zap.Error(err))
		return entities.RegistrationSession{}, err
	}

	payment := newApprovedPayment(lawyer.ID, entities.PaymentPurposeSubscription, s.Form.LicenseType, *pi.Intent, now)
	if _, err := u.payments.Create(ctx, payment); err != nil {
		zap.L().Error("[registration][usecase] payment create failed", zap.String("registration_id", id), zap.Error(err))
		u.rollbackLawyer(ctx, id, lawyer.ID)
		return entities.RegistrationSession{}, err
	}

	done := s
	done.Step = entities.StepCompleted
	done.LawyerID = lawyer.ID
	done.CompletedAt = &now
	done.Form.Password = ""
	if err := u.sessions.Save(ctx, done); err != nil {
		zap.L().Error("[registration][usecase] session save failed", zap.String("registration_id", id), zap.Error(err))
		u.rollbackLawyer(ctx, id, lawyer.ID)
		return entities.RegistrationSession{}, err
	}
	s = done
	zap.L().Info("[registration][usecase] completed",
		zap.String("registration_id", id), zap.String("lawyer_id", lawyer.ID), zap.String("license", string(s.Form.LicenseType)))
	return s, nil
}

// rollbackLawyer removes an account whose registration could not be finished,
// so the session can be confirmed again with the same email.
func (u *RegistrationUseCase) rollbackLawyer(ctx context.Context, registrationID, lawyerID string) {
	if err := u.lawyers.Delete(context.WithoutCancel(ctx), lawyerID); err != nil {
		zap.L().Error("[registration][usecase] lawyer rollback failed",
			zap.String("registration_id", registrationID), zap.String("lawyer_id", lawyerID), zap.Error(err))
		return
	}
	zap.L().Warn("[registration][usecase] lawyer rolled back",
		zap.String("registration_id", registrationID), zap.String("lawyer_id", lawyerID))
}

func (u *RegistrationUseCase) load(ctx context.Context, id string) (entities.RegistrationSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RegistrationSession{}, ErrRegistrationNotFound
	}
	s, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return entities.RegistrationSession{}, err
	}
	if s.ID == "" {
		return entities.RegistrationSession{}, ErrRegistrationNotFound
	}
	return s, nil
}

func (u *RegistrationUseCase) stepError(s entities.RegistrationSession) error {
	if s.Step == entities.StepCompleted {
		return ErrRegistrationCompleted
	}
	return ErrWrongStep
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newApprovedPayment(lawyerID string, purpose entities.PaymentPurpose, tier entities.LicenseType, intent entities.PaymentIntent, at time.Time) entities.Payment {
	raw, _ := json.Marshal(map[string]any{
		"provider_id": intent.ProviderID,
		"status":      intent.Status,
		"amount":      intent.Amount,
		"currency":    intent.Currency,
	})
	return entities.Payment{
		ID:                 uuid.NewString(),
		LawyerID:           lawyerID,
		Purpose:            purpose,
		LicenseType:        tier,
		Amount:             intent.Amount,
		Date:               at,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: raw,
	}
}
