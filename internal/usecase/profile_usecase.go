package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/validation"
	"assistente_juridico/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLawyerNotFound        = errors.New("lawyer not found")
	ErrInvalidFullName       = errors.New("invalid full name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrWrongPassword         = errors.New("current password does not match")
	ErrPasswordConfirmation  = errors.New("password confirmation does not match")
	ErrWeakPassword          = errors.New("password too short")
	ErrUnknownCreditPackage  = errors.New("unknown credit package")
	ErrPaymentIntentRejected = errors.New("payment intent failed")
)

// Profile is the account view of a registered lawyer.
type Profile struct {
	Lawyer   entities.Lawyer    `json:"lawyer"`
	Payments []entities.Payment `json:"payments"`
}

// PurchaseResult is returned by subscription changes and credit purchases. When the
// intent failed, Lawyer is unchanged and PaymentIntent says whether to retry.
type PurchaseResult struct {
	Lawyer        entities.Lawyer              `json:"lawyer"`
	PaymentIntent entities.PaymentIntentResult `json:"payment_intent"`
	Payment       *entities.Payment            `json:"payment,omitempty"`
}

// IProfileUseCase manages the signed-in lawyer's own account.
type IProfileUseCase interface {
	Me(ctx context.Context, lawyerID string) (Profile, error)
	UpdateProfile(ctx context.Context, lawyerID string, fullName, email *string) (entities.Lawyer, error)
	ChangePassword(ctx context.Context, lawyerID, current, next, confirm string) error
	ChangeSubscription(ctx context.Context, lawyerID string, tier entities.LicenseType) (PurchaseResult, error)
	AddCredits(ctx context.Context, lawyerID string, amount int) (PurchaseResult, error)
}

// ProfileUseCase serialises writes per lawyer: every mutation reloads the account
// under that lawyer's lock before applying its change.
type ProfileUseCase struct {
	lawyers  interfaces.ILawyerRepository
	payments interfaces.IPaymentRepository
	intents  IPaymentIntentUseCase
	now      func() time.Time

	locks sync.Map // lawyer id -> *sync.Mutex
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(lawyers interfaces.ILawyerRepository, payments interfaces.IPaymentRepository, intents IPaymentIntentUseCase) *ProfileUseCase {
	return &ProfileUseCase{lawyers: lawyers, payments: payments, intents: intents, now: time.Now}
}

func (u *ProfileUseCase) Me(ctx context.Context, lawyerID string) (Profile, error) {
	l, err := u.load(ctx, lawyerID)
	if err != nil {
		return Profile{}, err
	}
	payments, err := u.payments.ListByLawyerID(ctx, l.ID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Lawyer: l, Payments: payments}, nil
}

func (u *ProfileUseCase) UpdateProfile(ctx context.Context, lawyerID string, fullName, email *string) (entities.Lawyer, error) {
	unlock := u.lock(lawyerID)
	defer unlock()

	l, err := u.load(ctx, lawyerID)
	if err != nil {
		return entities.Lawyer{}, err
	}
	if fullName != nil {
		name := strings.TrimSpace(*fullName)
		if !validation.ValidFullName(name) {
			return entities.Lawyer{}, ErrInvalidFullName
		}
		l.FullName = name
	}
	if email != nil {
		e := strings.TrimSpace(*email)
		if !validation.ValidEmail(e) {
			return entities.Lawyer{}, ErrInvalidEmail
		}
		if !strings.EqualFold(e, l.Email) {
			other, err := u.lawyers.GetByEmail(ctx, e)
			if err != nil {
				return entities.Lawyer{}, err
			}
			if other.ID != "" {
				return entities.Lawyer{}, ErrEmailAlreadyRegistered
			}
		}
		l.Email = e
	}
	return u.save(ctx, l)
}

func (u *ProfileUseCase) ChangePassword(ctx context.Context, lawyerID, current, next, confirm string) error {
	unlock := u.lock(lawyerID)
	defer unlock()

	l, err := u.load(ctx, lawyerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}
	if next != confirm {
		return ErrPasswordConfirmation
	}
	if !validation.ValidPassword(next) {
		return ErrWeakPassword
	}
	hash, err := hashPassword(next)
	if err != nil {
		return err
	}
	l.PasswordHash = hash
	if _, err := u.save(ctx, l); err != nil {
		return err
	}
	zap.L().Info("[profile][usecase] password changed", zap.String("lawyer_id", l.ID))
	return nil
}

func (u *ProfileUseCase) ChangeSubscription(ctx context.Context, lawyerID string, tier entities.LicenseType) (PurchaseResult, error) {
	lic, ok := entities.LicenseByType(tier)
	if !ok {
		return PurchaseResult{}, ErrUnknownLicense
	}
	l, err := u.load(ctx, lawyerID)
	if err != nil {
		return PurchaseResult{}, err
	}

	res := u.intents.Request(ctx, lic.PriceCents, "Assinatura "+lic.Name)
	res.LicenseType = tier
	if res.Status != entities.PaymentIntentReady {
		zap.L().Warn("[profile][usecase] subscription intent failed", zap.String("lawyer_id", l.ID), zap.String("reason", res.Reason))
		return PurchaseResult{Lawyer: l, PaymentIntent: res}, ErrPaymentIntentRejected
	}

	p := newApprovedPayment(l.ID, entities.PaymentPurposeSubscription, tier, *res.Intent, u.now().UTC())
	l, err = u.apply(ctx, p, func(l *entities.Lawyer) { l.SubscriptionTier = tier })
	if err != nil {
		return PurchaseResult{}, err
	}
	zap.L().Info("[profile][usecase] subscription changed", zap.String("lawyer_id", l.ID), zap.String("license", string(tier)))
	return PurchaseResult{Lawyer: l, PaymentIntent: res, Payment: &p}, nil
}

func (u *ProfileUseCase) AddCredits(ctx context.Context, lawyerID string, amount int) (PurchaseResult, error) {
	pkg, ok := entities.CreditPackageByAmount(amount)
	if !ok {
		return PurchaseResult{}, ErrUnknownCreditPackage
	}
	l, err := u.load(ctx, lawyerID)
	if err != nil {
		return PurchaseResult{}, err
	}

	res := u.intents.Request(ctx, pkg.PriceCents, fmt.Sprintf("%d créditos", pkg.Amount))
	if res.Status != entities.PaymentIntentReady {
		zap.L().Warn("[profile][usecase] credits intent failed", zap.String("lawyer_id", l.ID), zap.String("reason", res.Reason))
		return PurchaseResult{Lawyer: l, PaymentIntent: res}, ErrPaymentIntentRejected
	}

	p := newApprovedPayment(l.ID, entities.PaymentPurposeCredits, "", *res.Intent, u.now().UTC())
	l, err = u.apply(ctx, p, func(l *entities.Lawyer) { l.Credits += pkg.Amount })
	if err != nil {
		return PurchaseResult{}, err
	}
	zap.L().Info("[profile][usecase] credits added", zap.String("lawyer_id", l.ID), zap.Int("credits", pkg.Amount))
	return PurchaseResult{Lawyer: l, PaymentIntent: res, Payment: &p}, nil
}

// apply records an approved payment and its effect on a freshly loaded account.
func (u *ProfileUseCase) apply(ctx context.Context, p entities.Payment, change func(*entities.Lawyer)) (entities.Lawyer, error) {
	unlock := u.lock(p.LawyerID)
	defer unlock()

	l, err := u.load(ctx, p.LawyerID)
	if err != nil {
		return entities.Lawyer{}, err
	}
	if _, err := u.payments.Create(ctx, p); err != nil {
		zap.L().Error("[profile][usecase] payment create failed", zap.String("lawyer_id", l.ID), zap.Error(err))
		return entities.Lawyer{}, err
	}
	change(&l)
	return u.save(ctx, l)
}

func (u *ProfileUseCase) lock(lawyerID string) func() {
	mu, _ := u.locks.LoadOrStore(lawyerID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (u *ProfileUseCase) load(ctx context.Context, lawyerID string) (entities.Lawyer, error) {
	if strings.TrimSpace(lawyerID) == "" {
		return entities.Lawyer{}, ErrLawyerNotFound
	}
	l, err := u.lawyers.GetByID(ctx, lawyerID)
	if err != nil {
		return entities.Lawyer{}, err
	}
	if l.ID == "" {
		return entities.Lawyer{}, ErrLawyerNotFound
	}
	return l, nil
}

func (u *ProfileUseCase) save(ctx context.Context, l entities.Lawyer) (entities.Lawyer, error) {
	l.UpdatedAt = u.now().UTC()
	saved, err := u.lawyers.Update(ctx, l)
	if err != nil {
		return entities.Lawyer{}, err
	}
	if saved.ID == "" {
		return entities.Lawyer{}, ErrLawyerNotFound
	}
	return saved, nil
}
