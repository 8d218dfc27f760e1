package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/bookminton/internal/domain"
	userRepo "github.com/m04kA/bookminton/internal/infra/storage/user"
	"github.com/m04kA/bookminton/internal/service/auth/models"
)

const tokenType = "Bearer"

// Service сервис регистрации, входа и проверки токенов
type Service struct {
	userRepo     UserRepository
	revocations  RevocationStore
	adminPolicy  AdminPolicy
	secret       []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	userRepo UserRepository,
	revocations RevocationStore,
	adminPolicy AdminPolicy,
	secret string,
	tokenTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		revocations:  revocations,
		adminPolicy:  adminPolicy,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignUp регистрирует пользователя
// Email из списка администраторов получает роль admin, остальные customer
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.UserResponse, error) {
	email, err := validateSignUp(req)
	if err != nil {
		s.logger.Warn("SignUp: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	role := domain.RoleCustomer
	if s.adminPolicy.IsAdminEmail(email) {
		role = domain.RoleAdmin
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Metadata: domain.UserMetadata{
			FullName: strings.TrimSpace(req.FullName),
			Phone:    strings.TrimSpace(req.Phone),
			Role:     role,
		},
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("SignUp: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: registered user id=%d role=%s", created.ID, role)
	return models.FromDomainUser(created), nil
}

// SignIn проверяет пароль и выдаёт подписанный токен доступа
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	claims := newClaims(user, s.timeProvider.Now(), s.tokenTTL)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("SignIn: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - sign token: %v", ErrInternal, err)
	}

	session, err := claims.session()
	if err != nil {
		return nil, fmt.Errorf("%w: SignIn - build session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: user id=%d signed in, token=%s", user.ID, claims.ID)
	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   session.ExpiresAt,
		Session:     *models.FromSession(session),
	}, nil
}

// ParseToken проверяет подпись, срок и отзыв токена и восстанавливает сессию
func (s *Service) ParseToken(ctx context.Context, token string) (*domain.Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	session, err := claims.session()
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, session.TokenID)
	if err != nil {
		s.logger.Error("ParseToken: failed to check revocation token=%s: %v", session.TokenID, err)
		return nil, fmt.Errorf("%w: ParseToken - check revocation: %v", ErrInternal, err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", ErrInvalidToken)
	}

	return session, nil
}

// SignOut отзывает токен сессии до истечения его срока
func (s *Service) SignOut(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.timeProvider.Now())

	if err := s.revocations.Revoke(ctx, session.TokenID, ttl); err != nil {
		s.logger.Error("SignOut: failed to revoke token=%s: %v", session.TokenID, err)
		return fmt.Errorf("%w: SignOut - revoke: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: user id=%d signed out, token=%s", session.UserID, session.TokenID)
	return nil
}

func validateSignUp(req *models.SignUpRequest) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	name := strings.TrimSpace(req.FullName)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return "", fmt.Errorf("%w: full name must be 1-%d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if len(strings.TrimSpace(req.Phone)) > domain.MaxCustomerPhoneLength {
		return "", fmt.Errorf("%w: phone must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}
	return strings.ToLower(addr.Address), nil
}
