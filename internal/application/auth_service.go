package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
	"github.com/jannofresh/jannofresh-api/pkg/mailer"
	"github.com/jannofresh/jannofresh-api/pkg/validation"
)

// AuthService composes validation, the dual-mode user store, password
// comparison and token issuance into the register/login/me flows.
type AuthService struct {
	Users       repository.UserRepository
	JWT         *helpers.JWTManager
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	AppName     string
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Pub: pub, AppName: appName, MailEnabled: mailEnabled}
}

// RegisterInput is the registration payload after JSON decoding.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register validates in, creates the user record (the store hashes the
// password) and issues a bearer token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	if msg := validation.ValidateRegisterInput(in.Name, in.Email, in.Password, in.Phone); msg != "" {
		return nil, "", apperr.Validation(msg)
	}

	name := strings.TrimSpace(in.Name)
	u := &entity.User{
		Name:     name,
		Email:    validation.NormalizeEmail(in.Email),
		Password: in.Password,
		Phone:    in.Phone,
		Avatar:   helpers.AvatarURL(name),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	u.Password = ""

	token, err := s.JWT.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcome(ctx, u)
	return u, token, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same InvalidCredentials failure so responses
// cannot be used for account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if msg := validation.ValidateLoginInput(email, password); msg != "" {
		return nil, "", apperr.Validation(msg)
	}

	u, err := s.Users.FindByEmail(ctx, validation.NormalizeEmail(email), true)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", apperr.ErrInvalidCredentials
	}
	u.Password = ""

	token, err := s.JWT.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// CurrentUser resolves the record behind a verified token. A token that
// verifies but points at a vanished record (memory store reset) is a 404,
// not a 500.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.Users.FindByID(ctx, userID)
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"AppName": s.AppName, "Name": u.Name},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
}
