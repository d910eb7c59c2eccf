package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/validators"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the two are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Session is the live proof of authentication handed to a signed-in user.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service owns credentials and sessions. It is the only writer of
// auth_users; the rest of the portal observes sessions through Verify and
// the event feed.
type Service struct {
	db      *gorm.DB
	revoker *Revoker
	feed    *Feed
	secret  []byte
	ttl     time.Duration
}

func NewService(db *gorm.DB, revoker *Revoker, feed *Feed, secret string, ttl time.Duration) *Service {
	return &Service{
		db:      db,
		revoker: revoker,
		feed:    feed,
		secret:  []byte(secret),
		ttl:     ttl,
	}
}

func (s *Service) Events() *Feed { return s.feed }

// SignIn verifies the credential and issues a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = validators.Normalize(email)

	var user models.AuthUser
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := signToken(s.secret, s.ttl, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.feed.Publish(Event{Type: EventSignedIn, UserID: user.ID, At: time.Now()})

	return &Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// SignUp provisions a new authenticatable credential and returns it.
// It does not create a profile; that is the caller's second phase.
func (s *Service) SignUp(ctx context.Context, email, password string) (*models.AuthUser, error) {
	email = validators.Normalize(email)

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.AuthUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// SignOut revokes the session and notifies subscribers. Revoking an already
// expired token is a no-op, not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return err
	}

	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}

	s.feed.Publish(Event{Type: EventSignedOut, UserID: claims.UserID, At: time.Now()})
	return nil
}

// Verify checks signature, expiry and the revocation list.
func (s *Service) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UpdateEmail changes the authentication email. Independent from the
// profile's email column; callers sequencing both must treat this as the
// second phase of a non-atomic write.
func (s *Service) UpdateEmail(ctx context.Context, userID, newEmail string) error {
	newEmail = validators.Normalize(newEmail)

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("email = ? AND id <> ?", newEmail, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	return s.db.WithContext(ctx).
		Model(&models.AuthUser{}).
		Where("id = ?", userID).
		Update("email", newEmail).Error
}

// DeleteUser removes a credential. Used as the compensating action when a
// dependent profile insert fails, and by admin client deletion.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&models.AuthUser{}).Error
}
