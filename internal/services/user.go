package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/mappers"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/repositories"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// UserReader defines read-only operations for users.
// Lookups return (nil, nil) when no row matches.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UserService handles user lookups, registration and credential checks.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// CreateUser persists a new user and returns it without a session token.
// The request is expected to be validated already.
func (svc *UserService) CreateUser(ctx context.Context, req *models.SignUpRequest) (*models.LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := strings.TrimSpace(req.Email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		log.Warnw("user already exists", "email", email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		Email:        email,
		Forename:     strings.TrimSpace(req.Forename),
		Surname:      strings.TrimSpace(req.Surname),
		PasswordHash: string(hashedPassword),
	}

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	user.ID = id

	return mappers.MapLoginResponse(user), nil
}

// GetLoginUser returns the user matching the credentials, or nil when
// the e-mail is unknown or the password is wrong.
func (svc *UserService) GetLoginUser(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		log.Infow("user does not exist", "email", email)
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "email", email)
		return nil, nil
	}

	return mappers.MapLoginResponse(user), nil
}

// GetUserByID returns a single user.
func (svc *UserService) GetUserByID(ctx context.Context, id int64) (*models.UserDTO, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return mappers.MapUser(user), nil
}

// GetUsers returns every user; the result is never nil.
func (svc *UserService) GetUsers(ctx context.Context) ([]models.UserDTO, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list users", "err", err)
		return nil, err
	}
	return mappers.MapUsers(users), nil
}

// NotifySignedUp publishes a sign-up event. Failures are logged only.
func (svc *UserService) NotifySignedUp(ctx context.Context, user *models.LoginResponse) {
	log := logger.FromContext(ctx)
	if svc.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "user_id", user.ID)
		return
	}

	evt := models.UserSignedUpEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Email:     user.Email,
		Forename:  user.Forename,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		log.Errorw("failed to marshal sign-up event", "user_id", user.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(user.ID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("failed to publish sign-up event", "user_id", user.ID, "error", err)
		return
	}
	log.Infow("sign-up event published", "user_id", user.ID, "event_id", evt.EventID)
}
