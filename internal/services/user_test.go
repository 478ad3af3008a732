package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/repositories"
	"github.com/sbilibin2017/blog-ms/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := &models.SignUpRequest{
		Email:           "a@b.com",
		Forename:        " A ",
		Surname:         "B",
		Password:        "x",
		ConfirmPassword: "x",
	}

	tests := []struct {
		name      string
		existing  *models.UserDB
		readerErr error
		saveID    int64
		saveErr   error
		wantErr   error
	}{
		{name: "created", saveID: 5},
		{name: "email taken", existing: &models.UserDB{ID: 1}, wantErr: services.ErrEmailTaken},
		{name: "reader error", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "unique violation on insert", saveErr: repositories.ErrDuplicate, wantErr: services.ErrEmailTaken},
		{name: "writer error", saveErr: errors.New("save error"), wantErr: errors.New("save error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(reader, writer, nil)

			reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(tt.existing, tt.readerErr)

			if tt.existing == nil && tt.readerErr == nil {
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (int64, error) {
						assert.Equal(t, "A", u.Forename)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("x")))
						return tt.saveID, tt.saveErr
					})
			}

			resp, err := svc.CreateUser(context.Background(), req)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, resp)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, &models.LoginResponse{ID: 5, Email: "a@b.com", Forename: "A", Surname: "B"}, resp)
		})
	}
}

func TestUserService_GetLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	stored := &models.UserDB{ID: 3, Email: "a@b.com", Forename: "A", Surname: "B", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		password  string
		wantNil   bool
		wantErr   bool
	}{
		{name: "match", user: stored, password: "secret"},
		{name: "unknown email", user: nil, password: "secret", wantNil: true},
		{name: "wrong password", user: stored, password: "nope", wantNil: true},
		{name: "reader error", readerErr: errors.New("db"), password: "secret", wantNil: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockUserReader(ctrl)
			svc := services.NewUserService(reader, nil, nil)

			reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(tt.user, tt.readerErr)

			resp, err := svc.GetLoginUser(context.Background(), "a@b.com", tt.password)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.wantNil {
				assert.Nil(t, resp)
				return
			}
			assert.Equal(t, int64(3), resp.ID)
			assert.Empty(t, resp.SessionToken)
		})
	}
}

func TestUserService_GetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, nil, nil)

	reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, Forename: "A", Surname: "B"}, nil)
	reader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

	user, err := svc.GetUserByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "B", user.Surname)

	user, err = svc.GetUserByID(context.Background(), 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, user)
}

func TestUserService_GetUsers_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, nil, nil)

	reader.EXPECT().List(gomock.Any()).Return(nil, nil)

	users, err := svc.GetUsers(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_NotifySignedUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.LoginResponse{ID: 12, Email: "a@b.com", Forename: "A"}

	t.Run("publishes event", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewUserService(nil, nil, writer)

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, "12", string(msgs[0].Key))

				var evt models.UserSignedUpEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &evt))
				assert.Equal(t, int64(12), evt.UserID)
				assert.Equal(t, "A", evt.Forename)
				assert.NotEmpty(t, evt.EventID)
				return nil
			})

		svc.NotifySignedUp(context.Background(), user)
	})

	t.Run("publish error is swallowed", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewUserService(nil, nil, writer)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() { svc.NotifySignedUp(context.Background(), user) })
	})

	t.Run("no writer", func(t *testing.T) {
		svc := services.NewUserService(nil, nil, nil)
		assert.NotPanics(t, func() { svc.NotifySignedUp(context.Background(), user) })
	})
}
