package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"liveusers/internal/events"
	"liveusers/internal/models"
	"liveusers/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- fakes ---

type fakeUserRepo struct {
	created   []*models.User
	createErr error

	users   []*models.User
	findErr error
	listErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

type broadcastCall struct {
	event string
	data  any
}

type fakeBroadcaster struct {
	calls []broadcastCall
}

func (f *fakeBroadcaster) Broadcast(event string, data any) {
	f.calls = append(f.calls, broadcastCall{event: event, data: data})
}

func validRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Ana",
		Email:    "a@x.com",
		Mobile:   "123",
		City:     "X",
		State:    "Y",
		Country:  "Z",
		UserID:   "ana1",
		Password: "p",
	}
}

// --- tests ---

func TestRegisterMissingUserID(t *testing.T) {
	repo := &fakeUserRepo{}
	bc := &fakeBroadcaster{}
	svc := NewRegistrationService(repo, bc, zap.NewNop())

	req := validRequest()
	req.UserID = ""
	_, err := svc.Register(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "User ID", ve.Field)
	assert.Equal(t, "User ID is required", err.Error())
	assert.Empty(t, repo.created, "nothing must be persisted on validation failure")
	assert.Empty(t, bc.calls)
}

func TestRegisterMissingRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(r *models.RegisterRequest)
	}{
		{"name", func(r *models.RegisterRequest) { r.Name = "" }},
		{"email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"mobile", func(r *models.RegisterRequest) { r.Mobile = "" }},
		{"city", func(r *models.RegisterRequest) { r.City = "" }},
		{"state", func(r *models.RegisterRequest) { r.State = "" }},
		{"country", func(r *models.RegisterRequest) { r.Country = "" }},
		{"password", func(r *models.RegisterRequest) { r.Password = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			repo := &fakeUserRepo{}
			bc := &fakeBroadcaster{}
			svc := NewRegistrationService(repo, bc, zap.NewNop())

			req := validRequest()
			tc.mut(req)
			_, err := svc.Register(context.Background(), req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Empty(t, repo.created)
			assert.Empty(t, bc.calls)
		})
	}
}

func TestRegisterSuccessBroadcasts(t *testing.T) {
	repo := &fakeUserRepo{}
	bc := &fakeBroadcaster{}
	svc := NewRegistrationService(repo, bc, zap.NewNop())

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.True(t, u.IsOnline, "online flag must be forced true at creation")
	assert.Equal(t, "ana1", u.UserID)
	assert.Equal(t, "p", u.Password, "password is stored as provided")
	assert.False(t, u.CreatedAt.IsZero())

	require.Len(t, bc.calls, 1)
	assert.Equal(t, events.EventNewUser, bc.calls[0].event)
	assert.Equal(t, events.NewUser{Name: "Ana", Email: "a@x.com", IsOnline: true}, bc.calls[0].data)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := &fakeUserRepo{createErr: repository.ErrDuplicateUser}
	bc := &fakeBroadcaster{}
	svc := NewRegistrationService(repo, bc, zap.NewNop())

	_, err := svc.Register(context.Background(), validRequest())
	require.ErrorIs(t, err, repository.ErrDuplicateUser)
	assert.Empty(t, bc.calls, "failed insert must not broadcast")
}

func TestRegisterStorageError(t *testing.T) {
	storeErr := errors.New("server selection timeout")
	repo := &fakeUserRepo{createErr: storeErr}
	bc := &fakeBroadcaster{}
	svc := NewRegistrationService(repo, bc, zap.NewNop())

	_, err := svc.Register(context.Background(), validRequest())
	require.ErrorIs(t, err, storeErr)
	assert.Empty(t, bc.calls)
}
