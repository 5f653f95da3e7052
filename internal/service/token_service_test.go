package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carlisting-server/internal/mocks"
	"github.com/dtroode/carlisting-server/internal/model"
	"github.com/dtroode/carlisting-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		maxPerUser int
		setup      func(tm *mocks.TokenManager, ts *mocks.TokenStore)
		wantToken  string
		wantErr    string
	}{
		{
			name: "unbounded list",
			setup: func(tm *mocks.TokenManager, ts *mocks.TokenStore) {
				tm.On("GenerateToken", userID).Return("tok", nil)
				ts.On("Create", mock.Anything, mock.MatchedBy(func(rec model.UserToken) bool {
					return rec.UserID == userID && rec.Token == "tok" && rec.CreatedAt.Equal(fixedNow) && rec.ID != uuid.Nil
				})).Return(nil)
			},
			wantToken: "tok",
		},
		{
			name:       "bounded list prunes",
			maxPerUser: 3,
			setup: func(tm *mocks.TokenManager, ts *mocks.TokenStore) {
				tm.On("GenerateToken", userID).Return("tok", nil)
				ts.On("Create", mock.Anything, mock.Anything).Return(nil)
				ts.On("PruneByUser", mock.Anything, userID, 3).Return(nil)
			},
			wantToken: "tok",
		},
		{
			name:       "prune failure is not fatal",
			maxPerUser: 1,
			setup: func(tm *mocks.TokenManager, ts *mocks.TokenStore) {
				tm.On("GenerateToken", userID).Return("tok", nil)
				ts.On("Create", mock.Anything, mock.Anything).Return(nil)
				ts.On("PruneByUser", mock.Anything, userID, 1).Return(errors.New("db down"))
			},
			wantToken: "tok",
		},
		{
			name: "generate failure",
			setup: func(tm *mocks.TokenManager, ts *mocks.TokenStore) {
				tm.On("GenerateToken", userID).Return("", errors.New("sign"))
			},
			wantErr: "issue token",
		},
		{
			name: "persist failure",
			setup: func(tm *mocks.TokenManager, ts *mocks.TokenStore) {
				tm.On("GenerateToken", userID).Return("tok", nil)
				ts.On("Create", mock.Anything, mock.Anything).Return(errors.New("db"))
			},
			wantErr: "persist token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := mocks.NewTokenManager(t)
			ts := mocks.NewTokenStore(t)
			tt.setup(tm, ts)

			svc := NewTokenService(tm, ts, mocks.NewUserStore(t), tt.maxPerUser, testutil.MakeNoopLogger())
			svc.now = func() time.Time { return fixedNow }

			token, err := svc.Issue(ctx, userID)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestTokenService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@x.com"}

	tests := []struct {
		name      string
		setup     func(tm *mocks.TokenManager, us *mocks.UserStore)
		wantUser  model.User
		wantErrIs error
		wantErr   bool
	}{
		{
			name: "valid token",
			setup: func(tm *mocks.TokenManager, us *mocks.UserStore) {
				tm.On("ParseToken", "tok").Return(userID, nil)
				us.On("GetByID", mock.Anything, userID).Return(user, nil)
			},
			wantUser: user,
		},
		{
			name: "bad signature",
			setup: func(tm *mocks.TokenManager, us *mocks.UserStore) {
				tm.On("ParseToken", "tok").Return(uuid.Nil, model.ErrInvalidToken)
			},
			wantErrIs: model.ErrInvalidToken,
			wantErr:   true,
		},
		{
			name: "user no longer exists",
			setup: func(tm *mocks.TokenManager, us *mocks.UserStore) {
				tm.On("ParseToken", "tok").Return(userID, nil)
				us.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)
			},
			wantErrIs: model.ErrInvalidToken,
			wantErr:   true,
		},
		{
			name: "store failure",
			setup: func(tm *mocks.TokenManager, us *mocks.UserStore) {
				tm.On("ParseToken", "tok").Return(userID, nil)
				us.On("GetByID", mock.Anything, userID).Return(model.User{}, errors.New("db"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := mocks.NewTokenManager(t)
			us := mocks.NewUserStore(t)
			tt.setup(tm, us)

			svc := NewTokenService(tm, mocks.NewTokenStore(t), us, 0, testutil.MakeNoopLogger())

			got, err := svc.Authenticate(ctx, "tok")
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				} else {
					assert.NotErrorIs(t, err, model.ErrInvalidToken)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}
