package user_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"todos/infras/otel/mocks"
	"todos/internal/domains/user/model/dto"
	userMocks "todos/internal/domains/user/mocks"
	"todos/internal/handlers/user"
	gDto "todos/shared/dto"
	"todos/shared/failure"
	"todos/shared/identity"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func serveMe(t *testing.T, svc *userMocks.MockUserService, who *identity.Identity) *httptest.ResponseRecorder {
	t.Helper()

	handler := user.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if who != nil {
		req = req.WithContext(identity.WithContext(req.Context(), *who))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMocks.NewMockUserService(ctrl)

	svc.EXPECT().Get(gomock.Any(), int64(4)).Return(dto.UserResponse{
		ID:       4,
		Username: "alice",
		Active:   true,
		Metadata: gDto.Metadata{CreatedAt: "2026-01-02T03:04:05Z", ModifiedAt: "2026-01-02T03:04:05Z"},
	}, nil)

	rec := serveMe(t, svc, &identity.Identity{ID: 4, Username: "alice"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":4,"username":"alice","active":true,"created_at":"2026-01-02T03:04:05Z","modified_at":"2026-01-02T03:04:05Z"}`,
		rec.Body.String())
}

func TestGetCurrentUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		who      *identity.Identity
		mock     func(svc *userMocks.MockUserService)
		wantCode int
		wantBody string
	}{
		{
			name:     "anonymous",
			mock:     func(*userMocks.MockUserService) {},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"Could not validate credentials"}`,
		},
		{
			name: "deleted account",
			who:  &identity.Identity{ID: 9, Username: "ghost"},
			mock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.UserResponse{}, failure.NotFound("user not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"user not found"}`,
		},
		{
			name: "store failure",
			who:  &identity.Identity{ID: 9, Username: "ghost"},
			mock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.UserResponse{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := userMocks.NewMockUserService(ctrl)
			tt.mock(svc)

			rec := serveMe(t, svc, tt.who)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
