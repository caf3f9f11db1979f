package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/pinrest/backend/internal/handlers"
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/validators"
)

const testSecret = "test-secret"

// env wires all handlers over one shared in-memory store.
type env struct {
	e      *echo.Echo
	store  *fakeStore
	auth   *handlers.AuthHandler
	users  *handlers.UserHandler
	pins   *handlers.PinHandler
	boards *handlers.BoardHandler
}

func newEnv() *env {
	e := echo.New()
	e.Validator = validators.NewValidator()

	store := newFakeStore()
	userRepo := &fakeUserRepo{store}
	pinRepo := &fakePinRepo{store}
	boardRepo := &fakeBoardRepo{store}
	likeRepo := &fakeLikeRepo{store}
	savedPinRepo := &fakeSavedPinRepo{store}

	return &env{
		e:      e,
		store:  store,
		auth:   handlers.NewAuthHandler(userRepo, testSecret, time.Hour),
		users:  handlers.NewUserHandler(userRepo, pinRepo, boardRepo, likeRepo),
		pins:   handlers.NewPinHandler(pinRepo, boardRepo, likeRepo, savedPinRepo),
		boards: handlers.NewBoardHandler(boardRepo, likeRepo),
	}
}

// seedUser inserts a user directly into the store.
func (v *env) seedUser(username string) *models.User {
	user := &models.User{Email: username + "@example.com", Username: username, Password: "x"}
	user.ID = v.store.id()
	v.store.users[user.ID] = user
	return user
}

func (v *env) seedBoard(userID uint, title string, private bool) *models.Board {
	board := &models.Board{Title: title, IsPrivate: private, UserID: userID}
	board.ID = v.store.id()
	v.store.boards[board.ID] = board
	return board
}

func (v *env) seedPin(userID uint, title string, boardID *uint) *models.Pin {
	pin := &models.Pin{Title: title, ImageURL: "https://example.com/img.jpg", UserID: userID, BoardID: boardID}
	pin.ID = v.store.id()
	v.store.pins[pin.ID] = pin
	return pin
}

// request builds an echo context for a handler call. claims may be nil for
// anonymous requests.
func (v *env) request(method, target string, body interface{}, claims *models.JwtCustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := v.e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, rec
}

func claimsFor(user *models.User) *models.JwtCustomClaims {
	return &models.JwtCustomClaims{UserID: user.ID, Email: user.Email}
}

// httpCode extracts the status from an echo.HTTPError.
func httpCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T: %v", err, err)
	return he.Code
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func setParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
