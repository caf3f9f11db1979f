// Package client is a Go client for the pinrest API. It carries an explicit
// Session object instead of ambient global state: callers load it at startup,
// every authenticated call sends its token, and any 401 clears it so the
// application can fall back to the login flow.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrSessionExpired is returned when the server rejects the session token.
// The session has already been cleared when this error is returned.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a pinrest API server.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a client for the given server. The session may be freshly
// loaded via LoadSession or empty.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// Session returns the client's session state.
func (c *Client) Session() *Session {
	return c.session
}

// Register creates an account and stores the resulting session.
func (c *Client) Register(req RegisterRequest) (*User, error) {
	var resp authResponse
	if err := c.do(http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, c.storeSession(&resp)
}

// Login authenticates and stores the resulting session.
func (c *Client) Login(email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.User, c.storeSession(&resp)
}

// Logout clears the stored session.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// Me fetches the logged-in user's profile.
func (c *Client) Me() (*Profile, error) {
	var p Profile
	if err := c.do(http.MethodGet, "/api/users/me", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMe updates the logged-in user's profile and refreshes the session's
// user object.
func (c *Client) UpdateMe(req UpdateUserRequest) (*User, error) {
	var u User
	if err := c.do(http.MethodPatch, "/api/users/me", nil, req, &u); err != nil {
		return nil, err
	}
	c.session.User = &u
	if err := c.session.Save(); err != nil {
		return nil, err
	}
	return &u, nil
}

// User fetches any user's public profile.
func (c *Client) User(id uint) (*Profile, error) {
	var p Profile
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UserBoards lists a user's boards.
func (c *Client) UserBoards(id uint) ([]Board, error) {
	var boards []Board
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d/boards", id), nil, nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// UserPins lists a user's pins.
func (c *Client) UserPins(id uint) ([]Pin, error) {
	var pins []Pin
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d/pins", id), nil, nil, &pins); err != nil {
		return nil, err
	}
	return pins, nil
}

// Pins lists one page of pins.
func (c *Client) Pins(page, limit int) (*PinPage, error) {
	var result PinPage
	if err := c.do(http.MethodGet, "/api/pins", pageQuery(page, limit), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchPins searches pins by title or description.
func (c *Client) SearchPins(query string, page, limit int) (*PinPage, error) {
	q := pageQuery(page, limit)
	q.Set("q", query)
	var result PinPage
	if err := c.do(http.MethodGet, "/api/pins/search", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Pin fetches a single pin with like/save state.
func (c *Client) Pin(id uint) (*PinDetail, error) {
	var pin PinDetail
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/pins/%d", id), nil, nil, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

// CreatePin creates a pin.
func (c *Client) CreatePin(req CreatePinRequest) (*Pin, error) {
	var pin Pin
	if err := c.do(http.MethodPost, "/api/pins", nil, req, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

// UpdatePin updates one of the caller's pins.
func (c *Client) UpdatePin(id uint, req UpdatePinRequest) (*Pin, error) {
	var pin Pin
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/pins/%d", id), nil, req, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

// DeletePin deletes one of the caller's pins.
func (c *Client) DeletePin(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/pins/%d", id), nil, nil, nil)
}

// ToggleLike flips the caller's like on a pin.
func (c *Client) ToggleLike(id uint) (*LikeResult, error) {
	var result LikeResult
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/pins/%d/like", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SavePin flips whether a pin is saved into one of the caller's boards.
func (c *Client) SavePin(id, boardID uint) (*SaveResult, error) {
	body := map[string]uint{"board_id": boardID}
	var result SaveResult
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/pins/%d/save", id), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Boards lists visible boards.
func (c *Client) Boards() ([]Board, error) {
	var boards []Board
	if err := c.do(http.MethodGet, "/api/boards", nil, nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// Board fetches a board with its pins.
func (c *Client) Board(id uint) (*Board, error) {
	var board Board
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/boards/%d", id), nil, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// CreateBoard creates a board.
func (c *Client) CreateBoard(req CreateBoardRequest) (*Board, error) {
	var board Board
	if err := c.do(http.MethodPost, "/api/boards", nil, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoard updates one of the caller's boards.
func (c *Client) UpdateBoard(id uint, req UpdateBoardRequest) (*Board, error) {
	var board Board
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/boards/%d", id), nil, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// DeleteBoard deletes one of the caller's boards.
func (c *Client) DeleteBoard(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/boards/%d", id), nil, nil, nil)
}

func (c *Client) storeSession(resp *authResponse) error {
	c.session.Token = resp.AccessToken
	c.session.User = resp.User
	return c.session.Save()
}

// do performs one API round trip: JSON in, JSON out. A 401 response ends the
// session: local state is cleared and ErrSessionExpired returned.
func (c *Client) do(method, path string, query url.Values, body, out interface{}) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	authed := c.session.Authenticated()
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// A 401 against a stored token means the session is over. A 401 on an
	// anonymous call (e.g. a failed login) is an ordinary API error.
	if resp.StatusCode == http.StatusUnauthorized && authed {
		if clearErr := c.session.Clear(); clearErr != nil {
			return clearErr
		}
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
