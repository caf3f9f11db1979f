package handlers_test

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/pinrest/backend/internal/models"
)

// fakeStore is a shared in-memory backend for the fake repositories, so the
// cross-repository behavior (cascading deletes, counts) can be exercised
// without a database.
type fakeStore struct {
	users  map[uint]*models.User
	boards map[uint]*models.Board
	pins   map[uint]*models.Pin
	likes  map[[2]uint]bool // (userID, pinID)
	saves  map[[3]uint]bool // (userID, pinID, boardID)
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uint]*models.User),
		boards: make(map[uint]*models.Board),
		pins:   make(map[uint]*models.Pin),
		likes:  make(map[[2]uint]bool),
		saves:  make(map[[3]uint]bool),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

// --- UserRepository ---

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.id()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

// --- PinRepository ---

type fakePinRepo struct{ s *fakeStore }

func (r *fakePinRepo) CreatePin(pin *models.Pin) error {
	pin.ID = r.s.id()
	cp := *pin
	r.s.pins[pin.ID] = &cp
	return nil
}

func (r *fakePinRepo) GetPinByID(id uint) (*models.Pin, error) {
	p, ok := r.s.pins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	if owner, ok := r.s.users[p.UserID]; ok {
		cp.User = owner.Summary()
	}
	if p.BoardID != nil {
		if board, ok := r.s.boards[*p.BoardID]; ok {
			cp.Board = &models.BoardSummary{ID: board.ID, Title: board.Title}
		}
	}
	return &cp, nil
}

func (r *fakePinRepo) all() []models.Pin {
	pins := make([]models.Pin, 0, len(r.s.pins))
	for _, p := range r.s.pins {
		pins = append(pins, *p)
	}
	sort.Slice(pins, func(i, j int) bool { return pins[i].ID > pins[j].ID })
	return pins
}

func page(pins []models.Pin, offset, limit int) []models.Pin {
	if offset >= len(pins) {
		return nil
	}
	end := offset + limit
	if end > len(pins) {
		end = len(pins)
	}
	return pins[offset:end]
}

func (r *fakePinRepo) ListPins(offset, limit int) ([]models.Pin, int64, error) {
	pins := r.all()
	return page(pins, offset, limit), int64(len(pins)), nil
}

func (r *fakePinRepo) SearchPins(query string, offset, limit int) ([]models.Pin, int64, error) {
	q := strings.ToLower(query)
	var matched []models.Pin
	for _, p := range r.all() {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakePinRepo) GetPinsByUserID(userID uint) ([]models.Pin, error) {
	var pins []models.Pin
	for _, p := range r.all() {
		if p.UserID == userID {
			pins = append(pins, p)
		}
	}
	return pins, nil
}

func (r *fakePinRepo) UpdatePin(pin *models.Pin) error {
	if _, ok := r.s.pins[pin.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *pin
	cp.User = nil
	cp.Board = nil
	r.s.pins[pin.ID] = &cp
	return nil
}

func (r *fakePinRepo) DeletePin(id uint) error {
	if _, ok := r.s.pins[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.pins, id)
	for key := range r.s.likes {
		if key[1] == id {
			delete(r.s.likes, key)
		}
	}
	for key := range r.s.saves {
		if key[1] == id {
			delete(r.s.saves, key)
		}
	}
	return nil
}

func (r *fakePinRepo) CountPinsByUserID(userID uint) (int64, error) {
	var count int64
	for _, p := range r.s.pins {
		if p.UserID == userID {
			count++
		}
	}
	return count, nil
}

// --- BoardRepository ---

type fakeBoardRepo struct{ s *fakeStore }

func (r *fakeBoardRepo) CreateBoard(board *models.Board) error {
	board.ID = r.s.id()
	cp := *board
	r.s.boards[board.ID] = &cp
	return nil
}

func (r *fakeBoardRepo) GetBoardByID(id uint) (*models.Board, error) {
	b, ok := r.s.boards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	if owner, ok := r.s.users[b.UserID]; ok {
		cp.User = owner.Summary()
	}
	return &cp, nil
}

func (r *fakeBoardRepo) GetBoardWithPins(id uint) (*models.Board, error) {
	board, err := r.GetBoardByID(id)
	if err != nil {
		return nil, err
	}
	for _, p := range (&fakePinRepo{r.s}).all() {
		if p.BoardID != nil && *p.BoardID == id {
			board.Pins = append(board.Pins, p)
		}
	}
	return board, nil
}

func (r *fakeBoardRepo) ListBoards(viewerID *uint) ([]models.Board, error) {
	var boards []models.Board
	for _, b := range r.s.boards {
		if !b.IsPrivate || (viewerID != nil && b.UserID == *viewerID) {
			boards = append(boards, *b)
		}
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID > boards[j].ID })
	return boards, nil
}

func (r *fakeBoardRepo) GetBoardsByUserID(userID uint, includePrivate bool) ([]models.Board, error) {
	var boards []models.Board
	for _, b := range r.s.boards {
		if b.UserID == userID && (includePrivate || !b.IsPrivate) {
			boards = append(boards, *b)
		}
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID > boards[j].ID })
	return boards, nil
}

func (r *fakeBoardRepo) UpdateBoard(board *models.Board) error {
	if _, ok := r.s.boards[board.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *board
	cp.User = nil
	cp.Pins = nil
	r.s.boards[board.ID] = &cp
	return nil
}

func (r *fakeBoardRepo) DeleteBoard(id uint) error {
	if _, ok := r.s.boards[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.boards, id)
	for key := range r.s.saves {
		if key[2] == id {
			delete(r.s.saves, key)
		}
	}
	for _, p := range r.s.pins {
		if p.BoardID != nil && *p.BoardID == id {
			p.BoardID = nil
		}
	}
	return nil
}

func (r *fakeBoardRepo) CountBoardsByUserID(userID uint) (int64, error) {
	var count int64
	for _, b := range r.s.boards {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBoardRepo) CountPinsByBoardIDs(boardIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	for _, id := range boardIDs {
		for _, p := range r.s.pins {
			if p.BoardID != nil && *p.BoardID == id {
				result[id]++
			}
		}
	}
	return result, nil
}

// --- LikeRepository ---

type fakeLikeRepo struct{ s *fakeStore }

func (r *fakeLikeRepo) ToggleLike(userID, pinID uint) (bool, error) {
	key := [2]uint{userID, pinID}
	if r.s.likes[key] {
		delete(r.s.likes, key)
		return false, nil
	}
	r.s.likes[key] = true
	return true, nil
}

func (r *fakeLikeRepo) HasUserLikedPin(userID, pinID uint) (bool, error) {
	return r.s.likes[[2]uint{userID, pinID}], nil
}

func (r *fakeLikeRepo) CountLikesByPinID(pinID uint) (int64, error) {
	var count int64
	for key := range r.s.likes {
		if key[1] == pinID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLikeRepo) CountLikesByPinIDs(pinIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	for _, id := range pinIDs {
		count, _ := r.CountLikesByPinID(id)
		if count > 0 {
			result[id] = count
		}
	}
	return result, nil
}

// --- SavedPinRepository ---

type fakeSavedPinRepo struct{ s *fakeStore }

func (r *fakeSavedPinRepo) ToggleSavedPin(userID, pinID, boardID uint) (bool, error) {
	key := [3]uint{userID, pinID, boardID}
	if r.s.saves[key] {
		delete(r.s.saves, key)
		return false, nil
	}
	r.s.saves[key] = true
	return true, nil
}

func (r *fakeSavedPinRepo) IsPinSaved(userID, pinID uint) (bool, error) {
	for key := range r.s.saves {
		if key[0] == userID && key[1] == pinID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSavedPinRepo) CountSavesByPinID(pinID uint) (int64, error) {
	var count int64
	for key := range r.s.saves {
		if key[1] == pinID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSavedPinRepo) GetSavedPinsByBoardID(boardID uint) ([]models.SavedPin, error) {
	var saved []models.SavedPin
	for key := range r.s.saves {
		if key[2] == boardID {
			saved = append(saved, models.SavedPin{UserID: key[0], PinID: key[1], BoardID: key[2]})
		}
	}
	return saved, nil
}
