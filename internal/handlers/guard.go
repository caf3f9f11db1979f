package handlers

import (
	"github.com/pinrest/backend/internal/apperrors"
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/internal/repositories"
)

// requireOwner enforces the ownership guard: a mutating operation only
// proceeds when the resource belongs to the requesting user.
func requireOwner(resourceUserID, userID uint, msg string) error {
	if resourceUserID != userID {
		return apperrors.HTTP(apperrors.ErrForbidden, msg)
	}
	return nil
}

// boardOwnedBy loads a board and verifies the caller owns it. A missing board
// reports Forbidden just like a foreign one: callers may only link or save
// into boards that are verifiably theirs.
func boardOwnedBy(repo repositories.BoardRepository, boardID, userID uint) (*models.Board, error) {
	board, err := repo.GetBoardByID(boardID)
	if err != nil || board.UserID != userID {
		return nil, apperrors.HTTP(apperrors.ErrForbidden, "You can only use your own boards")
	}
	return board, nil
}
