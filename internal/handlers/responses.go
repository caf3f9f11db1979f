package handlers

import (
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/internal/repositories"
)

// attachLikeCounts fills LikesCount on a batch of pins with a single grouped
// count query.
func attachLikeCounts(likeRepo repositories.LikeRepository, pins []models.Pin) error {
	if len(pins) == 0 {
		return nil
	}
	ids := make([]uint, len(pins))
	for i := range pins {
		ids[i] = pins[i].ID
	}
	counts, err := likeRepo.CountLikesByPinIDs(ids)
	if err != nil {
		return err
	}
	for i := range pins {
		pins[i].LikesCount = counts[pins[i].ID]
	}
	return nil
}

// attachPinCounts fills PinsCount on a batch of boards with a single grouped
// count query.
func attachPinCounts(boardRepo repositories.BoardRepository, boards []models.Board) error {
	if len(boards) == 0 {
		return nil
	}
	ids := make([]uint, len(boards))
	for i := range boards {
		ids[i] = boards[i].ID
	}
	counts, err := boardRepo.CountPinsByBoardIDs(ids)
	if err != nil {
		return err
	}
	for i := range boards {
		boards[i].PinsCount = counts[boards[i].ID]
	}
	return nil
}
