package service

import (
	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
)

func gameToRecord(value game.Game) storage.GameRecord {
	return storage.GameRecord{
		ID:         value.ID,
		Players:    value.Players,
		TeamName1:  value.TeamName1,
		TeamName2:  value.TeamName2,
		CreatedAt:  value.CreatedAt,
		EndPoints1: value.EndPoints1,
		EndPoints2: value.EndPoints2,
		Winner:     value.Winner,
	}
}

func gameFromRecord(record storage.GameRecord) game.Game {
	return game.Game{
		ID:         record.ID,
		Players:    record.Players,
		TeamName1:  record.TeamName1,
		TeamName2:  record.TeamName2,
		CreatedAt:  record.CreatedAt,
		EndPoints1: record.EndPoints1,
		EndPoints2: record.EndPoints2,
		Winner:     record.Winner,
	}
}

func roundToRecord(gameID string, value game.Round) storage.RoundRecord {
	return storage.RoundRecord{
		GameID:       gameID,
		Number:       value.Number,
		Dealer:       value.Dealer,
		Bid:          value.Bid,
		BidTeam:      value.BidTeam,
		Meld1:        value.Meld1,
		Meld2:        value.Meld2,
		Play1:        value.Play1,
		Play2:        value.Play2,
		Confirmation: value.Confirmation,
		Result1:      value.Result1,
		Result2:      value.Result2,
		Total1:       value.Total1,
		Total2:       value.Total2,
	}
}

func roundFromRecord(record storage.RoundRecord) game.Round {
	return game.Round{
		Number:       record.Number,
		Dealer:       record.Dealer,
		Bid:          record.Bid,
		BidTeam:      record.BidTeam,
		Meld1:        record.Meld1,
		Meld2:        record.Meld2,
		Play1:        record.Play1,
		Play2:        record.Play2,
		Confirmation: record.Confirmation,
		Result1:      record.Result1,
		Result2:      record.Result2,
		Total1:       record.Total1,
		Total2:       record.Total2,
	}
}
