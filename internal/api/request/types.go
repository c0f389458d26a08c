package request

import (
	"encoding/json"
	"errors"

	"github.com/mcoot/botarena/internal/model"
)

// PlayerID is the telegram_id field. Telegram user ids arrive as JSON
// integers while test clients send strings, so both are accepted.
type PlayerID string

// UnmarshalJSON accepts a JSON string or integer
func (id *PlayerID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = PlayerID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("telegram_id must be a string or an integer")
	}
	if _, err := n.Int64(); err != nil {
		return errors.New("telegram_id must be a string or an integer")
	}
	*id = PlayerID(n.String())
	return nil
}

// CreateProfileRequest is the request body for creating a profile
type CreateProfileRequest struct {
	TelegramID  PlayerID            `json:"telegram_id"`
	Nickname    string              `json:"nickname"`
	Race        string              `json:"race"`
	ExtraPoints model.RawAllocation `json:"extra_points"`
}

// FightRequest is the request body for fighting the bot
type FightRequest struct {
	TelegramID PlayerID `json:"telegram_id"`
	Hit        string   `json:"hit"`
	Defend     string   `json:"defend"`
}

// AllocatePointsRequest is the request body for distributing every extra point
type AllocatePointsRequest struct {
	TelegramID PlayerID            `json:"telegram_id"`
	Allocation model.RawAllocation `json:"allocation"`
}

// SpendPointsRequest is the request body for spending some extra points
type SpendPointsRequest struct {
	TelegramID PlayerID            `json:"telegram_id"`
	Points     model.RawAllocation `json:"points"`
}
