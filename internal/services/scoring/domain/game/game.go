package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrsnaggls2/binokel/internal/platform/id"
)

// PlayerCount is the fixed number of players in a game.
const PlayerCount = 4

// teamNameJoin separates the two member names in a derived team name.
const teamNameJoin = " & "

// Game represents one complete Binokel game between four players in two
// fixed teams. Players 1 and 3 form team 1; players 2 and 4 form team 2.
type Game struct {
	ID        string
	Players   [PlayerCount]string
	TeamName1 string
	TeamName2 string
	CreatedAt time.Time
	// EndPoints1 and EndPoints2 are nil until the game finishes and are set
	// exactly once together with Winner.
	EndPoints1 *int
	EndPoints2 *int
	Winner     Team
}

// Finished reports whether the game has a recorded winner.
func (g Game) Finished() bool {
	return g.Winner != TeamNone
}

// TeamForPlayer returns the team of the 1-based player index.
func TeamForPlayer(index int) Team {
	switch {
	case index == 1 || index == 3:
		return Team1
	case index == 2 || index == 4:
		return Team2
	default:
		return TeamNone
	}
}

// CreateGameInput describes the metadata needed to create a game.
type CreateGameInput struct {
	Players [PlayerCount]string
	// Dealer is the 1-based index of the player who deals round 1.
	Dealer int
}

// NormalizeCreateGameInput trims and validates game creation input.
func NormalizeCreateGameInput(input CreateGameInput) (CreateGameInput, error) {
	for i, name := range input.Players {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return CreateGameInput{}, ErrEmptyPlayerName
		}
		input.Players[i] = trimmed
	}
	if input.Dealer < 1 || input.Dealer > PlayerCount {
		return CreateGameInput{}, ErrInvalidDealer
	}
	return input, nil
}

// CreateGame creates a new game with a generated ID, derived team names, and
// a creation timestamp.
func CreateGame(input CreateGameInput, now func() time.Time, idGenerator func() (string, error)) (Game, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateGameInput(input)
	if err != nil {
		return Game{}, err
	}

	gameID, err := idGenerator()
	if err != nil {
		return Game{}, fmt.Errorf("generate game id: %w", err)
	}

	return Game{
		ID:        gameID,
		Players:   normalized.Players,
		TeamName1: normalized.Players[0] + teamNameJoin + normalized.Players[2],
		TeamName2: normalized.Players[1] + teamNameJoin + normalized.Players[3],
		CreatedAt: now().UTC(),
		Winner:    TeamNone,
	}, nil
}
