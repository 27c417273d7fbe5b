package game

import "strings"

// Team identifies one of the two fixed teams in a game.
type Team int

const (
	// TeamNone represents an unset team value.
	TeamNone Team = iota
	// Team1 is the team of players 1 and 3.
	Team1
	// Team2 is the team of players 2 and 4.
	Team2
)

// Opponent returns the opposing team, or TeamNone for an unset value.
func (t Team) Opponent() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	default:
		return TeamNone
	}
}

// String returns the wire label for the team.
func (t Team) String() string {
	switch t {
	case Team1:
		return "team1"
	case Team2:
		return "team2"
	default:
		return ""
	}
}

// ParseTeam maps a wire label or numeric label onto a Team.
func ParseTeam(value string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "team1", "1":
		return Team1, true
	case "team2", "2":
		return Team2, true
	default:
		return TeamNone, false
	}
}

// Mode selects how a round's bid is settled.
type Mode int

const (
	// ModeUnspecified represents an unset mode value.
	ModeUnspecified Mode = iota
	// ModeNormal evaluates the bid against the bidding team's meld and play points.
	ModeNormal
	// ModeEinfachAb concedes the bid for a single, undoubled penalty.
	ModeEinfachAb
	// ModeThousand declares an instant win worth the full game.
	ModeThousand
)

// String returns the wire label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEinfachAb:
		return "einfach_ab"
	case ModeThousand:
		return "thousand"
	default:
		return ""
	}
}

// ParseMode maps a wire label onto a Mode.
func ParseMode(value string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal":
		return ModeNormal, true
	case "einfach_ab", "einfachab":
		return ModeEinfachAb, true
	case "thousand", "tausend":
		return ModeThousand, true
	default:
		return ModeUnspecified, false
	}
}

// Confirmation records whether the bidding team reached its bid.
// Pending marks the one open round; Met and Rejected are settled history, so
// "not yet decided" and "explicitly missed" stay distinguishable.
type Confirmation int

const (
	// ConfirmationPending marks a round that has not been settled yet.
	ConfirmationPending Confirmation = iota
	// ConfirmationMet records that the bidding team reached its bid.
	ConfirmationMet
	// ConfirmationRejected records that the bidding team missed or conceded its bid.
	ConfirmationRejected
)

// String returns the wire label for the confirmation state.
func (c Confirmation) String() string {
	switch c {
	case ConfirmationMet:
		return "met"
	case ConfirmationRejected:
		return "rejected"
	default:
		return "pending"
	}
}
