package i18n

var messagesDeDE = map[Code]string{
	CodeGameEmptyPlayerName: "Alle vier Spielernamen werden benötigt.",
	CodeGameInvalidDealer:   "Der Geber muss ein Spieler von 1 bis 4 sein.",
	CodeGameFinished:        "Dieses Spiel ist bereits beendet.",
	CodeGameOutcomeConflict: "Das Spielergebnis wurde bereits mit anderen Punkten eingetragen.",
	CodeRoundInvalidMode:    "Unbekannter Wertungsmodus {{.mode}}.",
	CodeRoundInvalidBid:     "Das Gebot muss mindestens {{.min}} betragen und durch {{.step}} teilbar sein.",
	CodeRoundInvalidBidTeam: "Das reizende Team muss Team 1 oder Team 2 sein.",
	CodeRoundNegativePoints: "Meld- und Stichpunkte dürfen nicht negativ sein.",
	CodeRoundNotCurrent:     "Nur die aktuelle Runde {{.current}} kann gewertet werden.",
	CodeRoundAlreadyExists:  "Runde {{.number}} existiert bereits.",
	CodeNotFound:            "Der angeforderte Eintrag wurde nicht gefunden.",
	CodeBadRequest:          "Die Anfrage konnte nicht verarbeitet werden.",
}
