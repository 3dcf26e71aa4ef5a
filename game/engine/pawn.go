package engine

// Pawn is a player's movable token. Coordinates mirrors the hex the board
// keeps it on.
type Pawn struct {
	ID          int            `json:"id"`
	PlayerID    int            `json:"player_id"`
	Coordinates CubeCoordinate `json:"coordinates"`
}

// PawnID returns the id of the n:th pawn (starting from 1) of a player
func PawnID(playerID, n int) int {
	return playerID*10 + n
}
