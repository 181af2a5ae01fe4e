package entity

const (
	StatusWon  = "won"
	StatusDraw = "draw"
)

// GameResult - terminal outcome of a game. Winner is NoPlayer for a draw.
type GameResult struct {
	Status string `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func PlayerWon(player Player) GameResult {
	return GameResult{Status: StatusWon, Winner: player}
}

func Draw() GameResult {
	return GameResult{Status: StatusDraw}
}

func (that GameResult) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameResult) IsWon() bool {
	return that.Status == StatusWon
}

func (that GameResult) String() string {
	if that.IsWon() {
		return that.Winner.Mark() + " won"
	}

	return "draw"
}
