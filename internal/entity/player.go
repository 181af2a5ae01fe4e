package entity

const (
	MarkX     = "X"
	MarkO     = "O"
	MarkEmpty = " "
)

// Player identifies who owns a cell or whose turn it is. The zero value is NoPlayer and marks an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	First
	Second
)

// Other returns the opponent. NoPlayer has no opponent and is returned unchanged.
func (that Player) Other() Player {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoPlayer
	}
}

// Mark - on-screen glyph of the player.
func (that Player) Mark() string {
	switch that {
	case First:
		return MarkX
	case Second:
		return MarkO
	default:
		return MarkEmpty
	}
}

func (that Player) String() string {
	return that.Mark()
}

func (that Player) IsValid() bool {
	return that == First || that == Second
}
