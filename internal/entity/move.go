package entity

import "fmt"

// Move addresses one grid cell. Col grows to the right, Row grows downwards.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewMove(col, row int) Move {
	return Move{Col: col, Row: row}
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Col, that.Row)
}
