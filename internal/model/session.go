package model

import "time"

// State обозначает шаг диалога, на котором находится пользователь.
type State int

const (
	StateMenu State = iota
	StateCollectName
	StateCollectPartySize
	StateCollectDate
	StateCollectTime
	StateCollectNeighborhood
	StateCollectDish
	StateCollectAddress
	StateConfirm
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCollectName:
		return "collect_name"
	case StateCollectPartySize:
		return "collect_party_size"
	case StateCollectDate:
		return "collect_date"
	case StateCollectTime:
		return "collect_time"
	case StateCollectNeighborhood:
		return "collect_neighborhood"
	case StateCollectDish:
		return "collect_dish"
	case StateCollectAddress:
		return "collect_address"
	case StateConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Session хранит данные одного диалога пользователя с ботом.
// Живет от команды входа до завершения или отмены.
type Session struct {
	ChatID       int64     `json:"chat_id"`
	State        State     `json:"state"`
	Name         string    `json:"name,omitempty"`
	PartySize    string    `json:"party_size,omitempty"`
	Date         string    `json:"date,omitempty"`
	Time         string    `json:"time,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Fee          float64   `json:"fee,omitempty"`
	Dish         string    `json:"dish,omitempty"`
	Price        float64   `json:"price,omitempty"`
	Total        float64   `json:"total,omitempty"`
	Address      string    `json:"address,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSession создает пустую сессию в главном меню.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, State: StateMenu}
}
