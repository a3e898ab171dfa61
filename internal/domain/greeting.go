package domain

import (
	"github.com/google/uuid"
)

// Greeting — единица работы: одно событие из Kafka, сохраняемое в таблицу greeting.
// Текстовые поля не валидируются.
type Greeting struct {
	MessageID uuid.UUID `json:"id"`
	To        string    `json:"to"`
	From      string    `json:"from"`
	Heading   string    `json:"heading"`
	Message   string    `json:"message"`
	Created   NaiveTime `json:"created"`
}

// LogEntry — запись таблицы logg, которую заполняет процедура generate_logg.
type LogEntry struct {
	ID         int64     `json:"id"`
	GreetingID int64     `json:"greeting_id"`
	Created    NaiveTime `json:"created"`
}
