// Package domain holds the class-assistant entities shared by the stores,
// dialogs, sweeper, and broadcast fan-out.
package domain

import (
	"time"

	"github.com/google/uuid"

	tghelpers "github.com/m3rciful/classbot/core/telegram/helpers"
)

// ExamRecord is a scheduled exam announced by the administrator.
// Date is strict YYYY-MM-DD and Time is strict HH:MM; both are validated
// before a record is created. The sweeper re-parses Date on every sweep
// since the collection file can be edited by hand.
type ExamRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Content string `json:"content"`
}

// NewExamRecord allocates an id and builds a record from wizard input.
func NewExamRecord(name, date, clock, content string) ExamRecord {
	return ExamRecord{
		ID:      uuid.NewString(),
		Name:    name,
		Date:    date,
		Time:    clock,
		Content: content,
	}
}

// Expired reports whether the exam date is strictly before the current day.
// The second return value is false when the date does not parse; such
// records are left in place by the sweeper.
func (e ExamRecord) Expired(now time.Time) (expired, ok bool) {
	d, parsed := tghelpers.ParseDate(e.Date)
	if !parsed {
		return false, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today), true
}
