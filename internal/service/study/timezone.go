package study

import (
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// today returns the current civil date in the study timezone.
func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.cfg.Location)
}

// studyDate returns the civil date of t in the study timezone.
func (s *Service) studyDate(t time.Time) time.Time {
	return domain.DateOf(t, s.cfg.Location)
}

// weekStartOf returns the first day of the configured week containing date.
func (s *Service) weekStartOf(date time.Time) time.Time {
	return domain.WeekStart(date, s.cfg.WeekStart)
}

// localHour returns the hour of t on the wall clock of the study timezone.
func (s *Service) localHour(t time.Time) int {
	return t.In(s.cfg.Location).Hour()
}

// dateKey formats a calendar date for use as a map key.
func dateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}
