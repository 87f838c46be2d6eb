package tracker

import "time"

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) SetIDGenerator(newID func() string) {
	s.newID = newID
}
