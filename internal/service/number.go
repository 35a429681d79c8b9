package service

import (
	"fmt"
	"time"
)

// NumberGenerator produces business order numbers of the form
// PED-YYYYMMDD-NNNNN. The numeric tail is the last five digits of the
// milliseconds elapsed since local midnight, so it is a clock-derived
// pseudo-sequence: two orders inside the same bucket collide.
// TODO: back the tail with a database sequence once the inventory team
// confirms the number format is not parsed downstream.
type NumberGenerator struct {
	now func() time.Time
}

func NewNumberGenerator(now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{now: now}
}

func (g *NumberGenerator) Generate() string {
	now := g.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	millis := now.Sub(midnight).Milliseconds()
	return fmt.Sprintf("PED-%s-%05d", now.Format("20060102"), millis%100000)
}
