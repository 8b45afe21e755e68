package app

import (
	"context"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"go.uber.org/zap"
)

// cachedSource consults the slot cache before the underlying source.
// Cache failures are logged and otherwise ignored.
type cachedSource struct {
	ctx context.Context
	app *App
}

func (a *App) slotSource(ctx context.Context) availability.SlotSource {
	return cachedSource{ctx: ctx, app: a}
}

// Slots implements availability.SlotSource
func (s cachedSource) Slots(venueID string, date time.Time) []availability.TimeSlot {
	log := s.app.log.With(zap.String("venue", venueID), zap.String("date", date.Format(DateLayout)))

	slots, ok, err := s.app.cache.Get(s.ctx, venueID, date)
	if err != nil {
		log.Warn("Slot cache read failed", zap.Error(err))
	}
	if ok {
		return slots
	}

	slots = s.app.source.Slots(venueID, date)
	if err := s.app.cache.Set(s.ctx, venueID, date, slots); err != nil {
		log.Warn("Slot cache write failed", zap.Error(err))
	}
	return slots
}
