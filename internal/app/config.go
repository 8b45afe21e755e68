package app

import (
	"io/fs"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"github.com/klabast/ledig-bane/internal/cache"
	"github.com/klabast/ledig-bane/internal/venues"
	"go.uber.org/zap"
)

// Constants
const (
	DateLayout      = "2006-01-02"
	DefaultTimezone = "Europe/Oslo"

	// Error messages
	ErrInvalidDateFormat    = "Invalid date format"
	ErrOutsideWindow        = "Date outside booking window"
	ErrVenueNotFound        = "Venue not found"
	ErrInvalidFormat        = "Invalid format"
	ErrInvalidReminder      = "Invalid reminder"
	ErrInternalServer       = "Internal server error"
	ErrFailedToGenerateJSON = "Failed to generate JSON"
	ErrRateLimited          = "Rate limit exceeded. Try again later."

	// Mode strings
	ModeServe = "serve"
	ModeAdmin = "admin"

	// ICS constants
	ICSProductID = "-//Ledig Bane//Ledige tider//NO"
	ICSUIDDomain = "ledigbane.no"
)

// Options wires an App. Zero values fall back to sensible defaults.
type Options struct {
	Venues    *venues.Table
	Source    availability.SlotSource
	Cache     cache.SlotCache
	Logger    *zap.Logger
	Location  *time.Location
	DaysAhead int
	Now       func() time.Time

	// Auth protects admin routes; nil leaves them unmounted
	Auth *Auth

	IndexHTML         []byte
	StaticFiles       fs.FS
	MaxRequestsPerMin int
}

// App serves the availability pages and API
type App struct {
	venues    *venues.Table
	source    availability.SlotSource
	cache     cache.SlotCache
	log       *zap.Logger
	loc       *time.Location
	daysAhead int
	clock     func() time.Time
	auth      *Auth

	indexHTML   []byte
	staticFiles fs.FS
	limiter     *ipRateLimiter
}

// New builds an App from opts
func New(opts Options) *App {
	a := &App{
		venues:      opts.Venues,
		source:      opts.Source,
		cache:       opts.Cache,
		log:         opts.Logger,
		loc:         opts.Location,
		daysAhead:   opts.DaysAhead,
		clock:       opts.Now,
		auth:        opts.Auth,
		indexHTML:   opts.IndexHTML,
		staticFiles: opts.StaticFiles,
	}

	if a.venues == nil {
		a.venues = venues.Default()
	}
	if a.source == nil {
		a.source = availability.MockSource{}
	}
	if a.cache == nil {
		a.cache = cache.Noop{}
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.loc == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.UTC
		}
		a.loc = loc
	}
	if a.daysAhead <= 0 {
		a.daysAhead = availability.DefaultDaysAhead
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if opts.MaxRequestsPerMin > 0 {
		a.limiter = newIPRateLimiter(opts.MaxRequestsPerMin)
	}

	return a
}

// Mode reports whether admin routes are mounted
func (a *App) Mode() string {
	if a.auth != nil {
		return ModeAdmin
	}
	return ModeServe
}
