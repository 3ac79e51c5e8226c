// File: zone.go
// Title: Time Zone Resolution
// Description: Resolves IANA zone names through the platform database with a
//              process-wide cache of loaded locations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-07-26
// Modified: 2025-08-02
//
// Change History:
// - 2025-07-26 v0.1.0: Initial implementation
// - 2025-07-26 v0.1.1: Location cache (moved from timex)
// - 2025-08-02 v0.3.0: Moved into the calendar package

package calendar

import (
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

// Loaded locations are immutable, so one cache serves every Calendar.
var (
	locationCache = make(map[string]*time.Location)
	locationMu    sync.RWMutex
)

// LoadLocation resolves an IANA zone name through the platform zone
// database, caching the result.
func LoadLocation(zone string) (*time.Location, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return nil, mdwerror.New("zone cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("calendar.LoadLocation")
	}

	locationMu.RLock()
	loc, ok := locationCache[zone]
	locationMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("calendar.LoadLocation").
			WithDetail("zone", zone)
	}

	locationMu.Lock()
	locationCache[zone] = loc
	locationMu.Unlock()

	return loc, nil
}
