package application

import "expvar"

// Counters published under /debug/vars as "ghardekho".
var stats = expvar.NewMap("ghardekho")

const (
	statRegistrations   = "registrations"
	statLogins          = "logins"
	statLoginFailures   = "login_failures"
	statListingsCreated = "listings_created"
	statSaves           = "saves"
	statRemovals        = "saved_removals"
	statSearches        = "searches"
)

func incr(key string) { stats.Add(key, 1) }
