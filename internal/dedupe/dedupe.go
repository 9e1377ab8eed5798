package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent identical reads. Using a centralized singleflight.Group
// ensures only one query runs for a given key while other callers wait for
// the result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates concurrent leaderboard queries keyed by the
// requested limit.
var LeaderboardGroup singleflight.Group
