package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "HTD_CONFIG"
	EnvDBPath     = "HTD_DB_PATH"
	EnvAddr       = "HTD_ADDR"

	// Defaults applied when env/config leave a value unset
	DefaultDBPath = "hard-to-die.db"
	DefaultAddr   = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteCatalog       = "/catalog"
	RouteLeaderboard   = "/leaderboard"
	RouteRuns          = "/runs"
	RouteRunByID       = "/runs/:runID"
	RouteRunStream     = "/runs/:runID/stream"
	RouteRunLevelStart = "/runs/:runID/level/start"
	RouteRunAction     = "/runs/:runID/action"
	RouteRunConsumable = "/runs/:runID/consumable"
	RouteRunShopEnter  = "/runs/:runID/shop/enter"
	RouteRunShopBuy    = "/runs/:runID/shop/buy"
	RouteRunShopSwap   = "/runs/:runID/shop/replace"
	RouteRunShopCancel = "/runs/:runID/shop/cancel"
	RouteRunRestart    = "/runs/:runID/restart"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrRunNotFound            = "Run not found"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedCreateRun        = "Failed to create run"
	ErrPlayerNameExceeds      = "Player name exceeds 32 characters"
	ErrActionIDRequired       = "action_id is required"
	ErrConsumableIDRequired   = "consumable_id is required"
	ErrItemIDRequired         = "item_id is required"
	ErrFailedUpgradeWebsocket = "Failed to upgrade connection"
)

// Logging field names
const (
	LogFieldRunID      = "run_id"
	LogFieldDifficulty = "difficulty"
	LogFieldLevel      = "level"
	LogFieldAddr       = "addr"
	LogFieldSource     = "source"
)
