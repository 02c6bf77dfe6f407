package database

import "time"

// Pool tuning. A couple of warm connections cover the steady trickle of map
// reads; bursts of plantings grow the pool up to DB_MAX_CONNS.
const (
	MinWarmConns    = 2
	IdleConnTimeout = 5 * time.Minute
)

const (
	ErrMsgBadDSN                 = "tree store: invalid postgres DSN"
	ErrMsgPoolCreate             = "tree store: cannot create pool"
	ErrMsgPoolPing               = "tree store: postgres unreachable"
	ErrMsgFailedToLoadMigrations = "tree store: cannot load migrations"
	ErrMsgFailedToMigrate        = "tree store: migration failed"
)

const (
	LogMsgPoolReady        = "Tree store pool ready"
	LogMsgMigrationApplied = "Applied migration"
	LogMsgSchemaCurrent    = "Tree store schema already current"
)
