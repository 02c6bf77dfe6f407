package sqlite

const (
	driverName = "sqlite3"
	dsnFormat  = "file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)&_pragma=foreign_keys(1)"
	dirPerm    = 0o755

	// createdAtLayout matches the strftime default on created_at
	createdAtLayout = "2006-01-02T15:04:05.000Z"
)

const (
	queryListTrees = `SELECT id, x, y, name, color, timestamp, created_at, image IS NOT NULL
FROM trees
ORDER BY created_at DESC, id DESC`

	queryGetTree = `SELECT id, x, y, name, image, color, timestamp, created_at
FROM trees
WHERE id = ?`

	queryCreateTree = `INSERT INTO trees (x, y, name, image, color, timestamp)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, created_at`

	queryDeleteTree = `DELETE FROM trees WHERE id = ?`

	queryCountTrees = `SELECT COUNT(*) FROM trees`
)

// Log messages
const (
	LogMsgStoredImageInvalid = "Stored tree image is not a valid data URL"
)
