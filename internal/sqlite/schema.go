package sqlite

// Schema DDL. row_id keeps rows unique even when callers add items that
// share an item_id; position holds the wardrobe order.
const (
	createItems = `CREATE TABLE items (
    row_id INTEGER PRIMARY KEY,
    item_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    size TEXT NOT NULL,
    clothing_type TEXT,
    added_at TEXT NOT NULL
);`

	idxItemsPosition = `CREATE INDEX idx_items_position ON items(position);`
	idxItemsSize     = `CREATE INDEX idx_items_size ON items(size, position);`
)

// schemaDDL lists all statements executed on Attach, in order.
var schemaDDL = []string{
	createItems,
	idxItemsPosition,
	idxItemsSize,
}

// Queries used by the backend.
const (
	queryNextPosition = `SELECT COALESCE(MAX(position), 0) FROM items`

	insertItem = `INSERT INTO items (item_id, position, name, description, size, clothing_type, added_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	// BINARY collation compares sizes byte by byte; position breaks ties so
	// the sort is stable.
	selectRowsBySize = `SELECT row_id FROM items ORDER BY size ASC, position ASC`

	updatePosition = `UPDATE items SET position = ? WHERE row_id = ?`

	selectItems = `SELECT item_id, name, description, size, clothing_type, added_at
FROM items ORDER BY position ASC`

	// DISTINCT treats NULL clothing types as one value.
	countDistinctTypes = `SELECT COUNT(*) FROM (SELECT DISTINCT clothing_type FROM items)`
)
