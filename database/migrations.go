package database

// migration represents a single schema migration.
type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of all schema migrations.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create customers and bookings",
		SQL: `
			CREATE TABLE customers (
				id     INTEGER PRIMARY KEY AUTOINCREMENT,
				name   TEXT NOT NULL,
				email  TEXT NOT NULL,
				phone  TEXT NOT NULL
			);

			CREATE INDEX idx_customers_email ON customers (email);

			CREATE TABLE bookings (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				customer_id   INTEGER NOT NULL REFERENCES customers(id),
				booking_type  TEXT NOT NULL,
				date          TEXT NOT NULL,
				time          TEXT NOT NULL,
				status        TEXT NOT NULL DEFAULT 'Confirmed',
				created_at    TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE INDEX idx_bookings_customer ON bookings (customer_id);
			CREATE INDEX idx_bookings_date ON bookings (date);
		`,
	},
	{
		Version: 2,
		Name:    "create knowledge chunks with FTS5",
		SQL: `
			CREATE TABLE knowledge_chunks (
				id           TEXT PRIMARY KEY,
				document_id  TEXT NOT NULL,
				position     INTEGER NOT NULL,
				content      TEXT NOT NULL,
				created_at   TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE INDEX idx_knowledge_document ON knowledge_chunks (document_id, position);

			CREATE VIRTUAL TABLE knowledge_fts USING fts5(
				content,
				content='knowledge_chunks',
				content_rowid='rowid'
			);

			CREATE TRIGGER knowledge_ai AFTER INSERT ON knowledge_chunks BEGIN
				INSERT INTO knowledge_fts(rowid, content)
				VALUES (new.rowid, new.content);
			END;

			CREATE TRIGGER knowledge_ad AFTER DELETE ON knowledge_chunks BEGIN
				INSERT INTO knowledge_fts(knowledge_fts, rowid, content)
				VALUES ('delete', old.rowid, old.content);
			END;

			CREATE TRIGGER knowledge_au AFTER UPDATE ON knowledge_chunks BEGIN
				INSERT INTO knowledge_fts(knowledge_fts, rowid, content)
				VALUES ('delete', old.rowid, old.content);
				INSERT INTO knowledge_fts(rowid, content)
				VALUES (new.rowid, new.content);
			END;
		`,
	},
}
