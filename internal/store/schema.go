package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    position             INTEGER PRIMARY KEY AUTOINCREMENT,
    occurred_at          TEXT NOT NULL,
    amount               TEXT NOT NULL,
    type                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    title                TEXT NOT NULL,
    saved_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS prefs (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS auth (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    access_token         TEXT NOT NULL,
    refresh_token        TEXT,
    user_id              TEXT,
    first_name           TEXT,
    last_name            TEXT,
    email                TEXT,
    phone                TEXT,
    language             TEXT
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(occurred_at);
`
