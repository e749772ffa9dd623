// SPDX-License-Identifier: Apache-2.0

package store

const (
	createKVTable = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	getValue = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	setValue = `
		INSERT INTO kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteValue = `
		DELETE FROM kv
		WHERE key = $1;`

	clearValues = `
		DELETE FROM kv;`
)
