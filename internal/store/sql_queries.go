// SPDX-License-Identifier: Apache-2.0

package store

const (
	saveRecord = `
		INSERT INTO sync_records (
			user_id,
			table_name,
			id,
			version,
			data,
			deleted_at,
			sync_status,
			sync_error,
			conflict_remote_version,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, table_name, id) DO UPDATE SET
			version                 = excluded.version,
			data                    = excluded.data,
			deleted_at              = excluded.deleted_at,
			sync_status             = excluded.sync_status,
			sync_error              = excluded.sync_error,
			conflict_remote_version = excluded.conflict_remote_version,
			updated_at              = excluded.updated_at;`

	getRecord = `
		SELECT
			user_id,
			table_name,
			id,
			version,
			data,
			deleted_at,
			sync_status,
			sync_error,
			conflict_remote_version,
			created_at,
			updated_at
		FROM sync_records
		WHERE user_id = ? AND table_name = ? AND id = ?;`

	markRecordSynced = `
		UPDATE sync_records SET
			version                 = ?,
			sync_status             = 'synced',
			sync_error              = NULL,
			conflict_remote_version = 0,
			updated_at              = ?
		WHERE user_id = ? AND table_name = ? AND id = ?;`

	markRecordConflict = `
		UPDATE sync_records SET
			sync_status             = 'conflict',
			sync_error              = ?,
			conflict_remote_version = ?,
			updated_at              = ?
		WHERE user_id = ? AND table_name = ? AND id = ?;`

	markRecordPending = `
		UPDATE sync_records SET
			sync_status = 'pending',
			sync_error  = ?,
			updated_at  = ?
		WHERE user_id = ? AND table_name = ? AND id = ?;`

	deleteRecordPhysical = `
		DELETE FROM sync_records
		WHERE user_id = ? AND table_name = ? AND id = ?;`

	// applyRemoteRecord is the pull-apply upsert. Rows sitting in conflict
	// state are left untouched so a remote write can never silently
	// overwrite a surfaced conflict.
	applyRemoteRecord = `
		INSERT INTO sync_records (
			user_id,
			table_name,
			id,
			version,
			data,
			deleted_at,
			sync_status,
			sync_error,
			conflict_remote_version,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, 'synced', NULL, 0, ?, ?)
		ON CONFLICT (user_id, table_name, id) DO UPDATE SET
			version                 = excluded.version,
			data                    = excluded.data,
			deleted_at              = excluded.deleted_at,
			sync_status             = 'synced',
			sync_error              = NULL,
			conflict_remote_version = 0,
			updated_at              = excluded.updated_at
		WHERE sync_records.sync_status != 'conflict';`

	getTableCheckpoints = `
		SELECT table_name, last_synced_version
		FROM sync_metadata
		WHERE user_id = ?;`

	// advanceTableCheckpoint only ever raises a table's checkpoint;
	// a lower incoming value is a no-op.
	advanceTableCheckpoint = `
		INSERT INTO sync_metadata (user_id, table_name, last_synced_version, sync_error, updated_at)
		VALUES (?, ?, ?, NULL, ?)
		ON CONFLICT (user_id, table_name) DO UPDATE SET
			last_synced_version = excluded.last_synced_version,
			sync_error          = NULL,
			updated_at          = excluded.updated_at
		WHERE excluded.last_synced_version > sync_metadata.last_synced_version;`

	// lowerTableCheckpoint is the conflict-discard escape hatch: it lowers
	// one table's checkpoint so the authority copy of a discarded record is
	// re-fetched by the next pull. Never called from a pull cycle.
	lowerTableCheckpoint = `
		INSERT INTO sync_metadata (user_id, table_name, last_synced_version, sync_error, updated_at)
		VALUES (?, ?, ?, NULL, ?)
		ON CONFLICT (user_id, table_name) DO UPDATE SET
			last_synced_version = excluded.last_synced_version,
			updated_at          = excluded.updated_at
		WHERE excluded.last_synced_version < sync_metadata.last_synced_version;`

	recordTableSyncError = `
		INSERT INTO sync_metadata (user_id, table_name, last_synced_version, sync_error, updated_at)
		VALUES (?, ?, 0, ?, ?)
		ON CONFLICT (user_id, table_name) DO UPDATE SET
			sync_error = excluded.sync_error,
			updated_at = excluded.updated_at;`
)
