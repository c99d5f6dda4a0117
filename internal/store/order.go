// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// reorderRows rewrites display_order for the given table so each id in
// ids takes its index as its order value. The whole rewrite runs in one
// transaction: either every row moves or none does. IDs not present in
// the table are ignored; rows not listed keep their old value and sort
// after the listed ones only if their value is higher.
//
// The table name is always a compile-time constant supplied by the
// calling store, never user input.
func reorderRows(db *sql.DB, table string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("reorder %s: begin: %w", table, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(
		`UPDATE %s SET display_order = $1 WHERE id = $2`, table))
	if err != nil {
		return fmt.Errorf("reorder %s: prepare: %w", table, err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id); err != nil {
			return fmt.Errorf("reorder %s: update %s: %w", table, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder %s: commit: %w", table, err)
	}
	return nil
}
