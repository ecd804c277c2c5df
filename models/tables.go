package models

import (
	"encoding/json"
	"fmt"
)

// TableName identifies one of the closed set of syncable tables. The engine
// never syncs a table that is not listed here; adding a table requires a new
// constant, a registry entry, and a payload type.
type TableName string

const (
	TableAccounts     TableName = "accounts"
	TableCategories   TableName = "categories"
	TableTransactions TableName = "transactions"
	TableInbox        TableName = "inbox_items"
)

// ParentRef points at a record in another table that the referencing record
// depends on. If the parent fails to push in a cycle, the child is skipped in
// the same cycle (chain-skip).
type ParentRef struct {
	Table TableName
	ID    string
}

// TableSpec describes how the engine handles one syncable table: its remote
// endpoint segment, its rank in the fixed dependency order (parents before
// dependents), whether deletes require delete-time version checking against
// the authority, and how to extract foreign-key parents from a payload.
type TableSpec struct {
	Name     TableName
	Endpoint string
	Rank     int

	// DeleteConflictCheck routes the prune phase through the per-record
	// versioned delete endpoint instead of the batched tombstone upsert.
	DeleteConflictCheck bool

	// ParentRefs extracts the foreign-key parents of a payload. Nil for
	// tables with no parents.
	ParentRefs func(data json.RawMessage) ([]ParentRef, error)
}

var tableRegistry = map[TableName]TableSpec{
	TableAccounts: {
		Name:                TableAccounts,
		Endpoint:            "accounts",
		Rank:                0,
		DeleteConflictCheck: true,
	},
	TableCategories: {
		Name:     TableCategories,
		Endpoint: "categories",
		Rank:     1,
		// Categories nest within their own table, so a child's parent is
		// another category.
		ParentRefs: func(data json.RawMessage) ([]ParentRef, error) {
			var p Category
			if err := json.Unmarshal(data, &p); err != nil {
				return nil, fmt.Errorf("decode category payload: %w", err)
			}
			var refs []ParentRef
			if p.ParentID != "" {
				refs = append(refs, ParentRef{Table: TableCategories, ID: p.ParentID})
			}
			return refs, nil
		},
	},
	TableTransactions: {
		Name:     TableTransactions,
		Endpoint: "transactions",
		Rank:     2,
		ParentRefs: func(data json.RawMessage) ([]ParentRef, error) {
			var p Transaction
			if err := json.Unmarshal(data, &p); err != nil {
				return nil, fmt.Errorf("decode transaction payload: %w", err)
			}
			refs := make([]ParentRef, 0, 2)
			if p.AccountID != "" {
				refs = append(refs, ParentRef{Table: TableAccounts, ID: p.AccountID})
			}
			if p.CategoryID != "" {
				refs = append(refs, ParentRef{Table: TableCategories, ID: p.CategoryID})
			}
			return refs, nil
		},
	},
	TableInbox: {
		Name:     TableInbox,
		Endpoint: "inbox",
		Rank:     3,
		ParentRefs: func(data json.RawMessage) ([]ParentRef, error) {
			var p InboxItem
			if err := json.Unmarshal(data, &p); err != nil {
				return nil, fmt.Errorf("decode inbox payload: %w", err)
			}
			var refs []ParentRef
			if p.AccountID != "" {
				refs = append(refs, ParentRef{Table: TableAccounts, ID: p.AccountID})
			}
			if p.TransactionID != "" {
				refs = append(refs, ParentRef{Table: TableTransactions, ID: p.TransactionID})
			}
			return refs, nil
		},
	},
}

// syncOrder is the fixed dependency order used by both push and pull:
// parents strictly before dependents.
var syncOrder = []TableName{TableAccounts, TableCategories, TableTransactions, TableInbox}

// SyncOrder returns the syncable tables in fixed dependency order. The
// returned slice is a copy; callers may reorder it freely.
func SyncOrder() []TableName {
	out := make([]TableName, len(syncOrder))
	copy(out, syncOrder)
	return out
}

// Spec returns the registry entry for table. Unknown tables return an error
// rather than a zero value so a forgotten registry entry fails loudly.
func Spec(table TableName) (TableSpec, error) {
	spec, ok := tableRegistry[table]
	if !ok {
		return TableSpec{}, fmt.Errorf("unknown syncable table %q", table)
	}
	return spec, nil
}

// ValidTable reports whether name is one of the closed syncable table set.
func ValidTable(name TableName) bool {
	_, ok := tableRegistry[name]
	return ok
}
