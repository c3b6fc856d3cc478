package persistence

import (
	"errors"

	"github.com/shop/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// DeleteRule describes what happens to rows referencing a deleted parent row.
type DeleteRule int

const (
	// CascadeDelete removes referencing rows together with the parent.
	CascadeDelete DeleteRule = iota
	// SetNull clears the referencing column and keeps the row.
	SetNull
)

// relation ties a child table's foreign key column to its delete rule.
type relation struct {
	table  string
	column string
	rule   DeleteRule
}

// primaryKeys maps each table to its primary key column.
var primaryKeys = map[string]string{
	"categories":             "category_id",
	"suppliers":              "supplier_id",
	"customers":              "customer_id",
	"products":               "product_id",
	"orders":                 "order_id",
	"order_items":            "order_item_id",
	"payments":               "payment_id",
	"shipments":              "shipment_id",
	"reviews":                "review_id",
	"inventory_transactions": "transaction_id",
}

// deleteRules declares, per parent table, how its dependents are handled on
// delete. Rules are evaluated transitively: deleting a customer removes its
// orders, which in turn removes their items, payments and shipments.
var deleteRules = map[string][]relation{
	"categories": {
		{table: "products", column: "category_id", rule: SetNull},
	},
	"suppliers": {
		{table: "inventory_transactions", column: "supplier_id", rule: SetNull},
	},
	"customers": {
		{table: "orders", column: "customer_id", rule: CascadeDelete},
		{table: "reviews", column: "customer_id", rule: CascadeDelete},
	},
	"products": {
		{table: "order_items", column: "product_id", rule: CascadeDelete},
		{table: "reviews", column: "product_id", rule: CascadeDelete},
		{table: "inventory_transactions", column: "product_id", rule: CascadeDelete},
	},
	"orders": {
		{table: "order_items", column: "order_id", rule: CascadeDelete},
		{table: "payments", column: "order_id", rule: CascadeDelete},
		{table: "shipments", column: "order_id", rule: CascadeDelete},
	},
}

// deleteWithRules removes the row with the given primary key from table,
// applying the declared delete rules to all dependents. Must run inside a
// transaction so a failure midway leaves no partial deletes behind.
func deleteWithRules(tx *gorm.DB, table string, id uint) error {
	var count int64
	if err := tx.Table(table).Where(primaryKeys[table]+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return applyDeleteRules(tx, table, []uint{id})
}

func applyDeleteRules(tx *gorm.DB, table string, ids []uint) error {
	for _, rel := range deleteRules[table] {
		switch rel.rule {
		case SetNull:
			err := tx.Exec(
				"UPDATE "+rel.table+" SET "+rel.column+" = NULL WHERE "+rel.column+" IN ?", ids,
			).Error
			if err != nil {
				return err
			}
		case CascadeDelete:
			var childIDs []uint
			err := tx.Table(rel.table).
				Where(rel.column+" IN ?", ids).
				Pluck(primaryKeys[rel.table], &childIDs).Error
			if err != nil {
				return err
			}
			if len(childIDs) > 0 {
				if err := applyDeleteRules(tx, rel.table, childIDs); err != nil {
					return err
				}
			}
		}
	}
	return tx.Exec("DELETE FROM "+table+" WHERE "+primaryKeys[table]+" IN ?", ids).Error
}

// ensureReference verifies that the referenced row exists before a foreign
// key is written. The check runs in the storage layer so behavior does not
// depend on the database enforcing constraints.
func ensureReference(tx *gorm.DB, table string, id uint) error {
	var count int64
	if err := tx.Table(table).Where(primaryKeys[table]+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrInvalidReference
	}
	return nil
}

// referencedID extracts a foreign key value from an update field map.
// Returns false when the column is absent or being set to NULL.
func referencedID(fields map[string]any, column string) (uint, bool) {
	v, ok := fields[column]
	if !ok || v == nil {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case *uint:
		if id == nil {
			return 0, false
		}
		return *id, true
	}
	return 0, false
}

// updateFields applies a partial update inside tx. Zero matched rows means
// the record does not exist. An empty field map is a no-op so the caller can
// still re-read and return the current record.
func updateFields(tx *gorm.DB, model any, pkColumn string, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := tx.Model(model).Where(pkColumn+" = ?", id).Updates(fields)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// translateError maps GORM errors onto domain errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrInvalidReference
	default:
		return err
	}
}
