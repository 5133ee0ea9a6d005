package postgres

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	qb "github.com/riskibarqy/bet-hub/internal/platform/querybuilder"
)

var documentColumns = []string{"collection", "id", "data", "created_at", "updated_at"}

// upsertRow is the insert side of a document. data is sent as JSON text so
// the driver does not encode it as bytea.
type upsertRow struct {
	Collection string `db:"collection"`
	ID         string `db:"id"`
	Data       string `db:"data"`
}

func getQuery(collection, docID string, forUpdate bool) (string, []any, error) {
	b := qb.Select(documentColumns...).
		From(documentsTable).
		Where(qb.Eq("collection", collection), qb.Eq("id", docID))
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build get document query: %w", err)
	}
	return query, args, nil
}

const (
	replaceOnConflict = "ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()"
	mergeOnConflict   = "ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()"
)

// upsertQuery keeps created_at and seq of an existing row so creation order
// survives overwrites.
func upsertQuery(collection, docID, rawJSON string) (string, []any, error) {
	return insertDocumentQuery(collection, docID, rawJSON, replaceOnConflict)
}

// mergeInsertQuery is used for a merge into a document that did not exist
// when it was locked. A row inserted concurrently in between is merged at
// the top level instead of being replaced.
func mergeInsertQuery(collection, docID, rawJSON string) (string, []any, error) {
	return insertDocumentQuery(collection, docID, rawJSON, mergeOnConflict)
}

func insertDocumentQuery(collection, docID, rawJSON, onConflict string) (string, []any, error) {
	query, args, err := qb.InsertModel(
		documentsTable,
		upsertRow{Collection: collection, ID: docID, Data: rawJSON},
		onConflict,
	)
	if err != nil {
		return "", nil, fmt.Errorf("build upsert document query: %w", err)
	}
	return query, args, nil
}

func deleteQuery(collection, docID string) (string, []any, error) {
	query, args, err := qb.DeleteFrom(documentsTable).
		Where(qb.Eq("collection", collection), qb.Eq("id", docID)).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build delete document query: %w", err)
	}
	return query, args, nil
}

func buildQuery(q docstore.Query) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	conditions := []qb.Condition{qb.Eq("collection", q.Collection)}
	for _, f := range q.Filters {
		raw, err := sonic.Marshal(f.Value)
		if err != nil {
			return "", nil, fmt.Errorf("filter %s: %w", f.Field, err)
		}
		conditions = append(conditions, qb.JSONFieldEq("data", f.Field, string(raw)))
	}

	orderBy := make([]string, 0, len(q.Orders)+2)
	for _, o := range q.Orders {
		dir := " ASC"
		if o.Direction == docstore.Desc {
			dir = " DESC"
		}
		if o.Field == docstore.CreateTimeField {
			orderBy = append(orderBy, "created_at"+dir, "seq"+dir)
			continue
		}
		orderBy = append(orderBy, qb.JSONField("data", o.Field)+dir)
	}
	orderBy = append(orderBy, "id ASC")

	query, args, err := qb.Select(documentColumns...).
		From(documentsTable).
		Where(conditions...).
		OrderBy(orderBy...).
		Limit(q.Limit).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build query documents: %w", err)
	}
	return query, args, nil
}
