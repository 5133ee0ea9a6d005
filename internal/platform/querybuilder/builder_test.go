package querybuilder

import "testing"

func TestSelectBuilder_DocumentQuery(t *testing.T) {
	query, args, err := Select("collection", "id", "data").
		From("documents").
		Where(Eq("collection", "leagues/L1/bets"), JSONFieldEq("data", "week", "1")).
		OrderBy(JSONField("data", "createdAt")+" DESC", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT collection, id, data FROM documents WHERE collection = $1 AND data -> 'week' = $2::jsonb ORDER BY data -> 'createdAt' DESC, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "leagues/L1/bets" || args[1] != "1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ForUpdateSuffix(t *testing.T) {
	query, _, err := Select("data").
		From("documents").
		Where(Eq("collection", "leagues"), Eq("id", "L1")).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("documents").
		Columns("collection", "id", "data").
		Values("leagues", "L1", `{"name":"Pool"}`).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3) ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != "L1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("documents").
		Where(Eq("collection", "leagues"), Eq("id", "L1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM documents WHERE collection = $1 AND id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("documents").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

func TestJSONFieldQuotesLiteral(t *testing.T) {
	if got := JSONField("data", "o'neil"); got != "data -> 'o''neil'" {
		t.Fatalf("unexpected quoted field: %s", got)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Collection string `db:"collection"`
		ID         string `db:"id"`
		Ignored    string
	}

	query, args, err := InsertModel("documents", row{Collection: "leagues", ID: "L1"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO documents (collection, id) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_SkipsReadonlyColumns(t *testing.T) {
	type row struct {
		ID        string `db:"id"`
		CreatedAt string `db:"created_at,readonly"`
	}

	query, _, err := InsertModel("documents", &row{ID: "L1"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO documents (id) VALUES ($1)" {
		t.Fatalf("unexpected query: %s", query)
	}
}
