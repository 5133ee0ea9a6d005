package docstore

import (
	"fmt"
	"regexp"
)

// CreateTimeField orders by the document's creation timestamp rather than
// by a data field.
const CreateTimeField = "__createTime"

var fieldNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Direction int

const (
	Asc Direction = iota
	Desc
)

type Filter struct {
	Field string
	Value any
}

type Order struct {
	Field     string
	Direction Direction
}

// Query selects documents of one collection whose top-level fields equal the
// filter values, ordered by Orders with the document id as final tie-break.
type Query struct {
	Collection string
	Filters    []Filter
	Orders     []Order
	Limit      int
}

func NewQuery(collection string) Query {
	return Query{Collection: collection}
}

func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

func (q Query) OrderBy(field string, dir Direction) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Field: field, Direction: dir})
	return q
}

func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}

func (q Query) Validate() error {
	if err := ValidateCollection(q.Collection); err != nil {
		return err
	}
	for _, f := range q.Filters {
		if !fieldNameRegex.MatchString(f.Field) {
			return fmt.Errorf("invalid filter field %q", f.Field)
		}
	}
	for _, o := range q.Orders {
		if o.Field != CreateTimeField && !fieldNameRegex.MatchString(o.Field) {
			return fmt.Errorf("invalid order field %q", o.Field)
		}
	}
	if q.Limit < 0 {
		return fmt.Errorf("limit must be >= 0")
	}
	return nil
}
