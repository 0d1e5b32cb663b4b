package query

/*
	Package `query` provides the interface for querying mongo db.
	It is basically nothing but a wrap of https://github.com/mongodb/mongo-go-driver
	so please read the document at the following link for any detail
	https://godoc.org/go.mongodb.org/mongo-driver/mongo
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/strategic-club/commerce-api/base/ctx"
	"github.com/strategic-club/commerce-api/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Upsert updates an entry if the selector already exists, inserts it otherwise
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and MongoDB does not guarantee the order of query results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// CustomPatch patches an entry with a customized mongo update document.
	// Returns ErrNotFound if upsert is false and the selector does not match any documents
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error
}
