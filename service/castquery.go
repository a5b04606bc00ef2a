package service

import (
	"context"

	"bookcatalog/models"
	"bookcatalog/schema"
)

// RoleIndexName is the secondary index ordering a book's cast by role name.
const RoleIndexName = "roleIx"

// LookupPlan is a fully-resolved cast-member query: which partition, which
// index and which prefix condition, decided before the store is touched.
type LookupPlan struct {
	BookID int64
	// Index is "" for the base table or RoleIndexName.
	Index string
	// SortKey and Prefix describe a begins_with condition on the named
	// ordering attribute; SortKey "" means partition-only.
	SortKey string
	Prefix  string
}

// CastMembers answers cast-member lookups for a book.
type CastMembers struct {
	store     CastMemberStore
	validator ShapeValidator
}

func NewCastMembers(store CastMemberStore, validator ShapeValidator) *CastMembers {
	return &CastMembers{store: store, validator: validator}
}

// BuildLookup validates the parameters and produces exactly one plan.
// Precedence: roleName prefix via the role index, then name prefix via the
// primary ordering, then the whole partition. The branches are checked in
// that order, so supplying both roleName and name never yields a conjunction.
func (c *CastMembers) BuildLookup(bookIDRaw string, params map[string]string) (LookupPlan, error) {
	id, ok := parseBookID(bookIDRaw)
	if !ok {
		return LookupPlan{}, errf(KindInvalidBookID, "invalid bookId: %s", bookIDRaw)
	}
	merged := make(map[string]any, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["bookId"] = bookIDRaw
	res, err := c.validator.Validate(merged, schema.ShapeCastQueryParams)
	if err != nil {
		return LookupPlan{}, wrapf(KindStore, err, "schema validation failed")
	}
	if !res.Valid {
		return LookupPlan{}, &Error{
			Kind:        KindValidation,
			Message:     "incorrect type, must match query parameters schema",
			Diagnostics: res.Diagnostics,
		}
	}

	plan := LookupPlan{BookID: id}
	if role, ok := params["roleName"]; ok {
		plan.Index = RoleIndexName
		plan.SortKey = "roleName"
		plan.Prefix = role
	} else if name, ok := params["name"]; ok {
		plan.SortKey = "name"
		plan.Prefix = name
	}
	return plan, nil
}

// List builds the lookup plan and executes it.
func (c *CastMembers) List(ctx context.Context, bookIDRaw string, params map[string]string) ([]models.CastMember, error) {
	plan, err := c.BuildLookup(bookIDRaw, params)
	if err != nil {
		return nil, err
	}
	members, err := c.store.QueryCastMembers(ctx, plan)
	if err != nil {
		return nil, wrapf(KindStore, err, "failed to query cast members")
	}
	return members, nil
}
