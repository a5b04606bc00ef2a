package models

// CastMember belongs to exactly one book. The cast table is keyed by
// (bookId, name); a roleIx secondary index orders the same partition by
// roleName for prefix lookups.
type CastMember struct {
	BookID   int64  `dynamodbav:"bookId" json:"bookId"`
	Name     string `dynamodbav:"name" json:"name"`
	RoleName string `dynamodbav:"roleName" json:"roleName"`
}
