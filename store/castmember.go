package store

import (
	"context"

	"bookcatalog/models"
	"bookcatalog/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// QueryCastMembers runs a single Query per plan: partition equality on
// bookId plus an optional begins_with on the plan's sort key, against the
// base table or the role index.
func (db *DB) QueryCastMembers(ctx context.Context, plan service.LookupPlan) ([]models.CastMember, error) {
	expr, err := castKeyCondition(plan)
	if err != nil {
		return nil, err
	}
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(db.CastTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if plan.Index != "" {
		in.IndexName = aws.String(plan.Index)
	}
	out, err := db.Client.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	members := []models.CastMember{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func castKeyCondition(plan service.LookupPlan) (expression.Expression, error) {
	keyCond := expression.Key("bookId").Equal(expression.Value(plan.BookID))
	if plan.SortKey != "" {
		keyCond = keyCond.And(expression.Key(plan.SortKey).BeginsWith(plan.Prefix))
	}
	return expression.NewBuilder().WithKeyCondition(keyCond).Build()
}
