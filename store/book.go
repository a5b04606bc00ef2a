package store

import (
	"context"
	"strconv"

	"bookcatalog/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func bookKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.AttrID: &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// GetBook returns (nil, nil) when no record exists for id.
func (db *DB) GetBook(ctx context.Context, id int64) (models.Book, error) {
	out, err := db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(db.BooksTable),
		Key:       bookKey(id),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var book models.Book
	if err := attributevalue.UnmarshalMap(out.Item, &book); err != nil {
		return nil, err
	}
	return book, nil
}

// PutBook writes the full record. An existing record with the same id is
// silently overwritten.
func (db *DB) PutBook(ctx context.Context, book models.Book) error {
	item, err := attributevalue.MarshalMap(map[string]any(book))
	if err != nil {
		return err
	}
	_, err = db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(db.BooksTable),
		Item:      item,
	})
	return err
}

// UpdateBookAttributes sets exactly the supplied top-level attributes in one
// UpdateItem call and returns the record as it stands after the write.
func (db *DB) UpdateBookAttributes(ctx context.Context, id int64, attrs map[string]any) (models.Book, error) {
	if len(attrs) == 0 {
		return db.GetBook(ctx, id)
	}
	var update expression.UpdateBuilder
	for k, v := range attrs {
		update = update.Set(expression.Name(k), expression.Value(v))
	}
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, err
	}
	out, err := db.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(db.BooksTable),
		Key:                       bookKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}
	var book models.Book
	if err := attributevalue.UnmarshalMap(out.Attributes, &book); err != nil {
		return nil, err
	}
	return book, nil
}

func (db *DB) DeleteBook(ctx context.Context, id int64) error {
	_, err := db.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(db.BooksTable),
		Key:       bookKey(id),
	})
	return err
}
