package store

import (
	"context"

	"bookcatalog/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BatchWriteItem accepts at most 25 put requests per call.
const maxBatchItems = 25

// SeedBooks bulk-loads book records, 25 per batch.
func (db *DB) SeedBooks(ctx context.Context, books []models.Book) error {
	items := make([]map[string]types.AttributeValue, 0, len(books))
	for _, b := range books {
		item, err := attributevalue.MarshalMap(map[string]any(b))
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	return db.batchWrite(ctx, db.BooksTable, items)
}

// SeedCastMembers bulk-loads cast-member records, 25 per batch.
func (db *DB) SeedCastMembers(ctx context.Context, members []models.CastMember) error {
	items := make([]map[string]types.AttributeValue, 0, len(members))
	for _, m := range members {
		item, err := attributevalue.MarshalMap(m)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	return db.batchWrite(ctx, db.CastTable, items)
}

func (db *DB) batchWrite(ctx context.Context, table string, items []map[string]types.AttributeValue) error {
	for start := 0; start < len(items); start += maxBatchItems {
		end := min(start+maxBatchItems, len(items))
		requests := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		pending := map[string][]types.WriteRequest{table: requests}
		for len(pending[table]) > 0 {
			out, err := db.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
