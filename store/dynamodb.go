package store

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DB holds the DynamoDB client and the two table names. A single DB is
// shared by all requests; the client is safe for concurrent use.
type DB struct {
	Client     *dynamodb.Client
	BooksTable string
	CastTable  string
}

// NewDynamoDB builds the client. endpoint overrides the AWS endpoint for
// DynamoDB Local; leave it empty in real deployments.
func NewDynamoDB(ctx context.Context, region, accessKeyID, secretAccessKey, endpoint, booksTable, castTable string) (*DB, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	var clientOpts []func(*dynamodb.Options)
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
		log.Println("dynamodb: using custom endpoint", endpoint)
	}
	return &DB{
		Client:     dynamodb.NewFromConfig(cfg, clientOpts...),
		BooksTable: booksTable,
		CastTable:  castTable,
	}, nil
}
