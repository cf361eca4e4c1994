package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions selects region, credentials and an optional local endpoint
// (e.g. http://dynamodb:8000).
type DynamoDBOptions struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// ConnectDynamoDB creates a DynamoDB client for the lawyer and payment tables.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	}

	if opts.Endpoint != "" {
		endpoint := opts.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
