package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DynamoDBOptions selects the region, an optional endpoint override
// (DynamoDB Local, e.g. http://dynamodb:8000) and optional static keys.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB builds a client from the default AWS chain, overridden by opts.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions(opts)...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	log.WithFields(log.Fields{
		"region":   cfg.Region,
		"endpoint": opts.Endpoint,
	}).Info("[dynamodb][database] client configured")

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

func loadOptions(opts DynamoDBOptions) []func(*awsconfig.LoadOptions) error {
	var out []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		out = append(out, awsconfig.WithRegion(opts.Region))
	}

	switch {
	case opts.AccessKeyID != "" && opts.SecretAccessKey != "":
		out = append(out, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	case opts.Endpoint != "":
		// DynamoDB Local ignores credentials, but the SDK still signs requests.
		out = append(out, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}
	return out
}
