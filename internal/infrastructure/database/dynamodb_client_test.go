package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDynamoDB(t *testing.T) {
	ctx := context.Background()

	t.Run("local endpoint gets placeholder credentials", func(t *testing.T) {
		client, err := ConnectDynamoDB(ctx, DynamoDBOptions{Region: "ap-northeast-2", Endpoint: "http://localhost:8000"})
		require.NoError(t, err)

		opts := client.Options()
		assert.Equal(t, "ap-northeast-2", opts.Region)
		require.NotNil(t, opts.BaseEndpoint)
		assert.Equal(t, "http://localhost:8000", *opts.BaseEndpoint)

		creds, err := opts.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)
	})

	t.Run("explicit keys win", func(t *testing.T) {
		client, err := ConnectDynamoDB(ctx, DynamoDBOptions{Region: "us-east-1", AccessKeyID: "AKIA", SecretAccessKey: "secret"})
		require.NoError(t, err)

		creds, err := client.Options().Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "AKIA", creds.AccessKeyID)
		assert.Nil(t, client.Options().BaseEndpoint)
	})
}
