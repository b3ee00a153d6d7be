package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// dynamoSettings collects what the work-order store needs to reach DynamoDB,
// whether the real service or a local container.
type dynamoSettings struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// dynamoSettingsFromEnv reads the connection settings. DYNAMODB_ENDPOINT
// points the store at a local instance (e.g. http://dynamodb:8000); the
// credential defaults exist because local DynamoDB does not validate them
// but the SDK still requires a value.
func dynamoSettingsFromEnv() dynamoSettings {
	return dynamoSettings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKey: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// ConnectDynamoDB builds the client behind the work-order repository.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := loadDynamoConfig(context.Background(), dynamoSettingsFromEnv())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func loadDynamoConfig(ctx context.Context, s dynamoSettings) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, ""),
		),
	}
	if s.Endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(localDynamoResolver(s.Endpoint)))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// localDynamoResolver pins only the DynamoDB service to the given endpoint;
// every other service keeps the SDK's default resolution.
func localDynamoResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service != dynamodb.ServiceID {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
		return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
