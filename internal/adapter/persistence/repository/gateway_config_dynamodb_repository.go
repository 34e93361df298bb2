package repository

import (
	"context"
	"time"

	"paymob_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayConfigTableName = "gateway_config"

type gatewayConfigItem struct {
	Name      string `dynamodbav:"name"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// GatewayConfigDynamoRepository persists gateway configuration entries in
// DynamoDB, one item per key. It backs the config store injected into the
// Paymob client so the authenticated token/merchant id survive restarts and
// are shared between instances.
//
// Table requirements:
//   - PK: name (string)

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigStore = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMOB_CONFIG_TABLE", defaultGatewayConfigTableName),
	}
}

// Get returns "" for keys that have no item; absence is not an error.
func (r *GatewayConfigDynamoRepository) Get(ctx context.Context, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Value, nil
}

func (r *GatewayConfigDynamoRepository) Set(ctx context.Context, values map[string]string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range values {
		av, err := attributevalue.MarshalMap(gatewayConfigItem{Name: k, Value: v, UpdatedAt: now})
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}
