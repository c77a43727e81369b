package repository

import (
	"context"
	"sort"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultParamOptionsTableName = "param_options"

type paramOptionItem struct {
	ID          string `dynamodbav:"id"`
	Category    string `dynamodbav:"category"`
	Label       string `dynamodbav:"label"`
	CreatedByID string `dynamodbav:"created_by_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ParamOptionDynamoRepository persists ParamOption entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ParamOptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IParamOptionRepository = (*ParamOptionDynamoRepository)(nil)

func NewParamOptionDynamoRepository(ddb *dynamodb.Client) *ParamOptionDynamoRepository {
	return &ParamOptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARAM_OPTIONS_TABLE", defaultParamOptionsTableName),
	}
}

func (r *ParamOptionDynamoRepository) Create(ctx context.Context, o entities.ParamOption) (entities.ParamOption, error) {
	av, err := attributevalue.MarshalMap(paramOptionItem{
		ID:          o.ID,
		Category:    string(o.Category),
		Label:       o.Label,
		CreatedByID: o.CreatedByID,
		CreatedAt:   formatTime(o.CreatedAt),
	})
	if err != nil {
		return entities.ParamOption{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ParamOption{}, err
	}
	return o, nil
}

func (r *ParamOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ParamOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ParamOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.ParamOption{}, nil
	}

	var it paramOptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ParamOption{}, err
	}
	return fromParamOptionItem(it), nil
}

func (r *ParamOptionDynamoRepository) ListByCategory(ctx context.Context, category entities.ParamCategory) ([]entities.ParamOption, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		},
	}

	var options []entities.ParamOption
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []paramOptionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			options = append(options, fromParamOptionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options, nil
}

func (r *ParamOptionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func fromParamOptionItem(it paramOptionItem) entities.ParamOption {
	return entities.ParamOption{
		ID:          it.ID,
		Category:    entities.ParamCategory(it.Category),
		Label:       it.Label,
		CreatedByID: it.CreatedByID,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
