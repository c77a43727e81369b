package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEquipmentsTableName = "equipments"

type equipmentItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description"`
	IllustrationPath string `dynamodbav:"illustration_path"`
	UnitPrice        string `dynamodbav:"unit_price"`
	Quantity         int    `dynamodbav:"quantity"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// EquipmentDynamoRepository persists Equipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENTS_TABLE", defaultEquipmentsTableName),
	}
}

func (r *EquipmentDynamoRepository) Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, err
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
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it), nil
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var equipments []entities.Equipment
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []equipmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			equipments = append(equipments, fromEquipmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(equipments, func(i, j int) bool {
		return strings.ToLower(equipments[i].Name) < strings.ToLower(equipments[j].Name)
	})
	return equipments, nil
}

func (r *EquipmentDynamoRepository) Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Equipment{}, nil
		}
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		IllustrationPath: e.IllustrationPath,
		UnitPrice:        floatToString(e.UnitPrice),
		Quantity:         e.Quantity,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.Equipment{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		IllustrationPath: it.IllustrationPath,
		UnitPrice:        price,
		Quantity:         it.Quantity,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
