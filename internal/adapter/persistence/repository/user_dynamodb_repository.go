package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID           string `dynamodbav:"id"`
	Usuario      string `dynamodbav:"usuario"`
	NomeCompleto string `dynamodbav:"nome_completo"`
	SenhaHash    string `dynamodbav:"senha_hash"`
	Tipo         string `dynamodbav:"tipo"`
	Email        string `dynamodbav:"email"`
	ProxNum      int    `dynamodbav:"prox_num"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Login resolution scans on the usuario attribute; the account table of a
// sales team is tiny and a GSI would be overkill.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByUsuario(ctx context.Context, usuario string) (entities.User, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#usuario = :usuario"),
		ExpressionAttributeNames: map[string]string{
			"#usuario": "usuario",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":usuario": &types.AttributeValueMemberS{Value: usuario},
		},
	}

	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return entities.User{}, err
		}
		if len(out.Items) > 0 {
			var it userItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.User{}, err
			}
			return fromUserItem(it), nil
		}
		if out.LastEvaluatedKey == nil {
			return entities.User{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var users []entities.User
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []userItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			users = append(users, fromUserItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Usuario < users[j].Usuario
	})
	return users, nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// NextProposalNumber advances the per-user sequence with a single atomic ADD
// and returns the number consumed by this call. Two concurrent proposal
// creations therefore always get distinct numbers.
func (r *UserDynamoRepository) NextProposalNumber(ctx context.Context, id string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #prox_num :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#prox_num": "prox_num",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["prox_num"]
	if !ok {
		return 0, errors.New("prox_num ausente após incremento")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("prox_num com tipo inesperado")
	}
	next, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, err
	}
	// prox_num holds the next number to hand out; after the ADD the
	// consumed one is the previous value.
	consumed := next - 1
	if consumed < 1 {
		consumed = 1
	}
	return consumed, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Usuario:      u.Usuario,
		NomeCompleto: u.NomeCompleto,
		SenhaHash:    u.SenhaHash,
		Tipo:         string(u.Tipo),
		Email:        u.Email,
		ProxNum:      u.ProxNum,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Usuario:      it.Usuario,
		NomeCompleto: it.NomeCompleto,
		SenhaHash:    it.SenhaHash,
		Tipo:         entities.UserRole(it.Tipo),
		Email:        it.Email,
		ProxNum:      it.ProxNum,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
