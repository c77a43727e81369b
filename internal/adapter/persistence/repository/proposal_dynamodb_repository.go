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

const defaultProposalsTableName = "proposals"

type proposalLineItemItem struct {
	EquipmentID      string `dynamodbav:"equipment_id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description"`
	IllustrationPath string `dynamodbav:"illustration_path"`
	UnitPrice        string `dynamodbav:"unit_price"`
	Quantity         int    `dynamodbav:"quantity"`
	DiscountPercent  string `dynamodbav:"discount_percent"`
}

type proposalItem struct {
	ID              string                 `dynamodbav:"id"`
	Company         string                 `dynamodbav:"company"`
	CNPJ            string                 `dynamodbav:"cnpj"`
	ClientName      string                 `dynamodbav:"client_name"`
	Email           string                 `dynamodbav:"email"`
	Telefone        string                 `dynamodbav:"telefone"`
	Pagamento       string                 `dynamodbav:"pagamento"`
	PrazoEntrega    string                 `dynamodbav:"prazo_entrega"`
	Frete           string                 `dynamodbav:"frete"`
	Validade        string                 `dynamodbav:"validade"`
	Garantia        string                 `dynamodbav:"garantia"`
	GarantiaSistema string                 `dynamodbav:"garantia_sistema"`
	ServicoType     string                 `dynamodbav:"servico_type"`
	ModalidadeType  string                 `dynamodbav:"modalidade_type"`
	UserID          string                 `dynamodbav:"user_id"`
	Filename        string                 `dynamodbav:"filename"`
	EnviarEmail     bool                   `dynamodbav:"enviar_email"`
	EmailCorpo      string                 `dynamodbav:"email_corpo"`
	EmailCC         string                 `dynamodbav:"email_cc"`
	Items           []proposalLineItemItem `dynamodbav:"items"`
	CreatedAt       string                 `dynamodbav:"created_at"`
	UpdatedAt       string                 `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// History filtering happens through a Scan with filter expressions; the
// proposal volume of a sales team stays far below where that hurts, and it
// keeps the table free of secondary indexes.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context, filter interfaces.ProposalFilter) ([]entities.Proposal, error) {
	var exprs []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if filter.UserID != "" {
		exprs = append(exprs, "#user_id = :user_id")
		names["#user_id"] = "user_id"
		values[":user_id"] = &types.AttributeValueMemberS{Value: filter.UserID}
	}
	if filter.ServicoType != "" {
		exprs = append(exprs, "#servico_type = :servico_type")
		names["#servico_type"] = "servico_type"
		values[":servico_type"] = &types.AttributeValueMemberS{Value: string(filter.ServicoType)}
	}
	if filter.ModalidadeType != "" {
		exprs = append(exprs, "#modalidade_type = :modalidade_type")
		names["#modalidade_type"] = "modalidade_type"
		values[":modalidade_type"] = &types.AttributeValueMemberS{Value: string(filter.ModalidadeType)}
	}
	if filter.Date != "" {
		// created_at is RFC3339, so the calendar day is a string prefix.
		exprs = append(exprs, "begins_with(#created_at, :day)")
		names["#created_at"] = "created_at"
		values[":day"] = &types.AttributeValueMemberS{Value: filter.Date}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var proposals []entities.Proposal
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []proposalItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			proposals = append(proposals, fromProposalItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProposalItem(p entities.Proposal) proposalItem {
	items := make([]proposalLineItemItem, 0, len(p.Items))
	for _, li := range p.Items {
		items = append(items, proposalLineItemItem{
			EquipmentID:      li.EquipmentID,
			Name:             li.Name,
			Description:      li.Description,
			IllustrationPath: li.IllustrationPath,
			UnitPrice:        floatToString(li.UnitPrice),
			Quantity:         li.Quantity,
			DiscountPercent:  floatToString(li.DiscountPercent),
		})
	}
	return proposalItem{
		ID:              p.ID,
		Company:         p.Company,
		CNPJ:            p.CNPJ,
		ClientName:      p.ClientName,
		Email:           p.Email,
		Telefone:        p.Telefone,
		Pagamento:       p.Pagamento,
		PrazoEntrega:    p.PrazoEntrega,
		Frete:           p.Frete,
		Validade:        p.Validade,
		Garantia:        p.Garantia,
		GarantiaSistema: p.GarantiaSistema,
		ServicoType:     string(p.ServicoType),
		ModalidadeType:  string(p.ModalidadeType),
		UserID:          p.UserID,
		Filename:        p.Filename,
		EnviarEmail:     p.EnviarEmail,
		EmailCorpo:      p.EmailCorpo,
		EmailCC:         p.EmailCC,
		Items:           items,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	items := make([]entities.ProposalLineItem, 0, len(it.Items))
	for _, li := range it.Items {
		price, _ := strconv.ParseFloat(li.UnitPrice, 64)
		pct, _ := strconv.ParseFloat(li.DiscountPercent, 64)
		items = append(items, entities.ProposalLineItem{
			EquipmentID:      li.EquipmentID,
			Name:             li.Name,
			Description:      li.Description,
			IllustrationPath: li.IllustrationPath,
			UnitPrice:        price,
			Quantity:         li.Quantity,
			DiscountPercent:  pct,
		})
	}
	return entities.Proposal{
		ID:              it.ID,
		Company:         it.Company,
		CNPJ:            it.CNPJ,
		ClientName:      it.ClientName,
		Email:           it.Email,
		Telefone:        it.Telefone,
		Pagamento:       it.Pagamento,
		PrazoEntrega:    it.PrazoEntrega,
		Frete:           it.Frete,
		Validade:        it.Validade,
		Garantia:        it.Garantia,
		GarantiaSistema: it.GarantiaSistema,
		ServicoType:     entities.ServicoType(it.ServicoType),
		ModalidadeType:  entities.ModalidadeType(it.ModalidadeType),
		UserID:          it.UserID,
		Filename:        it.Filename,
		EnviarEmail:     it.EnviarEmail,
		EmailCorpo:      it.EmailCorpo,
		EmailCC:         it.EmailCC,
		Items:           items,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
