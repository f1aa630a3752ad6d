package repository

import (
	"context"
	"errors"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesStatusIndex      = "status-index"
)

type quoteItemRecord struct {
	Descricao string `dynamodbav:"descricao"`
}

type quoteItem struct {
	ID          string            `dynamodbav:"id"`
	Numero      string            `dynamodbav:"numero"`
	ClienteID   string            `dynamodbav:"cliente_id"`
	ClienteNome string            `dynamodbav:"cliente_nome"`
	Status      string            `dynamodbav:"status"`
	DataEmissao string            `dynamodbav:"data_emissao"`
	DataAceite  string            `dynamodbav:"data_aceite,omitempty"`
	Itens       []quoteItemRecord `dynamodbav:"itens"`
	CreatedAt   string            `dynamodbav:"created_at"`
	UpdatedAt   string            `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotesStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return quotes, nil
		}
		start = out.LastEvaluatedKey
	}
}

// UpdateStatus persists the transition and stamps data_aceite when the quote
// enters "aceito". Returns a zero-value Quote when the id does not exist.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if status == entities.QuoteStatusAceito {
		expr += ", #data_aceite = :data_aceite"
		names["#data_aceite"] = "data_aceite"
		values[":data_aceite"] = &types.AttributeValueMemberS{Value: now}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	itens := make([]quoteItemRecord, 0, len(q.Itens))
	for _, item := range q.Itens {
		itens = append(itens, quoteItemRecord{Descricao: item.Descricao})
	}

	it := quoteItem{
		ID:          q.ID,
		Numero:      q.Numero,
		ClienteID:   q.ClienteID,
		ClienteNome: q.ClienteNome,
		Status:      string(q.Status),
		DataEmissao: q.DataEmissao.UTC().Format(time.RFC3339Nano),
		Itens:       itens,
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.DataAceite != nil {
		it.DataAceite = q.DataAceite.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	emissao, _ := time.Parse(time.RFC3339Nano, it.DataEmissao)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	itens := make([]entities.QuoteItem, 0, len(it.Itens))
	for _, rec := range it.Itens {
		itens = append(itens, entities.QuoteItem{Descricao: rec.Descricao})
	}

	q := entities.Quote{
		ID:          it.ID,
		Numero:      it.Numero,
		ClienteID:   it.ClienteID,
		ClienteNome: it.ClienteNome,
		Status:      entities.QuoteStatus(it.Status),
		DataEmissao: emissao,
		Itens:       itens,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.DataAceite != "" {
		if aceite, err := time.Parse(time.RFC3339Nano, it.DataAceite); err == nil {
			q.DataAceite = &aceite
		}
	}
	return q
}
