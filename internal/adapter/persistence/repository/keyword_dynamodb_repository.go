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

const defaultKeywordsTableName = "keywords"

type keywordItem struct {
	ID            string `dynamodbav:"id"`
	Palavra       string `dynamodbav:"palavra"`
	DiasExpiracao int    `dynamodbav:"dias_expiracao"`
	Ativa         bool   `dynamodbav:"ativa"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// KeywordDynamoRepository persists Keyword entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The dictionary is small (tens of entries), so FindActive runs a filtered
// Scan rather than maintaining an index on the active flag.

type KeywordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeywordRepository = (*KeywordDynamoRepository)(nil)

func NewKeywordDynamoRepository(ddb *dynamodb.Client) *KeywordDynamoRepository {
	return &KeywordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("KEYWORDS_TABLE", defaultKeywordsTableName),
	}
}

func (r *KeywordDynamoRepository) Create(ctx context.Context, k entities.Keyword) (entities.Keyword, error) {
	av, err := attributevalue.MarshalMap(toKeywordItem(k))
	if err != nil {
		return entities.Keyword{}, err
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
		return entities.Keyword{}, err
	}
	return k, nil
}

func (r *KeywordDynamoRepository) List(ctx context.Context) ([]entities.Keyword, error) {
	return r.scan(ctx, nil, nil)
}

func (r *KeywordDynamoRepository) FindActive(ctx context.Context) ([]entities.Keyword, error) {
	return r.scan(ctx,
		aws.String("#ativa = :ativa"),
		map[string]types.AttributeValue{
			":ativa": &types.AttributeValueMemberBOOL{Value: true},
		},
	)
}

func (r *KeywordDynamoRepository) scan(ctx context.Context, filterExpr *string, values map[string]types.AttributeValue) ([]entities.Keyword, error) {
	keywords := make([]entities.Keyword, 0)
	var start map[string]types.AttributeValue
	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		}
		if filterExpr != nil {
			in.FilterExpression = filterExpr
			in.ExpressionAttributeNames = map[string]string{"#ativa": "ativa"}
			in.ExpressionAttributeValues = values
		}

		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it keywordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			keywords = append(keywords, fromKeywordItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return keywords, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *KeywordDynamoRepository) SetAtiva(ctx context.Context, id string, ativa bool) (entities.Keyword, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ativa = :ativa"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#ativa": "ativa",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ativa": &types.AttributeValueMemberBOOL{Value: ativa},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Keyword{}, nil
		}
		return entities.Keyword{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Keyword{}, nil
	}

	var it keywordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Keyword{}, err
	}
	return fromKeywordItem(it), nil
}

func toKeywordItem(k entities.Keyword) keywordItem {
	return keywordItem{
		ID:            k.ID,
		Palavra:       k.Palavra,
		DiasExpiracao: k.DiasExpiracao,
		Ativa:         k.Ativa,
		CreatedAt:     k.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromKeywordItem(it keywordItem) entities.Keyword {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Keyword{
		ID:            it.ID,
		Palavra:       it.Palavra,
		DiasExpiracao: it.DiasExpiracao,
		Ativa:         it.Ativa,
		CreatedAt:     createdAt,
	}
}
