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
	defaultNotificationsTableName = "notifications"
	notificationsOrcamentoIndex   = "orcamento_id-index"
	notificationsVencimentoIndex  = "vencimento-index"

	// Constant partition for the vencimento GSI so a single Query yields the
	// whole set ordered by data_vencimento.
	vencimentoPartition = "NOTIFICACAO"

	// TransactWriteItems hard limit. Batches above it fail before any write.
	maxTransactItems = 100

	// BatchWriteItem hard limit per request (used for retraction deletes).
	maxBatchWriteItems = 25
)

var ErrBatchTooLarge = errors.New("notification batch exceeds transaction limit")

// notificationsDynamoAPI is the slice of the DynamoDB client this repository
// uses. Kept as an interface so the pagination procedure can be driven end to
// end by a fake in tests.
type notificationsDynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ notificationsDynamoAPI = (*dynamodb.Client)(nil)

type notificationItem struct {
	ID                   string `dynamodbav:"id"`
	GSIPK                string `dynamodbav:"gsi_pk"`
	OrcamentoID          string `dynamodbav:"orcamento_id"`
	OrcamentoNumero      string `dynamodbav:"orcamento_numero"`
	OrcamentoDataEmissao string `dynamodbav:"orcamento_data_emissao"`
	ClienteID            string `dynamodbav:"cliente_id"`
	ClienteNome          string `dynamodbav:"cliente_nome"`
	ItemDescricao        string `dynamodbav:"item_descricao"`
	PalavraChave         string `dynamodbav:"palavra_chave"`
	DataVencimento       string `dynamodbav:"data_vencimento"`
	Lida                 bool   `dynamodbav:"lida"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: orcamento_id-index (PK: orcamento_id)
//   - GSI: vencimento-index (PK: gsi_pk, SK: data_vencimento)
//
// data_vencimento is stored as fixed-width RFC3339 UTC, so the GSI's
// lexicographic sort order is chronological order. All five filtered listings run as one
// Query shape over vencimento-index with a per-view FilterExpression; counts
// reuse the same expression with Select COUNT and are approximate under
// concurrent writes.

type NotificationDynamoRepository struct {
	ddb       notificationsDynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

// CreateBatch writes all notifications in a single transaction: either every
// record lands or none does. Generation batches are small (one per matched
// item/keyword pair of a single quote), so the 100-item transaction cap is a
// sanity bound, not an expected case.
func (r *NotificationDynamoRepository) CreateBatch(ctx context.Context, ns []entities.Notification) ([]entities.Notification, error) {
	if len(ns) == 0 {
		return []entities.Notification{}, nil
	}
	if len(ns) > maxTransactItems {
		return nil, ErrBatchTooLarge
	}

	items := make([]types.TransactWriteItem, 0, len(ns))
	for _, n := range ns {
		av, err := attributevalue.MarshalMap(toNotificationItem(n))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// ExistsByTriple checks the generation idempotence key.
func (r *NotificationDynamoRepository) ExistsByTriple(ctx context.Context, orcamentoID, itemDescricao, palavraChave string) (bool, error) {
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationsOrcamentoIndex),
			KeyConditionExpression: aws.String("orcamento_id = :oid"),
			FilterExpression:       aws.String("#item = :item AND #palavra = :palavra"),
			ExpressionAttributeNames: map[string]string{
				"#item":    "item_descricao",
				"#palavra": "palavra_chave",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":oid":     &types.AttributeValueMemberS{Value: orcamentoID},
				":item":    &types.AttributeValueMemberS{Value: itemDescricao},
				":palavra": &types.AttributeValueMemberS{Value: palavraChave},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: start,
		})
		if err != nil {
			return false, err
		}
		if out.Count > 0 {
			return true, nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return false, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteByQuoteID removes every notification of a quote, read or unread.
// Deletes go out in BatchWriteItem chunks; retraction needs no atomicity
// because re-running it converges on the same end state.
func (r *NotificationDynamoRepository) DeleteByQuoteID(ctx context.Context, quoteID string) (int, error) {
	ids, err := r.idsByOrcamentoID(ctx, quoteID)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	for i := 0; i < len(ids); i += maxBatchWriteItems {
		end := i + maxBatchWriteItems
		if end > len(ids) {
			end = len(ids)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, id := range ids[i:end] {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			})
		}

		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for len(pending[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return 0, err
			}
			pending = out.UnprocessedItems
		}
	}
	return len(ids), nil
}

func (r *NotificationDynamoRepository) idsByOrcamentoID(ctx context.Context, quoteID string) ([]string, error) {
	var ids []string
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationsOrcamentoIndex),
			KeyConditionExpression: aws.String("orcamento_id = :oid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":oid": &types.AttributeValueMemberS{Value: quoteID},
			},
			ProjectionExpression: aws.String("id"),
			ExclusiveStartKey:    start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #lida = :lida"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#lida": "lida",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lida": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := r.Find(ctx, interfaces.NotificationFilter{Scope: interfaces.ScopeUnread})
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, n := range unread {
		if _, err := r.MarkRead(ctx, n.ID); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

func (r *NotificationDynamoRepository) Count(ctx context.Context, f interfaces.NotificationFilter) (int64, error) {
	filterExpr, names, values := buildNotificationFilter(f, time.Now().UTC())

	var total int64
	var start map[string]types.AttributeValue
	for {
		in := r.vencimentoQuery(filterExpr, names, values, start)
		in.Select = types.SelectCount

		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		start = out.LastEvaluatedKey
	}
}

// Find returns the whole filtered set ordered by data_vencimento. Meant for
// small administrative reads; client listings go through Paginate.
func (r *NotificationDynamoRepository) Find(ctx context.Context, f interfaces.NotificationFilter) ([]entities.Notification, error) {
	filterExpr, names, values := buildNotificationFilter(f, time.Now().UTC())

	result := make([]entities.Notification, 0)
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, r.vencimentoQuery(filterExpr, names, values, start))
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromNotificationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		start = out.LastEvaluatedKey
	}
}

// Paginate fetches pageSize+1 records ordered by data_vencimento ascending,
// resuming after the record the cursor references. The extra record only
// decides HasMore and is never returned. A cursor pointing at a record that
// was deleted in the meantime restarts from the beginning of the set.
func (r *NotificationDynamoRepository) Paginate(ctx context.Context, f interfaces.NotificationFilter, pageSize int, cursor string) (entities.PaginatedNotifications, error) {
	filterExpr, names, values := buildNotificationFilter(f, time.Now().UTC())

	start, err := r.resumeKey(ctx, cursor)
	if err != nil {
		return entities.PaginatedNotifications{}, err
	}

	want := pageSize + 1
	fetched := make([]entities.Notification, 0, want)
	for len(fetched) < want {
		out, err := r.ddb.Query(ctx, r.vencimentoQuery(filterExpr, names, values, start))
		if err != nil {
			return entities.PaginatedNotifications{}, err
		}
		for _, raw := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.PaginatedNotifications{}, err
			}
			fetched = append(fetched, fromNotificationItem(it))
			if len(fetched) == want {
				break
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}

	total, err := r.Count(ctx, f)
	if err != nil {
		return entities.PaginatedNotifications{}, err
	}

	page := entities.PaginatedNotifications{Total: total}
	if len(fetched) > pageSize {
		page.HasMore = true
		page.Items = fetched[:pageSize]
		page.Cursor = encodeCursor(page.Items[len(page.Items)-1].ID)
	} else {
		page.Items = fetched
	}
	return page, nil
}

// resumeKey rebuilds the ExclusiveStartKey of the vencimento GSI from the id
// the cursor references. The record must be re-read because the cursor itself
// carries no sort-order position.
func (r *NotificationDynamoRepository) resumeKey(ctx context.Context, cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}

	id, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		// Referenced record is gone; restart from the top.
		return nil, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		"gsi_pk":          &types.AttributeValueMemberS{Value: vencimentoPartition},
		"data_vencimento": &types.AttributeValueMemberS{Value: it.DataVencimento},
		"id":              &types.AttributeValueMemberS{Value: it.ID},
	}, nil
}

func (r *NotificationDynamoRepository) vencimentoQuery(
	filterExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
	start map[string]types.AttributeValue,
) *dynamodb.QueryInput {
	vals := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: vencimentoPartition},
	}
	for k, v := range values {
		vals[k] = v
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(notificationsVencimentoIndex),
		KeyConditionExpression:    aws.String("gsi_pk = :pk"),
		ExpressionAttributeValues: vals,
		ScanIndexForward:          aws.Bool(true),
		ExclusiveStartKey:         start,
	}
	if filterExpr != "" {
		in.FilterExpression = aws.String(filterExpr)
		in.ExpressionAttributeNames = names
	}
	return in
}

// buildNotificationFilter translates one filter scope into a DynamoDB
// FilterExpression. "Today" boundaries are midnight UTC of now's date; window
// upper bounds are today + WindowDays.
func buildNotificationFilter(f interfaces.NotificationFilter, now time.Time) (string, map[string]string, map[string]types.AttributeValue) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch f.Scope {
	case interfaces.ScopeUnread:
		return "#lida = :lida",
			map[string]string{"#lida": "lida"},
			map[string]types.AttributeValue{
				":lida": &types.AttributeValueMemberBOOL{Value: false},
			}
	case interfaces.ScopeOverdue:
		return "#dv < :today",
			map[string]string{"#dv": "data_vencimento"},
			map[string]types.AttributeValue{
				":today": &types.AttributeValueMemberS{Value: formatVencimento(today)},
			}
	case interfaces.ScopeActive:
		until := today.AddDate(0, 0, f.WindowDays)
		return "#lida = :lida AND #dv <= :until",
			map[string]string{"#lida": "lida", "#dv": "data_vencimento"},
			map[string]types.AttributeValue{
				":lida":  &types.AttributeValueMemberBOOL{Value: false},
				":until": &types.AttributeValueMemberS{Value: formatVencimento(until)},
			}
	case interfaces.ScopeUpcoming:
		until := today.AddDate(0, 0, f.WindowDays)
		return "#dv BETWEEN :today AND :until",
			map[string]string{"#dv": "data_vencimento"},
			map[string]types.AttributeValue{
				":today": &types.AttributeValueMemberS{Value: formatVencimento(today)},
				":until": &types.AttributeValueMemberS{Value: formatVencimento(until)},
			}
	default:
		return "", nil, nil
	}
}

// formatVencimento truncates to whole seconds: RFC3339Nano omits trailing
// zeros, which would break the lexicographic ordering the GSI sort key needs.
func formatVencimento(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:                   n.ID,
		GSIPK:                vencimentoPartition,
		OrcamentoID:          n.OrcamentoID,
		OrcamentoNumero:      n.OrcamentoNumero,
		OrcamentoDataEmissao: n.OrcamentoDataEmissao.UTC().Format(time.RFC3339Nano),
		ClienteID:            n.ClienteID,
		ClienteNome:          n.ClienteNome,
		ItemDescricao:        n.ItemDescricao,
		PalavraChave:         n.PalavraChave,
		DataVencimento:       formatVencimento(n.DataVencimento),
		Lida:                 n.Lida,
		CreatedAt:            n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	emissao, _ := time.Parse(time.RFC3339Nano, it.OrcamentoDataEmissao)
	vencimento, _ := time.Parse(time.RFC3339Nano, it.DataVencimento)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:                   it.ID,
		OrcamentoID:          it.OrcamentoID,
		OrcamentoNumero:      it.OrcamentoNumero,
		OrcamentoDataEmissao: emissao,
		ClienteID:            it.ClienteID,
		ClienteNome:          it.ClienteNome,
		ItemDescricao:        it.ItemDescricao,
		PalavraChave:         it.PalavraChave,
		DataVencimento:       vencimento,
		Lida:                 it.Lida,
		CreatedAt:            createdAt,
	}
}
