package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsTeamIDIndex      = "team_id-index"
	paymentsExternalIDIndex  = "external_id-index"
)

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	TeamID          string `dynamodbav:"team_id"`
	Amount          int64  `dynamodbav:"amount"`
	Status          string `dynamodbav:"status"`
	ExternalID      string `dynamodbav:"external_id"`
	MerchantOrderID string `dynamodbav:"merchant_order_id"`
	WalletAddress   string `dynamodbav:"wallet_address"`
	CreatedAt       string `dynamodbav:"created_at"`
	ExpiredAt       string `dynamodbav:"expired_at"`
	PaidAt          string `dynamodbav:"paid_at,omitempty"`
	MintingTxHash   string `dynamodbav:"minting_tx_hash,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: team_id-index (PK: team_id)
//   - GSI: external_id-index (PK: external_id)
//
// Create also touches the teams table: claiming the team's active_payment_id
// marker inside the same TransactWriteItems is what makes the
// one-active-payment-per-team rule safe under concurrent requests.

type PaymentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	teamsTableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		teamsTableName: getenvDefault("TEAMS_TABLE", defaultTeamsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.teamsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.TeamID},
					},
					UpdateExpression:    aws.String("SET #apid = :pid"),
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#apid)"),
					ExpressionAttributeNames: map[string]string{
						"#id":   "id",
						"#apid": "active_payment_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pid": &types.AttributeValueMemberS{Value: p.ID},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Payment{}, interfaces.ErrDuplicateActivePayment
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) FindActiveByTeamID(ctx context.Context, teamID string) (entities.Payment, error) {
	payments, err := r.ListByTeamID(ctx, teamID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range payments {
		if p.Status.Active() {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *PaymentDynamoRepository) ListByTeamID(ctx context.Context, teamID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsTeamIDIndex),
		KeyConditionExpression: aws.String("team_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: teamID},
		},
	})
	if err != nil {
		return nil, err
	}

	items, err := unmarshalPayments(out.Items)
	if err != nil {
		return nil, err
	}
	sortPaymentsNewestFirst(items)
	return items, nil
}

func (r *PaymentDynamoRepository) ListNonTerminal(ctx context.Context) ([]entities.Payment, error) {
	var (
		items    []entities.Payment
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status IN (:pending, :processing)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
				":processing": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusProcessing)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalPayments(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context, status entities.PaymentStatus, page, limit int) ([]entities.Payment, int, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var (
		items    []entities.Payment
		startKey map[string]types.AttributeValue
	)
	for {
		in.ExclusiveStartKey = startKey
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, 0, err
		}
		batch, err := unmarshalPayments(out.Items)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, batch...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortPaymentsNewestFirst(items)
	return paginate(items, page, limit), len(items), nil
}

func (r *PaymentDynamoRepository) UpdateStatusGuarded(ctx context.Context, id string, expected, next entities.PaymentStatus, fields interfaces.PaymentUpdateFields) (entities.Payment, error) {
	expr := "SET #status = :next"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
	}
	if fields.PaidAt != nil {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: fields.PaidAt.UTC().Format(time.RFC3339Nano)}
	}
	if fields.MintingTxHash != "" {
		expr += ", #tx_hash = :tx_hash"
		names["#tx_hash"] = "minting_tx_hash"
		values[":tx_hash"] = &types.AttributeValueMemberS{Value: fields.MintingTxHash}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrStatusRaced
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raw))
	for _, m := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func sortPaymentsNewestFirst(items []entities.Payment) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:              p.ID,
		TeamID:          p.TeamID,
		Amount:          p.Amount,
		Status:          string(p.Status),
		ExternalID:      p.ExternalID,
		MerchantOrderID: p.MerchantOrderID,
		WalletAddress:   p.WalletAddress,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiredAt:       p.ExpiredAt.UTC().Format(time.RFC3339Nano),
		MintingTxHash:   p.MintingTxHash,
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiredAt, _ := time.Parse(time.RFC3339Nano, it.ExpiredAt)
	p := entities.Payment{
		ID:              it.ID,
		TeamID:          it.TeamID,
		Amount:          it.Amount,
		Status:          entities.PaymentStatus(it.Status),
		ExternalID:      it.ExternalID,
		MerchantOrderID: it.MerchantOrderID,
		WalletAddress:   it.WalletAddress,
		CreatedAt:       createdAt,
		ExpiredAt:       expiredAt,
		MintingTxHash:   it.MintingTxHash,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &paidAt
		}
	}
	return p
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
