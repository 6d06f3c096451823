package repository

import (
	"context"
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
	defaultTeamsTableName = "teams"
	teamsLeaderIDIndex    = "leader_id-index"
)

type memberItem struct {
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone"`
	BirthDate      string `dynamodbav:"birth_date"`
	EducationLevel string `dynamodbav:"education_level"`
	Institution    string `dynamodbav:"institution"`
	IsLeader       bool   `dynamodbav:"is_leader"`
}

type teamItem struct {
	ID                 string       `dynamodbav:"id"`
	Name               string       `dynamodbav:"name"`
	Category           string       `dynamodbav:"category"`
	LeaderID           string       `dynamodbav:"leader_id"`
	VerificationStatus string       `dynamodbav:"verification_status"`
	Paid               bool         `dynamodbav:"paid"`
	ActivePaymentID    string       `dynamodbav:"active_payment_id,omitempty"`
	Members            []memberItem `dynamodbav:"members,omitempty"`
	CreatedAt          string       `dynamodbav:"created_at"`
	UpdatedAt          string       `dynamodbav:"updated_at"`
}

// TeamDynamoRepository persists Team entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: leader_id-index (PK: leader_id)
//
// Members are embedded on the team item; the roster is small and always read
// together with the team.

type TeamDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITeamRepository = (*TeamDynamoRepository)(nil)

func NewTeamDynamoRepository(ddb *dynamodb.Client) *TeamDynamoRepository {
	return &TeamDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEAMS_TABLE", defaultTeamsTableName),
	}
}

func (r *TeamDynamoRepository) Create(ctx context.Context, t entities.Team) (entities.Team, error) {
	av, err := attributevalue.MarshalMap(toTeamItem(t))
	if err != nil {
		return entities.Team{}, err
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
		return entities.Team{}, err
	}
	return t, nil
}

func (r *TeamDynamoRepository) GetByID(ctx context.Context, id string) (entities.Team, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Team{}, err
	}
	if len(out.Item) == 0 {
		return entities.Team{}, nil
	}

	var it teamItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Team{}, err
	}
	return fromTeamItem(it), nil
}

func (r *TeamDynamoRepository) ListByLeaderID(ctx context.Context, leaderID string, page, limit int) ([]entities.Team, int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(teamsLeaderIDIndex),
		KeyConditionExpression: aws.String("leader_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leaderID},
		},
	})
	if err != nil {
		return nil, 0, err
	}

	items, err := unmarshalTeams(out.Items)
	if err != nil {
		return nil, 0, err
	}
	sortTeamsNewestFirst(items)
	return paginate(items, page, limit), len(items), nil
}

func (r *TeamDynamoRepository) List(ctx context.Context, page, limit int) ([]entities.Team, int, error) {
	var (
		items    []entities.Team
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, 0, err
		}
		batch, err := unmarshalTeams(out.Items)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, batch...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortTeamsNewestFirst(items)
	return paginate(items, page, limit), len(items), nil
}

func (r *TeamDynamoRepository) UpdateProfile(ctx context.Context, id, name string, category entities.CompetitionCategory) (entities.Team, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #category = :category, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":category":   &types.AttributeValueMemberS{Value: string(category)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#category":   "category",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TeamDynamoRepository) UpdateVerificationStatus(ctx context.Context, id string, status entities.VerificationStatus) (entities.Team, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #verification_status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#verification_status": "verification_status",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TeamDynamoRepository) AddMember(ctx context.Context, id string, m entities.Member) (entities.Team, error) {
	av, err := attributevalue.MarshalList([]memberItem{toMemberItem(m)})
	if err != nil {
		return entities.Team{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #members = list_append(if_not_exists(#members, :empty), :member), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":member":     &types.AttributeValueMemberL{Value: av},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#members":    "members",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TeamDynamoRepository) MarkPaid(ctx context.Context, id string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #paid = :paid, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#paid":       "paid",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *TeamDynamoRepository) ClearActivePayment(ctx context.Context, id string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "REMOVE #apid SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#apid":       "active_payment_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *TeamDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Team, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Team{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Team{}, nil
	}
	var it teamItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Team{}, err
	}
	return fromTeamItem(it), nil
}

func unmarshalTeams(raw []map[string]types.AttributeValue) ([]entities.Team, error) {
	items := make([]entities.Team, 0, len(raw))
	for _, m := range raw {
		var it teamItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTeamItem(it))
	}
	return items, nil
}

func sortTeamsNewestFirst(items []entities.Team) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func toMemberItem(m entities.Member) memberItem {
	return memberItem{
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		BirthDate:      m.BirthDate,
		EducationLevel: m.EducationLevel,
		Institution:    m.Institution,
		IsLeader:       m.IsLeader,
	}
}

func fromMemberItem(it memberItem) entities.Member {
	return entities.Member{
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		BirthDate:      it.BirthDate,
		EducationLevel: it.EducationLevel,
		Institution:    it.Institution,
		IsLeader:       it.IsLeader,
	}
}

func toTeamItem(t entities.Team) teamItem {
	members := make([]memberItem, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, toMemberItem(m))
	}
	return teamItem{
		ID:                 t.ID,
		Name:               t.Name,
		Category:           string(t.Category),
		LeaderID:           t.LeaderID,
		VerificationStatus: string(t.VerificationStatus),
		Paid:               t.Paid,
		ActivePaymentID:    t.ActivePaymentID,
		Members:            members,
		CreatedAt:          t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTeamItem(it teamItem) entities.Team {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	members := make([]entities.Member, 0, len(it.Members))
	for _, m := range it.Members {
		members = append(members, fromMemberItem(m))
	}
	return entities.Team{
		ID:                 it.ID,
		Name:               it.Name,
		Category:           entities.CompetitionCategory(it.Category),
		LeaderID:           it.LeaderID,
		VerificationStatus: entities.VerificationStatus(it.VerificationStatus),
		Paid:               it.Paid,
		ActivePaymentID:    it.ActivePaymentID,
		Members:            members,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
