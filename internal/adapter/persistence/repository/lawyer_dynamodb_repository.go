package repository

import (
	"context"
	"errors"
	"fmt"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const lawyersEmailIndex = "email-index"

// ErrEmailTaken is returned when an account with the same email already exists.
var ErrEmailTaken = errors.New("email already registered")

type lawyerItem struct {
	ID               string `dynamodbav:"id"`
	FullName         string `dynamodbav:"full_name"`
	Email            string `dynamodbav:"email"`
	CPF              string `dynamodbav:"cpf"`
	OABNumber        string `dynamodbav:"oab_number"`
	OABState         string `dynamodbav:"oab_state"`
	SubscriptionTier string `dynamodbav:"subscription_tier"`
	PasswordHash     string `dynamodbav:"password_hash"`
	AvatarURL        string `dynamodbav:"avatar_url,omitempty"`
	Credits          int    `dynamodbav:"credits"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// LawyerDynamoRepository persists Lawyer accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email), emails stored lowercased

type LawyerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILawyerRepository = (*LawyerDynamoRepository)(nil)

func NewLawyerDynamoRepository(ddb *dynamodb.Client, tableName string) *LawyerDynamoRepository {
	return &LawyerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LawyerDynamoRepository) Create(ctx context.Context, l entities.Lawyer) (entities.Lawyer, error) {
	existing, err := r.GetByEmail(ctx, l.Email)
	if err != nil {
		return entities.Lawyer{}, err
	}
	if existing.ID != "" {
		return entities.Lawyer{}, ErrEmailTaken
	}

	av, err := attributevalue.MarshalMap(toLawyerItem(l))
	if err != nil {
		return entities.Lawyer{}, err
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
		return entities.Lawyer{}, err
	}
	return l, nil
}

func (r *LawyerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lawyer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lawyer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lawyer{}, nil
	}

	var it lawyerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lawyer{}, err
	}
	return fromLawyerItem(it)
}

func (r *LawyerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Lawyer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lawyersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: normalizeEmail(email)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Lawyer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Lawyer{}, nil
	}

	var it lawyerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Lawyer{}, err
	}
	return fromLawyerItem(it)
}

// Update overwrites the whole item; it fails with a zero-value result when the id is unknown.
func (r *LawyerDynamoRepository) Update(ctx context.Context, l entities.Lawyer) (entities.Lawyer, error) {
	av, err := attributevalue.MarshalMap(toLawyerItem(l))
	if err != nil {
		return entities.Lawyer{}, err
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
			return entities.Lawyer{}, nil
		}
		return entities.Lawyer{}, err
	}
	return l, nil
}

func (r *LawyerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toLawyerItem(l entities.Lawyer) lawyerItem {
	return lawyerItem{
		ID:               l.ID,
		FullName:         l.FullName,
		Email:            normalizeEmail(l.Email),
		CPF:              l.CPF,
		OABNumber:        l.OABNumber,
		OABState:         l.OABState,
		SubscriptionTier: string(l.SubscriptionTier),
		PasswordHash:     l.PasswordHash,
		AvatarURL:        l.AvatarURL,
		Credits:          l.Credits,
		CreatedAt:        formatTime(l.CreatedAt),
		UpdatedAt:        formatTime(l.UpdatedAt),
	}
}

func fromLawyerItem(it lawyerItem) (entities.Lawyer, error) {
	created, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Lawyer{}, fmt.Errorf("lawyer %s: %w", it.ID, err)
	}
	updated, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Lawyer{}, fmt.Errorf("lawyer %s: %w", it.ID, err)
	}
	return entities.Lawyer{
		ID:               it.ID,
		FullName:         it.FullName,
		Email:            it.Email,
		CPF:              it.CPF,
		OABNumber:        it.OABNumber,
		OABState:         it.OABState,
		SubscriptionTier: entities.LicenseType(it.SubscriptionTier),
		PasswordHash:     it.PasswordHash,
		AvatarURL:        it.AvatarURL,
		Credits:          it.Credits,
		CreatedAt:        created,
		UpdatedAt:        updated,
	}, nil
}
