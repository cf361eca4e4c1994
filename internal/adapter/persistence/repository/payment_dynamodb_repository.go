package repository

import (
	"context"
	"fmt"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsLawyerIDIndex = "lawyer_id-index"

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	LawyerID           string `dynamodbav:"lawyer_id"`
	Purpose            string `dynamodbav:"purpose"`
	LicenseType        string `dynamodbav:"license_type,omitempty"`
	Amount             int64  `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lawyer_id-index (PK: lawyer_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByLawyerID(ctx context.Context, lawyerID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsLawyerIDIndex),
		KeyConditionExpression: aws.String("lawyer_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: lawyerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		p, err := fromPaymentItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		LawyerID:           p.LawyerID,
		Purpose:            string(p.Purpose),
		LicenseType:        string(p.LicenseType),
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	date, err := parseTime("date", it.Date)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	p := entities.Payment{
		ID:          it.ID,
		LawyerID:    it.LawyerID,
		Purpose:     entities.PaymentPurpose(it.Purpose),
		LicenseType: entities.LicenseType(it.LicenseType),
		Amount:      it.Amount,
		Date:        date,
		Status:      entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p, nil
}
