package repository

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const notificacionesByDestinatarioIndex = "destinatario_id-index"

type notificacionItem struct {
	ID             string  `dynamodbav:"id"`
	DestinatarioID string  `dynamodbav:"destinatario_id"`
	Titulo         string  `dynamodbav:"titulo"`
	Mensaje        string  `dynamodbav:"mensaje"`
	Link           *string `dynamodbav:"link,omitempty"`
	Leida          bool    `dynamodbav:"leida"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// NotificacionDynamoRepository is the append-only notification log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI destinatario_id-index (destinatario_id)
type NotificacionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificacionRepository = (*NotificacionDynamoRepository)(nil)

func NewNotificacionDynamoRepository(ddb DynamoAPI, tables Tables) *NotificacionDynamoRepository {
	return &NotificacionDynamoRepository{ddb: ddb, tableName: tables.Notificaciones}
}

func (r *NotificacionDynamoRepository) Create(ctx context.Context, n entities.Notificacion) (entities.Notificacion, error) {
	av, err := attributevalue.MarshalMap(toNotificacionItem(n))
	if err != nil {
		return entities.Notificacion{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Notificacion{}, err
	}
	return n, nil
}

func (r *NotificacionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notificacion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notificacion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notificacion{}, nil
	}
	var it notificacionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notificacion{}, err
	}
	return fromNotificacionItem(it), nil
}

func (r *NotificacionDynamoRepository) ListByDestinatario(ctx context.Context, destinatarioID string) ([]entities.Notificacion, error) {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.tableName, notificacionesByDestinatarioIndex, "destinatario_id", destinatarioID))
	if err != nil {
		return nil, err
	}
	var items []notificacionItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Notificacion, 0, len(items))
	for _, it := range items {
		out = append(out, fromNotificacionItem(it))
	}
	return out, nil
}

func (r *NotificacionDynamoRepository) CountUnread(ctx context.Context, destinatarioID string) (int, error) {
	in := r.unreadQuery(destinatarioID)
	in.Select = types.SelectCount

	count := 0
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int(page.Count)
	}
	return count, nil
}

func (r *NotificacionDynamoRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, markReadInput(r.tableName, id))
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

// MarkAllRead flips every unread notification of the recipient and returns
// how many this call changed.
func (r *NotificacionDynamoRepository) MarkAllRead(ctx context.Context, destinatarioID string) (int, error) {
	avs, err := queryAll(ctx, r.ddb, r.unreadQuery(destinatarioID))
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, av := range avs {
		id, ok := av["id"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		if _, err := r.ddb.UpdateItem(ctx, markReadInput(r.tableName, id.Value)); err != nil {
			if isConditionalCheckFailed(err) {
				continue
			}
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (r *NotificacionDynamoRepository) unreadQuery(destinatarioID string) *dynamodb.QueryInput {
	in := queryIndexEq(r.tableName, notificacionesByDestinatarioIndex, "destinatario_id", destinatarioID)
	in.FilterExpression = aws.String("#leida = :false")
	in.ExpressionAttributeNames["#leida"] = "leida"
	in.ExpressionAttributeValues[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	return in
}

func markReadInput(table, id string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #leida = :false"),
		UpdateExpression:    aws.String("SET #leida = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#leida": "leida",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}
}

func toNotificacionItem(n entities.Notificacion) notificacionItem {
	return notificacionItem{
		ID:             n.ID,
		DestinatarioID: n.DestinatarioID,
		Titulo:         n.Titulo,
		Mensaje:        n.Mensaje,
		Link:           n.Link,
		Leida:          n.Leida,
		CreatedAt:      formatTime(n.CreatedAt),
	}
}

func fromNotificacionItem(it notificacionItem) entities.Notificacion {
	return entities.Notificacion{
		ID:             it.ID,
		DestinatarioID: it.DestinatarioID,
		Titulo:         it.Titulo,
		Mensaje:        it.Mensaje,
		Link:           it.Link,
		Leida:          it.Leida,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
