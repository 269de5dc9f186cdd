package repository

import (
	"context"
	"fmt"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	postulacionGuardKind           = "postulacion"
	postulacionesByPostulanteIndex = "postulante_id-index"
)

type postulacionItem struct {
	ID           string `dynamodbav:"id"`
	PostulanteID string `dynamodbav:"postulante_id"`
	PuestoID     string `dynamodbav:"puesto_id"`
	ProyectoID   string `dynamodbav:"proyecto_id"`
	Mensaje      string `dynamodbav:"mensaje"`
	Estado       string `dynamodbav:"estado"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PostulacionDynamoRepository persists applications.
//
// Table requirements:
//   - PK: id (string)
//   - GSI postulante_id-index (postulante_id)
//   - GSI proyecto_id-index (proyecto_id)
//
// Each application is written together with a guard item
// "uniq#postulacion#{postulante_id}#{puesto_id}" holding ref_id. Guard items
// carry no index attributes, so the sparse GSIs never return them.
type PostulacionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPostulacionRepository = (*PostulacionDynamoRepository)(nil)

func NewPostulacionDynamoRepository(ddb DynamoAPI, tables Tables) *PostulacionDynamoRepository {
	return &PostulacionDynamoRepository{ddb: ddb, tableName: tables.Postulaciones}
}

func (r *PostulacionDynamoRepository) Create(ctx context.Context, p entities.Postulacion) (entities.Postulacion, error) {
	av, err := attributevalue.MarshalMap(toPostulacionItem(p))
	if err != nil {
		return entities.Postulacion{}, err
	}
	if err := putWithGuard(ctx, r.ddb, r.tableName, av, guardID(postulacionGuardKind, p.PostulanteID, p.PuestoID), p.ID); err != nil {
		return entities.Postulacion{}, err
	}
	return p, nil
}

func (r *PostulacionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Postulacion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Postulacion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Postulacion{}, nil
	}
	var it postulacionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Postulacion{}, err
	}
	if it.PostulanteID == "" {
		// guard item
		return entities.Postulacion{}, nil
	}
	return fromPostulacionItem(it), nil
}

func (r *PostulacionDynamoRepository) FindByPostulanteAndPuesto(ctx context.Context, postulanteID, puestoID string) (entities.Postulacion, error) {
	ref, err := guardRef(ctx, r.ddb, r.tableName, guardID(postulacionGuardKind, postulanteID, puestoID))
	if err != nil || ref == "" {
		return entities.Postulacion{}, err
	}
	return r.GetByID(ctx, ref)
}

func (r *PostulacionDynamoRepository) ListByPostulante(ctx context.Context, postulanteID string) ([]entities.Postulacion, error) {
	return r.listByIndex(ctx, postulacionesByPostulanteIndex, "postulante_id", postulanteID)
}

func (r *PostulacionDynamoRepository) ListByProyecto(ctx context.Context, proyectoID string) ([]entities.Postulacion, error) {
	return r.listByIndex(ctx, postulacionesByProyectoIndex, "proyecto_id", proyectoID)
}

func (r *PostulacionDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Postulacion, error) {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.tableName, index, attr, value))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", index, err)
	}
	var items []postulacionItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Postulacion, 0, len(items))
	for _, it := range items {
		out = append(out, fromPostulacionItem(it))
	}
	return out, nil
}

// UpdateEstado writes only when the stored estado differs. When the
// condition fails the current record is returned with changed=false, or a
// zero value if the record does not exist.
func (r *PostulacionDynamoRepository) UpdateEstado(ctx context.Context, id string, estado entities.PostulacionEstado) (entities.Postulacion, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, estadoUpdateInput(r.tableName, id, string(estado)))
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, gerr := r.GetByID(ctx, id)
			return current, false, gerr
		}
		return entities.Postulacion{}, false, err
	}
	var it postulacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Postulacion{}, false, err
	}
	return fromPostulacionItem(it), true, nil
}

// estadoUpdateInput builds the conditional estado transition shared by the
// postulacion and solicitud tables.
func estadoUpdateInput(table, id, estado string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado <> :estado"),
		UpdateExpression:    aws.String("SET #estado = :estado, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#estado":     "estado",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado":     &types.AttributeValueMemberS{Value: estado},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	}
}

func toPostulacionItem(p entities.Postulacion) postulacionItem {
	return postulacionItem{
		ID:           p.ID,
		PostulanteID: p.PostulanteID,
		PuestoID:     p.PuestoID,
		ProyectoID:   p.ProyectoID,
		Mensaje:      p.Mensaje,
		Estado:       string(p.Estado),
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromPostulacionItem(it postulacionItem) entities.Postulacion {
	return entities.Postulacion{
		ID:           it.ID,
		PostulanteID: it.PostulanteID,
		PuestoID:     it.PuestoID,
		ProyectoID:   it.ProyectoID,
		Mensaje:      it.Mensaje,
		Estado:       entities.PostulacionEstado(it.Estado),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
