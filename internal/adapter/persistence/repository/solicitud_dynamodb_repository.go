package repository

import (
	"context"
	"fmt"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	solicitudGuardKind            = "solicitud"
	solicitudesBySolicitanteIndex = "solicitante_id-index"
	solicitudesByPrestadorIndex   = "prestador_id-index"
)

type solicitudItem struct {
	ID            string `dynamodbav:"id"`
	SolicitanteID string `dynamodbav:"solicitante_id"`
	PrestadorID   string `dynamodbav:"prestador_id"`
	Estado        string `dynamodbav:"estado"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SolicitudDynamoRepository persists contact requests, guarding the
// (solicitante_id, prestador_id) pair the same way applications are guarded.
//
// Table requirements:
//   - PK: id (string)
//   - GSI solicitante_id-index (solicitante_id)
//   - GSI prestador_id-index (prestador_id)
type SolicitudDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISolicitudRepository = (*SolicitudDynamoRepository)(nil)

func NewSolicitudDynamoRepository(ddb DynamoAPI, tables Tables) *SolicitudDynamoRepository {
	return &SolicitudDynamoRepository{ddb: ddb, tableName: tables.Solicitudes}
}

func (r *SolicitudDynamoRepository) Create(ctx context.Context, s entities.Solicitud) (entities.Solicitud, error) {
	av, err := attributevalue.MarshalMap(toSolicitudItem(s))
	if err != nil {
		return entities.Solicitud{}, err
	}
	if err := putWithGuard(ctx, r.ddb, r.tableName, av, guardID(solicitudGuardKind, s.SolicitanteID, s.PrestadorID), s.ID); err != nil {
		return entities.Solicitud{}, err
	}
	return s, nil
}

func (r *SolicitudDynamoRepository) GetByID(ctx context.Context, id string) (entities.Solicitud, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Solicitud{}, err
	}
	if len(out.Item) == 0 {
		return entities.Solicitud{}, nil
	}
	var it solicitudItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Solicitud{}, err
	}
	if it.SolicitanteID == "" {
		return entities.Solicitud{}, nil
	}
	return fromSolicitudItem(it), nil
}

func (r *SolicitudDynamoRepository) FindBySolicitanteAndPrestador(ctx context.Context, solicitanteID, prestadorID string) (entities.Solicitud, error) {
	ref, err := guardRef(ctx, r.ddb, r.tableName, guardID(solicitudGuardKind, solicitanteID, prestadorID))
	if err != nil || ref == "" {
		return entities.Solicitud{}, err
	}
	return r.GetByID(ctx, ref)
}

func (r *SolicitudDynamoRepository) ListBySolicitante(ctx context.Context, solicitanteID string) ([]entities.Solicitud, error) {
	return r.listByIndex(ctx, solicitudesBySolicitanteIndex, "solicitante_id", solicitanteID)
}

func (r *SolicitudDynamoRepository) ListByPrestador(ctx context.Context, prestadorID string) ([]entities.Solicitud, error) {
	return r.listByIndex(ctx, solicitudesByPrestadorIndex, "prestador_id", prestadorID)
}

func (r *SolicitudDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Solicitud, error) {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.tableName, index, attr, value))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", index, err)
	}
	var items []solicitudItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Solicitud, 0, len(items))
	for _, it := range items {
		out = append(out, fromSolicitudItem(it))
	}
	return out, nil
}

func (r *SolicitudDynamoRepository) UpdateEstado(ctx context.Context, id string, estado entities.SolicitudEstado) (entities.Solicitud, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, estadoUpdateInput(r.tableName, id, string(estado)))
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, gerr := r.GetByID(ctx, id)
			return current, false, gerr
		}
		return entities.Solicitud{}, false, err
	}
	var it solicitudItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Solicitud{}, false, err
	}
	return fromSolicitudItem(it), true, nil
}

func toSolicitudItem(s entities.Solicitud) solicitudItem {
	return solicitudItem{
		ID:            s.ID,
		SolicitanteID: s.SolicitanteID,
		PrestadorID:   s.PrestadorID,
		Estado:        string(s.Estado),
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSolicitudItem(it solicitudItem) entities.Solicitud {
	return entities.Solicitud{
		ID:            it.ID,
		SolicitanteID: it.SolicitanteID,
		PrestadorID:   it.PrestadorID,
		Estado:        entities.SolicitudEstado(it.Estado),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
