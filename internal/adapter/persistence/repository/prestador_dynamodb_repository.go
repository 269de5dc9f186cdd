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

const prestadoresByOwnerIndex = "owner_id-index"

type prestadorItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	TipoPerfil  string `dynamodbav:"tipo_perfil"`
	Nombre      string `dynamodbav:"nombre"`
	Rubro       string `dynamodbav:"rubro"`
	Descripcion string `dynamodbav:"descripcion"`
	Email       string `dynamodbav:"email"`
	Telefono    string `dynamodbav:"telefono"`
	Web         string `dynamodbav:"web"`
	Ciudad      string `dynamodbav:"ciudad"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PrestadorDynamoRepository persists provider profiles.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index (owner_id)
type PrestadorDynamoRepository struct {
	ddb              DynamoAPI
	tableName        string
	solicitudesTable string
}

var _ interfaces.IPrestadorRepository = (*PrestadorDynamoRepository)(nil)

func NewPrestadorDynamoRepository(ddb DynamoAPI, tables Tables) *PrestadorDynamoRepository {
	return &PrestadorDynamoRepository{ddb: ddb, tableName: tables.Prestadores, solicitudesTable: tables.Solicitudes}
}

func (r *PrestadorDynamoRepository) Create(ctx context.Context, p entities.Prestador) (entities.Prestador, error) {
	av, err := attributevalue.MarshalMap(toPrestadorItem(p))
	if err != nil {
		return entities.Prestador{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Prestador{}, err
	}
	return p, nil
}

func (r *PrestadorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Prestador, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Prestador{}, err
	}
	if len(out.Item) == 0 {
		return entities.Prestador{}, nil
	}
	var it prestadorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Prestador{}, err
	}
	return fromPrestadorItem(it), nil
}

func (r *PrestadorDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Prestador, error) {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.tableName, prestadoresByOwnerIndex, "owner_id", ownerID))
	if err != nil {
		return nil, err
	}
	var items []prestadorItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Prestador, 0, len(items))
	for _, it := range items {
		out = append(out, fromPrestadorItem(it))
	}
	return out, nil
}

// Delete removes the profile's solicitudes (with their guard items) first.
func (r *PrestadorDynamoRepository) Delete(ctx context.Context, id string) error {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.solicitudesTable, solicitudesByPrestadorIndex, "prestador_id", id))
	if err != nil {
		return err
	}
	for _, av := range avs {
		var it solicitudItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return err
		}
		if err := deleteWithGuard(ctx, r.ddb, r.solicitudesTable, it.ID, guardID(solicitudGuardKind, it.SolicitanteID, it.PrestadorID)); err != nil {
			return fmt.Errorf("delete solicitud %s: %w", it.ID, err)
		}
	}
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toPrestadorItem(p entities.Prestador) prestadorItem {
	return prestadorItem{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		TipoPerfil:  p.TipoPerfil,
		Nombre:      p.Nombre,
		Rubro:       p.Rubro,
		Descripcion: p.Descripcion,
		Email:       p.Email,
		Telefono:    p.Telefono,
		Web:         p.Web,
		Ciudad:      p.Ciudad,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromPrestadorItem(it prestadorItem) entities.Prestador {
	return entities.Prestador{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		TipoPerfil:  it.TipoPerfil,
		Nombre:      it.Nombre,
		Rubro:       it.Rubro,
		Descripcion: it.Descripcion,
		Email:       it.Email,
		Telefono:    it.Telefono,
		Web:         it.Web,
		Ciudad:      it.Ciudad,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
