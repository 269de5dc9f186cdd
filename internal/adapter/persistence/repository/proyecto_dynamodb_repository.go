package repository

import (
	"context"
	"fmt"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	puestosByProyectoIndex       = "proyecto_id-index"
	postulacionesByProyectoIndex = "proyecto_id-index"
)

type proyectoItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	Titulo       string `dynamodbav:"titulo"`
	Tipo         string `dynamodbav:"tipo"`
	Ciudad       string `dynamodbav:"ciudad"`
	Descripcion  string `dynamodbav:"descripcion"`
	Foto         string `dynamodbav:"foto"`
	Estado       string `dynamodbav:"estado"`
	EsEstudiante bool   `dynamodbav:"es_estudiante"`
	EsPago       bool   `dynamodbav:"es_pago"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type puestoItem struct {
	ID          string `dynamodbav:"id"`
	ProyectoID  string `dynamodbav:"proyecto_id"`
	Nombre      string `dynamodbav:"nombre"`
	Descripcion string `dynamodbav:"descripcion"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProyectoDynamoRepository persists projects and their puestos.
//
// Table requirements:
//   - proyectos: PK id
//   - puestos: PK id, GSI proyecto_id-index (proyecto_id)
//
// Delete also removes the project's postulaciones (and their guard items)
// from the postulaciones table.
type ProyectoDynamoRepository struct {
	ddb                DynamoAPI
	tableName          string
	puestosTable       string
	postulacionesTable string
}

var _ interfaces.IProyectoRepository = (*ProyectoDynamoRepository)(nil)

func NewProyectoDynamoRepository(ddb DynamoAPI, tables Tables) *ProyectoDynamoRepository {
	return &ProyectoDynamoRepository{
		ddb:                ddb,
		tableName:          tables.Proyectos,
		puestosTable:       tables.Puestos,
		postulacionesTable: tables.Postulaciones,
	}
}

// Create writes the project and all its puestos in one transaction.
func (r *ProyectoDynamoRepository) Create(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	if len(p.Puestos)+1 > maxTransactItems {
		return entities.Proyecto{}, fmt.Errorf("create proyecto: %d puestos exceed the transaction limit", len(p.Puestos))
	}
	av, err := attributevalue.MarshalMap(toProyectoItem(p))
	if err != nil {
		return entities.Proyecto{}, err
	}
	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	for _, pu := range p.Puestos {
		pav, err := attributevalue.MarshalMap(toPuestoItem(pu))
		if err != nil {
			return entities.Proyecto{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.puestosTable),
				Item:                     pav,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Proyecto{}, fmt.Errorf("create proyecto: %w", err)
	}
	return p, nil
}

func (r *ProyectoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proyecto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proyecto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proyecto{}, nil
	}
	var it proyectoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proyecto{}, err
	}
	return fromProyectoItem(it), nil
}

func (r *ProyectoDynamoRepository) List(ctx context.Context) ([]entities.Proyecto, error) {
	var out []entities.Proyecto
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []proyectoItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromProyectoItem(it))
		}
	}
	return out, nil
}

func (r *ProyectoDynamoRepository) Update(ctx context.Context, p entities.Proyecto) (entities.Proyecto, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(p.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #titulo = :titulo, #tipo = :tipo, #ciudad = :ciudad, #descripcion = :descripcion, " +
			"#foto = :foto, #estado = :estado, #es_estudiante = :es_estudiante, #es_pago = :es_pago, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#titulo":        "titulo",
			"#tipo":          "tipo",
			"#ciudad":        "ciudad",
			"#descripcion":   "descripcion",
			"#foto":          "foto",
			"#estado":        "estado",
			"#es_estudiante": "es_estudiante",
			"#es_pago":       "es_pago",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":titulo":        &types.AttributeValueMemberS{Value: p.Titulo},
			":tipo":          &types.AttributeValueMemberS{Value: p.Tipo},
			":ciudad":        &types.AttributeValueMemberS{Value: p.Ciudad},
			":descripcion":   &types.AttributeValueMemberS{Value: p.Descripcion},
			":foto":          &types.AttributeValueMemberS{Value: p.Foto},
			":estado":        &types.AttributeValueMemberS{Value: p.Estado},
			":es_estudiante": &types.AttributeValueMemberBOOL{Value: p.EsEstudiante},
			":es_pago":       &types.AttributeValueMemberBOOL{Value: p.EsPago},
			":updated_at":    &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Proyecto{}, nil
		}
		return entities.Proyecto{}, err
	}
	var it proyectoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proyecto{}, err
	}
	return fromProyectoItem(it), nil
}

// Delete removes the project's postulaciones and puestos before the project
// itself.
func (r *ProyectoDynamoRepository) Delete(ctx context.Context, id string) error {
	postulaciones, err := queryAll(ctx, r.ddb, queryIndexEq(r.postulacionesTable, postulacionesByProyectoIndex, "proyecto_id", id))
	if err != nil {
		return err
	}
	for _, av := range postulaciones {
		var it postulacionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return err
		}
		if err := deleteWithGuard(ctx, r.ddb, r.postulacionesTable, it.ID, guardID(postulacionGuardKind, it.PostulanteID, it.PuestoID)); err != nil {
			return fmt.Errorf("delete postulacion %s: %w", it.ID, err)
		}
	}

	puestos, err := r.ListPuestos(ctx, id)
	if err != nil {
		return err
	}
	for _, pu := range puestos {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.puestosTable),
			Key:       idKey(pu.ID),
		}); err != nil {
			return fmt.Errorf("delete puesto %s: %w", pu.ID, err)
		}
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func (r *ProyectoDynamoRepository) GetPuestoByID(ctx context.Context, id string) (entities.Puesto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.puestosTable),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Puesto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Puesto{}, nil
	}
	var it puestoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Puesto{}, err
	}
	return fromPuestoItem(it), nil
}

func (r *ProyectoDynamoRepository) ListPuestos(ctx context.Context, proyectoID string) ([]entities.Puesto, error) {
	avs, err := queryAll(ctx, r.ddb, queryIndexEq(r.puestosTable, puestosByProyectoIndex, "proyecto_id", proyectoID))
	if err != nil {
		return nil, err
	}
	var items []puestoItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Puesto, 0, len(items))
	for _, it := range items {
		out = append(out, fromPuestoItem(it))
	}
	return out, nil
}

func toProyectoItem(p entities.Proyecto) proyectoItem {
	return proyectoItem{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Titulo:       p.Titulo,
		Tipo:         p.Tipo,
		Ciudad:       p.Ciudad,
		Descripcion:  p.Descripcion,
		Foto:         p.Foto,
		Estado:       p.Estado,
		EsEstudiante: p.EsEstudiante,
		EsPago:       p.EsPago,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromProyectoItem(it proyectoItem) entities.Proyecto {
	return entities.Proyecto{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Titulo:       it.Titulo,
		Tipo:         it.Tipo,
		Ciudad:       it.Ciudad,
		Descripcion:  it.Descripcion,
		Foto:         it.Foto,
		Estado:       it.Estado,
		EsEstudiante: it.EsEstudiante,
		EsPago:       it.EsPago,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func toPuestoItem(p entities.Puesto) puestoItem {
	return puestoItem{
		ID:          p.ID,
		ProyectoID:  p.ProyectoID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromPuestoItem(it puestoItem) entities.Puesto {
	return entities.Puesto{
		ID:          it.ID,
		ProyectoID:  it.ProyectoID,
		Nombre:      it.Nombre,
		Descripcion: it.Descripcion,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
