package repository

import (
	"context"
	"mercado_audiovisual/internal/domain/entities"
	"mercado_audiovisual/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type usuarioItem struct {
	ID        string `dynamodbav:"id"`
	Nombre    string `dynamodbav:"nombre"`
	Email     string `dynamodbav:"email"`
	Rol       string `dynamodbav:"rol"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UsuarioDynamoRepository reads the user directory. Rows are written by the
// account service that issues the bearer tokens.
//
// Table requirements:
//   - PK: id (string)
type UsuarioDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb DynamoAPI, tables Tables) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{ddb: ddb, tableName: tables.Usuarios}
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Usuario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Usuario{}, nil
	}
	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Usuario{}, err
	}
	return entities.Usuario{
		ID:        it.ID,
		Nombre:    it.Nombre,
		Email:     it.Email,
		Rol:       entities.ParseRol(it.Rol),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}
