package repository

import (
	"context"
	"errors"
	"fmt"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit on actions per TransactWriteItems call.
const maxTransactItems = 100

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names the DynamoDB tables backing each repository.
type Tables struct {
	Usuarios       string
	Proyectos      string
	Puestos        string
	Prestadores    string
	Postulaciones  string
	Solicitudes    string
	Notificaciones string
}

func DefaultTables() Tables {
	return Tables{
		Usuarios:       "usuarios",
		Proyectos:      "proyectos",
		Puestos:        "puestos",
		Prestadores:    "prestadores",
		Postulaciones:  "postulaciones",
		Solicitudes:    "solicitudes",
		Notificaciones: "notificaciones",
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// guardID is the key of the item that reserves a unique pair in the same
// table as the record it protects.
func guardID(kind, a, b string) string {
	return fmt.Sprintf("uniq#%s#%s#%s", kind, a, b)
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConflict reports whether a TransactWriteItems call was
// cancelled because one of its condition checks failed.
func isTransactionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// queryAll drains every page of a Query.
func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func queryIndexEq(table, index, attr, value string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
}

// putWithGuard writes item together with a guard item reserving a unique
// pair. A taken pair cancels the transaction and returns
// interfaces.ErrDuplicateKey.
func putWithGuard(ctx context.Context, ddb DynamoAPI, table string, item map[string]types.AttributeValue, guard, refID string) error {
	_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(table),
					Item:                     item,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(table),
					Item: map[string]types.AttributeValue{
						"id":     &types.AttributeValueMemberS{Value: guard},
						"ref_id": &types.AttributeValueMemberS{Value: refID},
					},
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			return interfaces.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func deleteWithGuard(ctx context.Context, ddb DynamoAPI, table, id, guard string) error {
	_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{TableName: aws.String(table), Key: idKey(id)}},
			{Delete: &types.Delete{TableName: aws.String(table), Key: idKey(guard)}},
		},
	})
	return err
}

// guardRef resolves a guard item to the id of the record it protects.
func guardRef(ctx context.Context, ddb DynamoAPI, table, guard string) (string, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(guard),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	ref, ok := out.Item["ref_id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return ref.Value, nil
}
