package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/google/uuid"
)

const defaultPartiesTableName = "partes"

type partyItem struct {
	Kind     string `dynamodbav:"kind"`
	Nome     string `dynamodbav:"nome"`
	ID       string `dynamodbav:"id"`
	CriadoEm string `dynamodbav:"criado_em"`
}

// PartyDynamoRepository persists Cliente/Parceiro rows in DynamoDB.
//
// Table requirements:
//   - partes: PK kind (string) + SK nome (string); GSI id-index on id.
//
// Keying on (kind, nome) makes the name the uniqueness unit, so a
// conditional put is all that find-or-create needs to stay idempotent under
// races.

type PartyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	osTable   string
	kind      entities.PartyKind
}

var _ interfaces.IPartyRepository = (*PartyDynamoRepository)(nil)

func NewPartyDynamoRepository(ddb *dynamodb.Client, kind entities.PartyKind) *PartyDynamoRepository {
	return &PartyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTIES_TABLE", defaultPartiesTableName),
		osTable:   getenvDefault("OS_TABLE", defaultServiceOrdersTableName),
		kind:      kind,
	}
}

func (r *PartyDynamoRepository) FindOrCreateByName(ctx context.Context, name string) (entities.Party, error) {
	existing, err := getPartyByName(ctx, r.ddb, r.tableName, r.kind, name)
	if err != nil {
		return entities.Party{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	party, av, err := newPartyItem(r.kind, name)
	if err != nil {
		return entities.Party{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(nome)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost the race: some other caller created the row first.
			return getPartyByName(ctx, r.ddb, r.tableName, r.kind, name)
		}
		return entities.Party{}, err
	}
	return party, nil
}

func (r *PartyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Party, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("id-index"),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Party{}, err
	}
	if len(out.Items) == 0 {
		return entities.Party{}, nil
	}

	var it partyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Party{}, err
	}
	if it.Kind != string(r.kind) {
		return entities.Party{}, nil
	}
	return fromPartyItem(it), nil
}

func (r *PartyDynamoRepository) List(ctx context.Context) ([]entities.Party, error) {
	var out []entities.Party
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("kind = :kind"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(r.kind)},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []partyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromPartyItem(it))
		}
	}
	return out, nil
}

// Delete refuses to remove a row still referenced by an OS, mirroring the
// foreign-key protection of the SQLite backend.
func (r *PartyDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	party, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if party.ID == "" {
		return false, nil
	}

	referenced, err := r.isReferenced(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		return false, entities.ErrPartyInUse
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"kind": &types.AttributeValueMemberS{Value: string(r.kind)},
			"nome": &types.AttributeValueMemberS{Value: party.Nome},
		},
		ConditionExpression: aws.String("attribute_exists(nome)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PartyDynamoRepository) isReferenced(ctx context.Context, id string) (bool, error) {
	index := "cliente_id-index"
	keyAttr := "cliente_id"
	if r.kind == entities.PartyKindParceiro {
		index = "parceiro_id-index"
		keyAttr = "parceiro_id"
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.osTable),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#ref = :id"),
		ExpressionAttributeNames: map[string]string{
			"#ref": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func getPartyByName(ctx context.Context, ddb *dynamodb.Client, table string, kind entities.PartyKind, name string) (entities.Party, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"kind": &types.AttributeValueMemberS{Value: string(kind)},
			"nome": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Party{}, err
	}
	if len(out.Item) == 0 {
		return entities.Party{}, nil
	}

	var it partyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Party{}, err
	}
	return fromPartyItem(it), nil
}

func newPartyItem(kind entities.PartyKind, name string) (entities.Party, map[string]types.AttributeValue, error) {
	party := entities.Party{
		ID:       uuid.NewString(),
		Nome:     name,
		CriadoEm: time.Now().UTC(),
	}
	av, err := attributevalue.MarshalMap(partyItem{
		Kind:     string(kind),
		Nome:     party.Nome,
		ID:       party.ID,
		CriadoEm: formatTime(party.CriadoEm),
	})
	if err != nil {
		return entities.Party{}, nil, err
	}
	return party, av, nil
}

func fromPartyItem(it partyItem) entities.Party {
	return entities.Party{
		ID:       it.ID,
		Nome:     it.Nome,
		CriadoEm: parseTime(it.CriadoEm),
	}
}
