package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "ordens_servico"
	defaultCountersTableName      = "contadores"

	numeroCounterName = "os_numero"
)

type serviceOrderItem struct {
	ID              string `dynamodbav:"id"`
	Numero          string `dynamodbav:"numero"`
	ClienteID       string `dynamodbav:"cliente_id"`
	Cliente         string `dynamodbav:"cliente"`
	ParceiroID      string `dynamodbav:"parceiro_id,omitempty"`
	Parceiro        string `dynamodbav:"parceiro,omitempty"`
	Projeto         string `dynamodbav:"projeto"`
	Tarefa          string `dynamodbav:"tarefa"`
	Observacoes     string `dynamodbav:"observacoes"`
	TempoTrabalhado string `dynamodbav:"tempo_trabalhado"`
	Status          string `dynamodbav:"status"`
	IsUrgent        bool   `dynamodbav:"is_urgent"`
	DataAbertura    string `dynamodbav:"data_abertura"`
	DataFinalizacao string `dynamodbav:"data_finalizacao,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - ordens_servico: PK id (string); GSIs cliente_id-index and
//     parceiro_id-index (used by party deletes to detect references).
//   - contadores: PK nome (string), attribute valor (number). The single
//     numbering authority for this backend is the os_numero counter item.
//
// Creation runs as one TransactWriteItems call: the counter bump carries an
// optimistic condition on the value read before the transaction, new party
// rows are put with attribute_not_exists(nome), and the OS item is put with
// attribute_not_exists(id). Any concurrent interleaving cancels the whole
// transaction and the creation is retried from the counter read, so numeros
// are unique, monotonic and never attached to a partial record.

type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
	partiesTable  string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("OS_TABLE", defaultServiceOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		partiesTable:  getenvDefault("PARTIES_TABLE", defaultPartiesTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error) {
	var lastErr error
	for attempt := 0; attempt < maxNumeroAttempts; attempt++ {
		created, err := r.createOnce(ctx, os)
		if err == nil {
			return created, nil
		}
		var canceled *types.TransactionCanceledException
		if !errors.As(err, &canceled) {
			return entities.ServiceOrder{}, err
		}
		lastErr = err
	}
	return entities.ServiceOrder{}, fmt.Errorf("creation transaction kept conflicting after %d attempts: %w", maxNumeroAttempts, lastErr)
}

func (r *ServiceOrderDynamoRepository) createOnce(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error) {
	current, err := r.readCounter(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next := current + 1
	os.Numero = formatNumero(next)

	var writes []types.TransactWriteItem

	counterUpdate := &types.Update{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: numeroCounterName},
		},
		UpdateExpression: aws.String("SET valor = :next"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)},
		},
	}
	if current == 0 {
		counterUpdate.ConditionExpression = aws.String("attribute_not_exists(nome)")
	} else {
		counterUpdate.ConditionExpression = aws.String("valor = :curr")
		counterUpdate.ExpressionAttributeValues[":curr"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current, 10)}
	}
	writes = append(writes, types.TransactWriteItem{Update: counterUpdate})

	cliente, clientePut, err := r.resolveParty(ctx, entities.PartyKindCliente, os.Cliente)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if clientePut != nil {
		writes = append(writes, types.TransactWriteItem{Put: clientePut})
	}
	os.ClienteID = cliente.ID
	os.Cliente = cliente.Nome

	if os.Parceiro != "" {
		parceiro, parceiroPut, err := r.resolveParty(ctx, entities.PartyKindParceiro, os.Parceiro)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if parceiroPut != nil {
			writes = append(writes, types.TransactWriteItem{Put: parceiroPut})
		}
		os.ParceiroID = parceiro.ID
		os.Parceiro = parceiro.Nome
	}

	os.DataFinalizacao = nil
	av, err := attributevalue.MarshalMap(toServiceOrderItem(os))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	writes = append(writes, types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}})

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		return entities.ServiceOrder{}, err
	}
	return os, nil
}

func (r *ServiceOrderDynamoRepository) readCounter(ctx context.Context) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: numeroCounterName},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	n, ok := out.Item["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s has no numeric valor", numeroCounterName)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// resolveParty returns the existing party for name, or a fresh entity plus
// the conditional Put that will create it inside the creation transaction.
func (r *ServiceOrderDynamoRepository) resolveParty(ctx context.Context, kind entities.PartyKind, name string) (entities.Party, *types.Put, error) {
	existing, err := getPartyByName(ctx, r.ddb, r.partiesTable, kind, name)
	if err != nil {
		return entities.Party{}, nil, err
	}
	if existing.ID != "" {
		return existing, nil, nil
	}

	party, av, err := newPartyItem(kind, name)
	if err != nil {
		return entities.Party{}, nil, err
	}
	return party, &types.Put{
		TableName:           aws.String(r.partiesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(nome)"),
	}, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ServiceOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *ServiceOrderDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.ServiceOrder, error) {
	var out []entities.ServiceOrder
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromServiceOrderItem(it))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.ParseInt(out[i].Numero, 10, 64)
		b, _ := strconv.ParseInt(out[j].Numero, 10, 64)
		return a < b
	})
	return out, nil
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OSStatus) (entities.ServiceOrder, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.ID == "" {
		return entities.ServiceOrder{}, nil
	}

	expr := "SET #status = :status"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
		"#id":     "id",
	}
	// First entry into FINALIZADO stamps the finalization date; everything
	// else, including leaving FINALIZADO, keeps the stored value.
	if status == entities.OSStatusFinalizado && current.DataFinalizacao == nil {
		expr += ", #data_finalizacao = :data_finalizacao"
		names["#data_finalizacao"] = "data_finalizacao"
		values[":data_finalizacao"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	}

	return r.update(ctx, id, expr, values, names)
}

func (r *ServiceOrderDynamoRepository) ToggleUrgency(ctx context.Context, id string) (entities.ServiceOrder, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.ID == "" {
		return entities.ServiceOrder{}, nil
	}

	return r.update(ctx, id,
		"SET #is_urgent = :is_urgent",
		map[string]types.AttributeValue{
			":is_urgent": &types.AttributeValueMemberBOOL{Value: !current.IsUrgent},
		},
		map[string]string{
			"#is_urgent": "is_urgent",
			"#id":        "id",
		},
	)
}

func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toServiceOrderItem(os entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:              os.ID,
		Numero:          os.Numero,
		ClienteID:       os.ClienteID,
		Cliente:         os.Cliente,
		ParceiroID:      os.ParceiroID,
		Parceiro:        os.Parceiro,
		Projeto:         os.Projeto,
		Tarefa:          os.Tarefa,
		Observacoes:     os.Observacoes,
		TempoTrabalhado: os.TempoTrabalhado,
		Status:          string(os.Status),
		IsUrgent:        os.IsUrgent,
		DataAbertura:    formatTime(os.DataAbertura),
	}
	if os.DataFinalizacao != nil {
		it.DataFinalizacao = formatTime(*os.DataFinalizacao)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:              it.ID,
		Numero:          it.Numero,
		ClienteID:       it.ClienteID,
		Cliente:         it.Cliente,
		ParceiroID:      it.ParceiroID,
		Parceiro:        it.Parceiro,
		Projeto:         it.Projeto,
		Tarefa:          it.Tarefa,
		Observacoes:     it.Observacoes,
		TempoTrabalhado: it.TempoTrabalhado,
		Status:          entities.OSStatus(it.Status),
		IsUrgent:        it.IsUrgent,
		DataAbertura:    parseTime(it.DataAbertura),
		DataFinalizacao: parseTimePtr(it.DataFinalizacao),
	}
}
