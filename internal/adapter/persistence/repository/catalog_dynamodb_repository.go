package repository

import (
	"context"
	"errors"
	"time"

	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_entries"

// catalogItem is the DynamoDB record for a catalog entry. The cost basis is
// stored under the attribute name of its catalog type (base_price /
// provider_value / base_cost); exactly one of the three is set per item.
type catalogItem struct {
	ID            string   `dynamodbav:"id"`
	Type          string   `dynamodbav:"type"`
	Name          string   `dynamodbav:"name"`
	Description   string   `dynamodbav:"description,omitempty"`
	BasePrice     *float64 `dynamodbav:"base_price,omitempty"`
	ProviderValue *float64 `dynamodbav:"provider_value,omitempty"`
	BaseCost      *float64 `dynamodbav:"base_cost,omitempty"`
	MarginPercent float64  `dynamodbav:"margin_percent"`
	FinalPrice    float64  `dynamodbav:"final_price"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// All three catalogs share one table discriminated by the type attribute.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
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
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

// Update replaces the stored record with the post-merge entity. The use case
// owns the field merge; the condition keeps a concurrent delete from
// resurrecting the entry.
func (r *CatalogDynamoRepository) Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogEntry{}, nil
		}
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *CatalogDynamoRepository) ListByType(ctx context.Context, t entities.CatalogType) ([]entities.CatalogEntry, error) {
	var entries []entities.CatalogEntry
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#type = :type"),
			ExpressionAttributeNames: map[string]string{
				"#type": "type",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":type": &types.AttributeValueMemberS{Value: string(t)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromCatalogItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func toCatalogItem(e entities.CatalogEntry) catalogItem {
	it := catalogItem{
		ID:            e.ID,
		Type:          string(e.Type),
		Name:          e.Name,
		Description:   e.Description,
		MarginPercent: e.MarginPercent,
		FinalPrice:    e.FinalPrice,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	cost := e.Cost
	switch e.Type {
	case entities.CatalogTypeLabor:
		it.ProviderValue = &cost
	case entities.CatalogTypeTransport:
		it.BaseCost = &cost
	default:
		it.BasePrice = &cost
	}
	return it
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var cost float64
	switch {
	case it.ProviderValue != nil:
		cost = *it.ProviderValue
	case it.BaseCost != nil:
		cost = *it.BaseCost
	case it.BasePrice != nil:
		cost = *it.BasePrice
	}

	return entities.CatalogEntry{
		ID:            it.ID,
		Type:          entities.CatalogType(it.Type),
		Name:          it.Name,
		Description:   it.Description,
		Cost:          cost,
		MarginPercent: it.MarginPercent,
		FinalPrice:    it.FinalPrice,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
