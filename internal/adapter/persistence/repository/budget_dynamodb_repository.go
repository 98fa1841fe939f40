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

const (
	defaultBudgetsTableName     = "budgets"
	defaultBudgetLinesTableName = "budget_lines"
	budgetLinesIndexName        = "budget_id-index"
)

type budgetItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	ClientID      string  `dynamodbav:"client_id,omitempty"`
	ClientName    string  `dynamodbav:"client_name,omitempty"`
	ProjectID     string  `dynamodbav:"project_id,omitempty"`
	Status        string  `dynamodbav:"status"`
	TotalValue    float64 `dynamodbav:"total_value"`
	TotalCost     float64 `dynamodbav:"total_cost"`
	TotalProfit   float64 `dynamodbav:"total_profit"`
	MarginPercent float64 `dynamodbav:"margin_percent"`
	Notes         string  `dynamodbav:"notes,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

type budgetLineItem struct {
	ID            string  `dynamodbav:"id"`
	BudgetID      string  `dynamodbav:"budget_id"`
	SourceType    string  `dynamodbav:"source_type"`
	SourceItemID  string  `dynamodbav:"source_item_id,omitempty"`
	Name          string  `dynamodbav:"name"`
	Quantity      int     `dynamodbav:"quantity"`
	UnitCost      float64 `dynamodbav:"unit_cost"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	MarginPercent float64 `dynamodbav:"margin_percent"`
	TotalCost     float64 `dynamodbav:"total_cost"`
	TotalPrice    float64 `dynamodbav:"total_price"`
	Profit        float64 `dynamodbav:"profit"`
	GroupLabel    string  `dynamodbav:"group_label,omitempty"`
}

// BudgetDynamoRepository persists Budget aggregates in DynamoDB.
//
// Table requirements:
//   - budgets: PK id (string)
//   - budget_lines: PK id (string), GSI1 (budget_id-index): budget_id
//
// The budget record carries the derived totals so the dashboard list view
// never needs to load lines.

type BudgetDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	linesTable string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		linesTable: getenvDefault("BUDGET_LINES_TABLE", defaultBudgetLinesTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}

	if err := r.putLines(ctx, b.Lines); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}

	lines, err := r.queryLines(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	b := fromBudgetItem(it)
	b.Lines = lines
	return b, nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var budgets []entities.Budget
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			budgets = append(budgets, fromBudgetItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return budgets, nil
}

// Update rewrites the budget record (fields and derived totals). Lines are
// managed separately through ReplaceLines.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	expr := "SET #name = :name, #client_id = :client_id, #client_name = :client_name, " +
		"#project_id = :project_id, #status = :status, #notes = :notes, " +
		"#total_value = :total_value, #total_cost = :total_cost, #total_profit = :total_profit, " +
		"#margin_percent = :margin_percent, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":name":           &types.AttributeValueMemberS{Value: b.Name},
		":client_id":      &types.AttributeValueMemberS{Value: b.ClientID},
		":client_name":    &types.AttributeValueMemberS{Value: b.ClientName},
		":project_id":     &types.AttributeValueMemberS{Value: b.ProjectID},
		":status":         &types.AttributeValueMemberS{Value: string(b.Status)},
		":notes":          &types.AttributeValueMemberS{Value: b.Notes},
		":total_value":    &types.AttributeValueMemberN{Value: floatToString(b.TotalValue)},
		":total_cost":     &types.AttributeValueMemberN{Value: floatToString(b.TotalCost)},
		":total_profit":   &types.AttributeValueMemberN{Value: floatToString(b.TotalProfit)},
		":margin_percent": &types.AttributeValueMemberN{Value: floatToString(b.MarginPercent)},
		":updated_at":     &types.AttributeValueMemberS{Value: b.UpdatedAt.UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#name":           "name",
		"#client_id":      "client_id",
		"#client_name":    "client_name",
		"#project_id":     "project_id",
		"#status":         "status",
		"#notes":          "notes",
		"#total_value":    "total_value",
		"#total_cost":     "total_cost",
		"#total_profit":   "total_profit",
		"#margin_percent": "margin_percent",
		"#updated_at":     "updated_at",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// ReplaceLines deletes the stored line records of a budget and writes the
// replacement collection.
func (r *BudgetDynamoRepository) ReplaceLines(ctx context.Context, budgetID string, lines []entities.BudgetLine) ([]entities.BudgetLine, error) {
	existing, err := r.queryLines(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if err := r.deleteLine(ctx, l.ID); err != nil {
			return nil, err
		}
	}
	if err := r.putLines(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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
	if len(out.Attributes) == 0 {
		return false, nil
	}

	lines, err := r.queryLines(ctx, id)
	if err != nil {
		return true, err
	}
	for _, l := range lines {
		if err := r.deleteLine(ctx, l.ID); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (r *BudgetDynamoRepository) putLines(ctx context.Context, lines []entities.BudgetLine) error {
	for _, l := range lines {
		av, err := attributevalue.MarshalMap(toBudgetLineItem(l))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.linesTable),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *BudgetDynamoRepository) deleteLine(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.linesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *BudgetDynamoRepository) queryLines(ctx context.Context, budgetID string) ([]entities.BudgetLine, error) {
	var lines []entities.BudgetLine
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.linesTable),
			IndexName:              aws.String(budgetLinesIndexName),
			KeyConditionExpression: aws.String("#budget_id = :budget_id"),
			ExpressionAttributeNames: map[string]string{
				"#budget_id": "budget_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":budget_id": &types.AttributeValueMemberS{Value: budgetID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []budgetLineItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			lines = append(lines, fromBudgetLineItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return lines, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:            b.ID,
		Name:          b.Name,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ProjectID:     b.ProjectID,
		Status:        string(b.Status),
		TotalValue:    b.TotalValue,
		TotalCost:     b.TotalCost,
		TotalProfit:   b.TotalProfit,
		MarginPercent: b.MarginPercent,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:            it.ID,
		Name:          it.Name,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		ProjectID:     it.ProjectID,
		Status:        entities.BudgetStatus(it.Status),
		TotalValue:    it.TotalValue,
		TotalCost:     it.TotalCost,
		TotalProfit:   it.TotalProfit,
		MarginPercent: it.MarginPercent,
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func toBudgetLineItem(l entities.BudgetLine) budgetLineItem {
	return budgetLineItem{
		ID:            l.ID,
		BudgetID:      l.BudgetID,
		SourceType:    string(l.SourceType),
		SourceItemID:  l.SourceItemID,
		Name:          l.Name,
		Quantity:      l.Quantity,
		UnitCost:      l.UnitCost,
		UnitPrice:     l.UnitPrice,
		MarginPercent: l.MarginPercent,
		TotalCost:     l.TotalCost,
		TotalPrice:    l.TotalPrice,
		Profit:        l.Profit,
		GroupLabel:    l.GroupLabel,
	}
}

func fromBudgetLineItem(it budgetLineItem) entities.BudgetLine {
	return entities.BudgetLine{
		ID:            it.ID,
		BudgetID:      it.BudgetID,
		SourceType:    entities.CatalogType(it.SourceType),
		SourceItemID:  it.SourceItemID,
		Name:          it.Name,
		Quantity:      it.Quantity,
		UnitCost:      it.UnitCost,
		UnitPrice:     it.UnitPrice,
		MarginPercent: it.MarginPercent,
		TotalCost:     it.TotalCost,
		TotalPrice:    it.TotalPrice,
		Profit:        it.Profit,
		GroupLabel:    it.GroupLabel,
	}
}
