package repository

import (
	"context"
	"time"

	"pma_workorders/internal/domain/entities"
	"pma_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultWorkOrdersTableName = "workOrders"
	ownerIndexName             = "owner_id-index"

	// rangeKeyTimeLayout keeps fractional seconds zero-padded so the
	// created_at GSI range key sorts lexicographically in chronological
	// order. RFC3339Nano trims trailing zeros and loses that at sub-second
	// resolution.
	rangeKeyTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type checklistEntryItem struct {
	Label             string `dynamodbav:"label"`
	OK                bool   `dynamodbav:"ok"`
	RequiresAttention bool   `dynamodbav:"requires_attention"`
}

type checklistItem struct {
	Compressors        []checklistEntryItem `dynamodbav:"compressors"`
	Condenser          []checklistEntryItem `dynamodbav:"condenser"`
	Evaporator         []checklistEntryItem `dynamodbav:"evaporator"`
	RefrigerantCircuit []checklistEntryItem `dynamodbav:"refrigerant_circuit"`
	FanFanDrives       []checklistEntryItem `dynamodbav:"fan_fan_drives"`
	HeatingNaturalGas  []checklistEntryItem `dynamodbav:"heating_natural_gas"`
	Other              []checklistEntryItem `dynamodbav:"other"`
	ElectricalControls []checklistEntryItem `dynamodbav:"electrical_controls"`
}

type siteConditionsItem struct {
	GarbageRemoval     bool   `dynamodbav:"garbage_removal"`
	RoofCondition      bool   `dynamodbav:"roof_condition"`
	GuardRailsRequired bool   `dynamodbav:"guard_rails_required"`
	Other              string `dynamodbav:"other"`
}

type safetyInfoItem struct {
	SafetyConsidered        bool `dynamodbav:"safety_considered"`
	RedTagIssued            bool `dynamodbav:"red_tag_issued"`
	RefrigerantLeakDetected bool `dynamodbav:"refrigerant_leak_detected"`
}

type materialEntryItem struct {
	Source      string `dynamodbav:"source"`
	Qty         int    `dynamodbav:"qty"`
	Description string `dynamodbav:"description"`
	PO          string `dynamodbav:"po"`
}

type hoursEntryItem struct {
	Date    string `dynamodbav:"date"`
	Hours   int    `dynamodbav:"hours"`
	OT      int    `dynamodbav:"ot"`
	RT      int    `dynamodbav:"rt"`
	Parking int    `dynamodbav:"parking"`
	Tech    string `dynamodbav:"tech"`
	Initial string `dynamodbav:"initial"`
}

type workOrderItem struct {
	ID               string             `dynamodbav:"id"`
	WorkOrderID      string             `dynamodbav:"work_order_id"`
	CustomerID       string             `dynamodbav:"customer_id"`
	CustomerName     string             `dynamodbav:"customer_name"`
	Address          string             `dynamodbav:"address"`
	PMAType          string             `dynamodbav:"pma_type"`
	Date             string             `dynamodbav:"date"`
	IndoorAirQuality string             `dynamodbav:"indoor_air_quality"`
	Checklist        checklistItem      `dynamodbav:"checklist"`
	OverallCondition string             `dynamodbav:"overall_condition"`
	SiteConditions   siteConditionsItem `dynamodbav:"site_conditions"`
	SafetyInfo       safetyInfoItem     `dynamodbav:"safety_info"`

	Comments                   string `dynamodbav:"comments"`
	Recommendations            string `dynamodbav:"recommendations"`
	ImmediateAttentionRequired bool   `dynamodbav:"immediate_attention_required"`
	RecommendationToFollow     bool   `dynamodbav:"recommendation_to_follow"`

	Materials []materialEntryItem `dynamodbav:"materials"`
	Hours     []hoursEntryItem    `dynamodbav:"hours"`

	AuthorizedBy        string `dynamodbav:"authorized_by"`
	SpokeWith           string `dynamodbav:"spoke_with"`
	PO                  string `dynamodbav:"po"`
	CustomerSignature   string `dynamodbav:"customer_signature"`
	TechnicianSignature string `dynamodbav:"technician_signature"`

	OwnerID   string `dynamodbav:"owner_id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: owner_id (hash), created_at (range)
//
// Timestamps are stored as fixed-width RFC3339 text with nanosecond
// precision. The owner list query reads the GSI backwards so results come
// out newest-created first without an in-process sort.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	now := time.Now().UTC()
	wo.ID = uuid.NewString()
	wo.CreatedAt = now
	wo.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.WorkOrder, error) {
	orders := []entities.WorkOrder{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ownerIndexName),
			KeyConditionExpression: aws.String("#owner_id = :owner_id"),
			ExpressionAttributeNames: map[string]string{
				"#owner_id": "owner_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner_id": &types.AttributeValueMemberS{Value: ownerID},
			},
			// created_at is the index range key; reading backwards yields
			// newest-created first.
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromWorkOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return orders, nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	wo.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	materials := make([]materialEntryItem, 0, len(wo.Materials))
	for _, m := range wo.Materials {
		materials = append(materials, materialEntryItem(m))
	}
	hours := make([]hoursEntryItem, 0, len(wo.Hours))
	for _, h := range wo.Hours {
		hours = append(hours, hoursEntryItem(h))
	}

	return workOrderItem{
		ID:               wo.ID,
		WorkOrderID:      wo.WorkOrderID,
		CustomerID:       wo.CustomerID,
		CustomerName:     wo.CustomerName,
		Address:          wo.Address,
		PMAType:          wo.PMAType,
		Date:             wo.Date,
		IndoorAirQuality: string(wo.IndoorAirQuality),
		Checklist: checklistItem{
			Compressors:        toChecklistEntryItems(wo.Checklist.Compressors),
			Condenser:          toChecklistEntryItems(wo.Checklist.Condenser),
			Evaporator:         toChecklistEntryItems(wo.Checklist.Evaporator),
			RefrigerantCircuit: toChecklistEntryItems(wo.Checklist.RefrigerantCircuit),
			FanFanDrives:       toChecklistEntryItems(wo.Checklist.FanFanDrives),
			HeatingNaturalGas:  toChecklistEntryItems(wo.Checklist.HeatingNaturalGas),
			Other:              toChecklistEntryItems(wo.Checklist.Other),
			ElectricalControls: toChecklistEntryItems(wo.Checklist.ElectricalControls),
		},
		OverallCondition: string(wo.OverallCondition),
		SiteConditions:   siteConditionsItem(wo.SiteConditions),
		SafetyInfo:       safetyInfoItem(wo.SafetyInfo),

		Comments:                   wo.Comments,
		Recommendations:            wo.Recommendations,
		ImmediateAttentionRequired: wo.ImmediateAttentionRequired,
		RecommendationToFollow:     wo.RecommendationToFollow,

		Materials: materials,
		Hours:     hours,

		AuthorizedBy:        wo.AuthorizedBy,
		SpokeWith:           wo.SpokeWith,
		PO:                  wo.PO,
		CustomerSignature:   wo.CustomerSignature,
		TechnicianSignature: wo.TechnicianSignature,

		OwnerID:   wo.OwnerID,
		CreatedAt: wo.CreatedAt.UTC().Format(rangeKeyTimeLayout),
		UpdatedAt: wo.UpdatedAt.UTC().Format(rangeKeyTimeLayout),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	// RFC3339Nano parses both the padded layout and older trimmed values.
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	materials := make([]entities.MaterialEntry, 0, len(it.Materials))
	for _, m := range it.Materials {
		materials = append(materials, entities.MaterialEntry(m))
	}
	hours := make([]entities.HoursEntry, 0, len(it.Hours))
	for _, h := range it.Hours {
		hours = append(hours, entities.HoursEntry(h))
	}

	return entities.WorkOrder{
		ID:               it.ID,
		WorkOrderID:      it.WorkOrderID,
		CustomerID:       it.CustomerID,
		CustomerName:     it.CustomerName,
		Address:          it.Address,
		PMAType:          it.PMAType,
		Date:             it.Date,
		IndoorAirQuality: entities.IndoorAirQuality(it.IndoorAirQuality),
		Checklist: entities.Checklist{
			Compressors:        fromChecklistEntryItems(it.Checklist.Compressors),
			Condenser:          fromChecklistEntryItems(it.Checklist.Condenser),
			Evaporator:         fromChecklistEntryItems(it.Checklist.Evaporator),
			RefrigerantCircuit: fromChecklistEntryItems(it.Checklist.RefrigerantCircuit),
			FanFanDrives:       fromChecklistEntryItems(it.Checklist.FanFanDrives),
			HeatingNaturalGas:  fromChecklistEntryItems(it.Checklist.HeatingNaturalGas),
			Other:              fromChecklistEntryItems(it.Checklist.Other),
			ElectricalControls: fromChecklistEntryItems(it.Checklist.ElectricalControls),
		},
		OverallCondition: entities.OverallCondition(it.OverallCondition),
		SiteConditions:   entities.SiteConditions(it.SiteConditions),
		SafetyInfo:       entities.SafetyInfo(it.SafetyInfo),

		Comments:                   it.Comments,
		Recommendations:            it.Recommendations,
		ImmediateAttentionRequired: it.ImmediateAttentionRequired,
		RecommendationToFollow:     it.RecommendationToFollow,

		Materials: materials,
		Hours:     hours,

		AuthorizedBy:        it.AuthorizedBy,
		SpokeWith:           it.SpokeWith,
		PO:                  it.PO,
		CustomerSignature:   it.CustomerSignature,
		TechnicianSignature: it.TechnicianSignature,

		OwnerID:   it.OwnerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toChecklistEntryItems(items []entities.ChecklistItem) []checklistEntryItem {
	out := make([]checklistEntryItem, 0, len(items))
	for _, it := range items {
		out = append(out, checklistEntryItem(it))
	}
	return out
}

func fromChecklistEntryItems(items []checklistEntryItem) []entities.ChecklistItem {
	out := make([]entities.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ChecklistItem(it))
	}
	return out
}
