// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritam/preptrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanID, v))
}

// RoadmapType applies equality check predicate on the "roadmap_type" field. It's identical to RoadmapTypeEQ.
func RoadmapType(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRoadmapType, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGeneratedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldPlanID, v))
}

// RoadmapTypeEQ applies the EQ predicate on the "roadmap_type" field.
func RoadmapTypeEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRoadmapType, v))
}

// RoadmapTypeNEQ applies the NEQ predicate on the "roadmap_type" field.
func RoadmapTypeNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldRoadmapType, v))
}

// RoadmapTypeIn applies the In predicate on the "roadmap_type" field.
func RoadmapTypeIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldRoadmapType, vs...))
}

// RoadmapTypeNotIn applies the NotIn predicate on the "roadmap_type" field.
func RoadmapTypeNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldRoadmapType, vs...))
}

// RoadmapTypeGT applies the GT predicate on the "roadmap_type" field.
func RoadmapTypeGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldRoadmapType, v))
}

// RoadmapTypeGTE applies the GTE predicate on the "roadmap_type" field.
func RoadmapTypeGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldRoadmapType, v))
}

// RoadmapTypeLT applies the LT predicate on the "roadmap_type" field.
func RoadmapTypeLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldRoadmapType, v))
}

// RoadmapTypeLTE applies the LTE predicate on the "roadmap_type" field.
func RoadmapTypeLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldRoadmapType, v))
}

// RoadmapTypeContains applies the Contains predicate on the "roadmap_type" field.
func RoadmapTypeContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldRoadmapType, v))
}

// RoadmapTypeHasPrefix applies the HasPrefix predicate on the "roadmap_type" field.
func RoadmapTypeHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldRoadmapType, v))
}

// RoadmapTypeHasSuffix applies the HasSuffix predicate on the "roadmap_type" field.
func RoadmapTypeHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldRoadmapType, v))
}

// RoadmapTypeEqualFold applies the EqualFold predicate on the "roadmap_type" field.
func RoadmapTypeEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldRoadmapType, v))
}

// RoadmapTypeContainsFold applies the ContainsFold predicate on the "roadmap_type" field.
func RoadmapTypeContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldRoadmapType, v))
}

// PersonalizationFactorsIsNil applies the IsNil predicate on the "personalization_factors" field.
func PersonalizationFactorsIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldPersonalizationFactors))
}

// PersonalizationFactorsNotNil applies the NotNil predicate on the "personalization_factors" field.
func PersonalizationFactorsNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldPersonalizationFactors))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
