// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ritam/preptrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// TargetRole applies equality check predicate on the "target_role" field. It's identical to TargetRoleEQ.
func TargetRole(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetRole, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExperienceLevel, v))
}

// ResumeText applies equality check predicate on the "resume_text" field. It's identical to ResumeTextEQ.
func ResumeText(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldResumeText, v))
}

// TargetRoleEQ applies the EQ predicate on the "target_role" field.
func TargetRoleEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetRole, v))
}

// TargetRoleNEQ applies the NEQ predicate on the "target_role" field.
func TargetRoleNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTargetRole, v))
}

// TargetRoleIn applies the In predicate on the "target_role" field.
func TargetRoleIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTargetRole, vs...))
}

// TargetRoleNotIn applies the NotIn predicate on the "target_role" field.
func TargetRoleNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTargetRole, vs...))
}

// TargetRoleGT applies the GT predicate on the "target_role" field.
func TargetRoleGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTargetRole, v))
}

// TargetRoleGTE applies the GTE predicate on the "target_role" field.
func TargetRoleGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTargetRole, v))
}

// TargetRoleLT applies the LT predicate on the "target_role" field.
func TargetRoleLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTargetRole, v))
}

// TargetRoleLTE applies the LTE predicate on the "target_role" field.
func TargetRoleLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTargetRole, v))
}

// TargetRoleContains applies the Contains predicate on the "target_role" field.
func TargetRoleContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldTargetRole, v))
}

// TargetRoleHasPrefix applies the HasPrefix predicate on the "target_role" field.
func TargetRoleHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldTargetRole, v))
}

// TargetRoleHasSuffix applies the HasSuffix predicate on the "target_role" field.
func TargetRoleHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldTargetRole, v))
}

// TargetRoleEqualFold applies the EqualFold predicate on the "target_role" field.
func TargetRoleEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldTargetRole, v))
}

// TargetRoleContainsFold applies the ContainsFold predicate on the "target_role" field.
func TargetRoleContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldTargetRole, v))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldInterests))
}

// ResumeTextEQ applies the EQ predicate on the "resume_text" field.
func ResumeTextEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldResumeText, v))
}

// ResumeTextNEQ applies the NEQ predicate on the "resume_text" field.
func ResumeTextNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldResumeText, v))
}

// ResumeTextIn applies the In predicate on the "resume_text" field.
func ResumeTextIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldResumeText, vs...))
}

// ResumeTextNotIn applies the NotIn predicate on the "resume_text" field.
func ResumeTextNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldResumeText, vs...))
}

// ResumeTextGT applies the GT predicate on the "resume_text" field.
func ResumeTextGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldResumeText, v))
}

// ResumeTextGTE applies the GTE predicate on the "resume_text" field.
func ResumeTextGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldResumeText, v))
}

// ResumeTextLT applies the LT predicate on the "resume_text" field.
func ResumeTextLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldResumeText, v))
}

// ResumeTextLTE applies the LTE predicate on the "resume_text" field.
func ResumeTextLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldResumeText, v))
}

// ResumeTextContains applies the Contains predicate on the "resume_text" field.
func ResumeTextContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldResumeText, v))
}

// ResumeTextHasPrefix applies the HasPrefix predicate on the "resume_text" field.
func ResumeTextHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldResumeText, v))
}

// ResumeTextHasSuffix applies the HasSuffix predicate on the "resume_text" field.
func ResumeTextHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldResumeText, v))
}

// ResumeTextIsNil applies the IsNil predicate on the "resume_text" field.
func ResumeTextIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldResumeText))
}

// ResumeTextNotNil applies the NotNil predicate on the "resume_text" field.
func ResumeTextNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldResumeText))
}

// ResumeTextEqualFold applies the EqualFold predicate on the "resume_text" field.
func ResumeTextEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldResumeText, v))
}

// ResumeTextContainsFold applies the ContainsFold predicate on the "resume_text" field.
func ResumeTextContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldResumeText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
