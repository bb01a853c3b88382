// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/attachment"
	"github.com/horeca-prospection/backend/ent/auditlog"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/refreshtoken"
	"github.com/horeca-prospection/backend/ent/schema"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescS3Key is the schema descriptor for s3_key field.
	attachmentDescS3Key := attachmentFields[1].Descriptor()
	// attachment.S3KeyValidator is a validator for the "s3_key" field. It is called by the builders before save.
	attachment.S3KeyValidator = attachmentDescS3Key.Validators[0].(func(string) error)
	// attachmentDescFileName is the schema descriptor for file_name field.
	attachmentDescFileName := attachmentFields[2].Descriptor()
	// attachment.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	attachment.FileNameValidator = attachmentDescFileName.Validators[0].(func(string) error)
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentFields[7].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentFields[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[2].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[3].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[4].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	prospectFields := schema.Prospect{}.Fields()
	_ = prospectFields
	// prospectDescName is the schema descriptor for name field.
	prospectDescName := prospectFields[1].Descriptor()
	// prospect.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prospect.NameValidator = prospectDescName.Validators[0].(func(string) error)
	// prospectDescCountry is the schema descriptor for country field.
	prospectDescCountry := prospectFields[7].Descriptor()
	// prospect.DefaultCountry holds the default value on creation for the country field.
	prospect.DefaultCountry = prospectDescCountry.Default.(string)
	// prospectDescNoteAvg is the schema descriptor for note_avg field.
	prospectDescNoteAvg := prospectFields[14].Descriptor()
	// prospect.DefaultNoteAvg holds the default value on creation for the note_avg field.
	prospect.DefaultNoteAvg = prospectDescNoteAvg.Default.(float64)
	// prospectDescVisitsCount is the schema descriptor for visits_count field.
	prospectDescVisitsCount := prospectFields[15].Descriptor()
	// prospect.DefaultVisitsCount holds the default value on creation for the visits_count field.
	prospect.DefaultVisitsCount = prospectDescVisitsCount.Default.(int)
	// prospectDescCreatedAt is the schema descriptor for created_at field.
	prospectDescCreatedAt := prospectFields[22].Descriptor()
	// prospect.DefaultCreatedAt holds the default value on creation for the created_at field.
	prospect.DefaultCreatedAt = prospectDescCreatedAt.Default.(func() time.Time)
	// prospectDescUpdatedAt is the schema descriptor for updated_at field.
	prospectDescUpdatedAt := prospectFields[23].Descriptor()
	// prospect.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prospect.DefaultUpdatedAt = prospectDescUpdatedAt.Default.(func() time.Time)
	// prospect.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prospect.UpdateDefaultUpdatedAt = prospectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prospectDescID is the schema descriptor for id field.
	prospectDescID := prospectFields[0].Descriptor()
	// prospect.DefaultID holds the default value on creation for the id field.
	prospect.DefaultID = prospectDescID.Default.(func() uuid.UUID)
	refreshtokenFields := schema.RefreshToken{}.Fields()
	_ = refreshtokenFields
	// refreshtokenDescTokenHash is the schema descriptor for token_hash field.
	refreshtokenDescTokenHash := refreshtokenFields[1].Descriptor()
	// refreshtoken.TokenHashValidator is a validator for the "token_hash" field. It is called by the builders before save.
	refreshtoken.TokenHashValidator = refreshtokenDescTokenHash.Validators[0].(func(string) error)
	// refreshtokenDescCreatedAt is the schema descriptor for created_at field.
	refreshtokenDescCreatedAt := refreshtokenFields[4].Descriptor()
	// refreshtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	refreshtoken.DefaultCreatedAt = refreshtokenDescCreatedAt.Default.(func() time.Time)
	// refreshtokenDescID is the schema descriptor for id field.
	refreshtokenDescID := refreshtokenFields[0].Descriptor()
	// refreshtoken.DefaultID holds the default value on creation for the id field.
	refreshtoken.DefaultID = refreshtokenDescID.Default.(func() uuid.UUID)
	tourFields := schema.Tour{}.Fields()
	_ = tourFields
	// tourDescDate is the schema descriptor for date field.
	tourDescDate := tourFields[2].Descriptor()
	// tour.DefaultDate holds the default value on creation for the date field.
	tour.DefaultDate = tourDescDate.Default.(func() time.Time)
	// tourDescCreatedAt is the schema descriptor for created_at field.
	tourDescCreatedAt := tourFields[7].Descriptor()
	// tour.DefaultCreatedAt holds the default value on creation for the created_at field.
	tour.DefaultCreatedAt = tourDescCreatedAt.Default.(func() time.Time)
	// tourDescUpdatedAt is the schema descriptor for updated_at field.
	tourDescUpdatedAt := tourFields[8].Descriptor()
	// tour.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tour.DefaultUpdatedAt = tourDescUpdatedAt.Default.(func() time.Time)
	// tour.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tour.UpdateDefaultUpdatedAt = tourDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tourDescID is the schema descriptor for id field.
	tourDescID := tourFields[0].Descriptor()
	// tour.DefaultID holds the default value on creation for the id field.
	tour.DefaultID = tourDescID.Default.(func() uuid.UUID)
	tourstepFields := schema.TourStep{}.Fields()
	_ = tourstepFields
	// tourstepDescStepOrder is the schema descriptor for step_order field.
	tourstepDescStepOrder := tourstepFields[1].Descriptor()
	// tourstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	tourstep.StepOrderValidator = tourstepDescStepOrder.Validators[0].(func(int) error)
	// tourstepDescCreatedAt is the schema descriptor for created_at field.
	tourstepDescCreatedAt := tourstepFields[7].Descriptor()
	// tourstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	tourstep.DefaultCreatedAt = tourstepDescCreatedAt.Default.(func() time.Time)
	// tourstepDescUpdatedAt is the schema descriptor for updated_at field.
	tourstepDescUpdatedAt := tourstepFields[8].Descriptor()
	// tourstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tourstep.DefaultUpdatedAt = tourstepDescUpdatedAt.Default.(func() time.Time)
	// tourstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tourstep.UpdateDefaultUpdatedAt = tourstepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tourstepDescID is the schema descriptor for id field.
	tourstepDescID := tourstepFields[0].Descriptor()
	// tourstep.DefaultID holds the default value on creation for the id field.
	tourstep.DefaultID = tourstepDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescLocale is the schema descriptor for locale field.
	userDescLocale := userFields[8].Descriptor()
	// user.DefaultLocale holds the default value on creation for the locale field.
	user.DefaultLocale = userDescLocale.Default.(string)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[9].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[11].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[12].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	visitFields := schema.Visit{}.Fields()
	_ = visitFields
	// visitDescVisitedAt is the schema descriptor for visited_at field.
	visitDescVisitedAt := visitFields[1].Descriptor()
	// visit.DefaultVisitedAt holds the default value on creation for the visited_at field.
	visit.DefaultVisitedAt = visitDescVisitedAt.Default.(func() time.Time)
	// visitDescCreatedAt is the schema descriptor for created_at field.
	visitDescCreatedAt := visitFields[8].Descriptor()
	// visit.DefaultCreatedAt holds the default value on creation for the created_at field.
	visit.DefaultCreatedAt = visitDescCreatedAt.Default.(func() time.Time)
	// visitDescUpdatedAt is the schema descriptor for updated_at field.
	visitDescUpdatedAt := visitFields[9].Descriptor()
	// visit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visit.DefaultUpdatedAt = visitDescUpdatedAt.Default.(func() time.Time)
	// visit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visit.UpdateDefaultUpdatedAt = visitDescUpdatedAt.UpdateDefault.(func() time.Time)
	// visitDescID is the schema descriptor for id field.
	visitDescID := visitFields[0].Descriptor()
	// visit.DefaultID holds the default value on creation for the id field.
	visit.DefaultID = visitDescID.Default.(func() uuid.UUID)
}
