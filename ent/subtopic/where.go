// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/coursegen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldID, id))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldModuleID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldOrderIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldContent, v))
}

// ReadingMinutes applies equality check predicate on the "reading_minutes" field. It's identical to ReadingMinutesEQ.
func ReadingMinutes(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldReadingMinutes, v))
}

// YoutubeKeywords applies equality check predicate on the "youtube_keywords" field. It's identical to YoutubeKeywordsEQ.
func YoutubeKeywords(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldYoutubeKeywords, v))
}

// VideoURL applies equality check predicate on the "video_url" field. It's identical to VideoURLEQ.
func VideoURL(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoURL, v))
}

// VideoTitle applies equality check predicate on the "video_title" field. It's identical to VideoTitleEQ.
func VideoTitle(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoTitle, v))
}

// VideoChecked applies equality check predicate on the "video_checked" field. It's identical to VideoCheckedEQ.
func VideoChecked(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoChecked, v))
}

// IsGenerated applies equality check predicate on the "is_generated" field. It's identical to IsGeneratedEQ.
func IsGenerated(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldIsGenerated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldModuleID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldTitle, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldOrderIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldContent, v))
}

// ReadingMinutesEQ applies the EQ predicate on the "reading_minutes" field.
func ReadingMinutesEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldReadingMinutes, v))
}

// ReadingMinutesNEQ applies the NEQ predicate on the "reading_minutes" field.
func ReadingMinutesNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldReadingMinutes, v))
}

// ReadingMinutesIn applies the In predicate on the "reading_minutes" field.
func ReadingMinutesIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldReadingMinutes, vs...))
}

// ReadingMinutesNotIn applies the NotIn predicate on the "reading_minutes" field.
func ReadingMinutesNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldReadingMinutes, vs...))
}

// ReadingMinutesGT applies the GT predicate on the "reading_minutes" field.
func ReadingMinutesGT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldReadingMinutes, v))
}

// ReadingMinutesGTE applies the GTE predicate on the "reading_minutes" field.
func ReadingMinutesGTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldReadingMinutes, v))
}

// ReadingMinutesLT applies the LT predicate on the "reading_minutes" field.
func ReadingMinutesLT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldReadingMinutes, v))
}

// ReadingMinutesLTE applies the LTE predicate on the "reading_minutes" field.
func ReadingMinutesLTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldReadingMinutes, v))
}

// ReadingMinutesIsNil applies the IsNil predicate on the "reading_minutes" field.
func ReadingMinutesIsNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIsNull(FieldReadingMinutes))
}

// ReadingMinutesNotNil applies the NotNil predicate on the "reading_minutes" field.
func ReadingMinutesNotNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotNull(FieldReadingMinutes))
}

// YoutubeKeywordsEQ applies the EQ predicate on the "youtube_keywords" field.
func YoutubeKeywordsEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsNEQ applies the NEQ predicate on the "youtube_keywords" field.
func YoutubeKeywordsNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsIn applies the In predicate on the "youtube_keywords" field.
func YoutubeKeywordsIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldYoutubeKeywords, vs...))
}

// YoutubeKeywordsNotIn applies the NotIn predicate on the "youtube_keywords" field.
func YoutubeKeywordsNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldYoutubeKeywords, vs...))
}

// YoutubeKeywordsGT applies the GT predicate on the "youtube_keywords" field.
func YoutubeKeywordsGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsGTE applies the GTE predicate on the "youtube_keywords" field.
func YoutubeKeywordsGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsLT applies the LT predicate on the "youtube_keywords" field.
func YoutubeKeywordsLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsLTE applies the LTE predicate on the "youtube_keywords" field.
func YoutubeKeywordsLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsContains applies the Contains predicate on the "youtube_keywords" field.
func YoutubeKeywordsContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsHasPrefix applies the HasPrefix predicate on the "youtube_keywords" field.
func YoutubeKeywordsHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsHasSuffix applies the HasSuffix predicate on the "youtube_keywords" field.
func YoutubeKeywordsHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsIsNil applies the IsNil predicate on the "youtube_keywords" field.
func YoutubeKeywordsIsNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIsNull(FieldYoutubeKeywords))
}

// YoutubeKeywordsNotNil applies the NotNil predicate on the "youtube_keywords" field.
func YoutubeKeywordsNotNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotNull(FieldYoutubeKeywords))
}

// YoutubeKeywordsEqualFold applies the EqualFold predicate on the "youtube_keywords" field.
func YoutubeKeywordsEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldYoutubeKeywords, v))
}

// YoutubeKeywordsContainsFold applies the ContainsFold predicate on the "youtube_keywords" field.
func YoutubeKeywordsContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldYoutubeKeywords, v))
}

// VideoURLEQ applies the EQ predicate on the "video_url" field.
func VideoURLEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoURL, v))
}

// VideoURLNEQ applies the NEQ predicate on the "video_url" field.
func VideoURLNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldVideoURL, v))
}

// VideoURLIn applies the In predicate on the "video_url" field.
func VideoURLIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldVideoURL, vs...))
}

// VideoURLNotIn applies the NotIn predicate on the "video_url" field.
func VideoURLNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldVideoURL, vs...))
}

// VideoURLGT applies the GT predicate on the "video_url" field.
func VideoURLGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldVideoURL, v))
}

// VideoURLGTE applies the GTE predicate on the "video_url" field.
func VideoURLGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldVideoURL, v))
}

// VideoURLLT applies the LT predicate on the "video_url" field.
func VideoURLLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldVideoURL, v))
}

// VideoURLLTE applies the LTE predicate on the "video_url" field.
func VideoURLLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldVideoURL, v))
}

// VideoURLContains applies the Contains predicate on the "video_url" field.
func VideoURLContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldVideoURL, v))
}

// VideoURLHasPrefix applies the HasPrefix predicate on the "video_url" field.
func VideoURLHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldVideoURL, v))
}

// VideoURLHasSuffix applies the HasSuffix predicate on the "video_url" field.
func VideoURLHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldVideoURL, v))
}

// VideoURLIsNil applies the IsNil predicate on the "video_url" field.
func VideoURLIsNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIsNull(FieldVideoURL))
}

// VideoURLNotNil applies the NotNil predicate on the "video_url" field.
func VideoURLNotNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotNull(FieldVideoURL))
}

// VideoURLEqualFold applies the EqualFold predicate on the "video_url" field.
func VideoURLEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldVideoURL, v))
}

// VideoURLContainsFold applies the ContainsFold predicate on the "video_url" field.
func VideoURLContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldVideoURL, v))
}

// VideoTitleEQ applies the EQ predicate on the "video_title" field.
func VideoTitleEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoTitle, v))
}

// VideoTitleNEQ applies the NEQ predicate on the "video_title" field.
func VideoTitleNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldVideoTitle, v))
}

// VideoTitleIn applies the In predicate on the "video_title" field.
func VideoTitleIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldVideoTitle, vs...))
}

// VideoTitleNotIn applies the NotIn predicate on the "video_title" field.
func VideoTitleNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldVideoTitle, vs...))
}

// VideoTitleGT applies the GT predicate on the "video_title" field.
func VideoTitleGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldVideoTitle, v))
}

// VideoTitleGTE applies the GTE predicate on the "video_title" field.
func VideoTitleGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldVideoTitle, v))
}

// VideoTitleLT applies the LT predicate on the "video_title" field.
func VideoTitleLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldVideoTitle, v))
}

// VideoTitleLTE applies the LTE predicate on the "video_title" field.
func VideoTitleLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldVideoTitle, v))
}

// VideoTitleContains applies the Contains predicate on the "video_title" field.
func VideoTitleContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldVideoTitle, v))
}

// VideoTitleHasPrefix applies the HasPrefix predicate on the "video_title" field.
func VideoTitleHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldVideoTitle, v))
}

// VideoTitleHasSuffix applies the HasSuffix predicate on the "video_title" field.
func VideoTitleHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldVideoTitle, v))
}

// VideoTitleIsNil applies the IsNil predicate on the "video_title" field.
func VideoTitleIsNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIsNull(FieldVideoTitle))
}

// VideoTitleNotNil applies the NotNil predicate on the "video_title" field.
func VideoTitleNotNil() predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotNull(FieldVideoTitle))
}

// VideoTitleEqualFold applies the EqualFold predicate on the "video_title" field.
func VideoTitleEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldVideoTitle, v))
}

// VideoTitleContainsFold applies the ContainsFold predicate on the "video_title" field.
func VideoTitleContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldVideoTitle, v))
}

// VideoCheckedEQ applies the EQ predicate on the "video_checked" field.
func VideoCheckedEQ(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldVideoChecked, v))
}

// VideoCheckedNEQ applies the NEQ predicate on the "video_checked" field.
func VideoCheckedNEQ(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldVideoChecked, v))
}

// IsGeneratedEQ applies the EQ predicate on the "is_generated" field.
func IsGeneratedEQ(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldIsGenerated, v))
}

// IsGeneratedNEQ applies the NEQ predicate on the "is_generated" field.
func IsGeneratedNEQ(v bool) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldIsGenerated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasModule applies the HasEdge predicate on the "module" edge.
func HasModule() predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ModuleTable, ModuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModuleWith applies the HasEdge predicate on the "module" edge with a given conditions (other predicates).
func HasModuleWith(preds ...predicate.Module) predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := newModuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuizzes applies the HasEdge predicate on the "quizzes" edge.
func HasQuizzes() predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuizzesTable, QuizzesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuizzesWith applies the HasEdge predicate on the "quizzes" edge with a given conditions (other predicates).
func HasQuizzesWith(preds ...predicate.Quiz) predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := newQuizzesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProgress applies the HasEdge predicate on the "progress" edge.
func HasProgress() predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProgressTable, ProgressColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProgressWith applies the HasEdge predicate on the "progress" edge with a given conditions (other predicates).
func HasProgressWith(preds ...predicate.Progress) predicate.Subtopic {
	return predicate.Subtopic(func(s *sql.Selector) {
		step := newProgressStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.NotPredicates(p))
}
