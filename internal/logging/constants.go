package logging

// Standardized field names for structured logging. These constants keep the
// engine's log output consistent and easy to filter.
const (
	FieldUserID         = "user_id"
	FieldTitle          = "title"
	FieldCategory       = "category"
	FieldConfidence     = "confidence"
	FieldSource         = "source"
	FieldKeyword        = "keyword"
	FieldStage          = "stage"
	FieldSourceLanguage = "source_language"
	FieldModelID        = "model_id"
	FieldAccuracy       = "accuracy"
	FieldCount          = "count"
	FieldFile           = "file_path"
	FieldError          = "error"
)
