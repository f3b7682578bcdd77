package db

// Source table names.
const (
	TableContentResponses = "ai_response"
	TableModelCreations   = "model_create"
	TablePhotoUploads     = "photo_upload"
)

// StandardColumnAliases lists the known names of the standardization flag,
// in lookup order. Older schemas use "standard".
var StandardColumnAliases = []string{"standard_status", "standard"}
