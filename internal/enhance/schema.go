package enhance

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed summary_options.schema.json
var summaryOptionsSchema string

var loadSummarySchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(summaryOptionsSchema))
})

// ParseSummaryOptions validates raw against the summary-options schema and
// decodes it. At most MaxSummaryOptions options are returned.
func ParseSummaryOptions(raw string) ([]types.SummaryOption, error) {
	schema, err := loadSummarySchema()
	if err != nil {
		return nil, &SchemaError{Cause: err}
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, &SchemaError{Cause: err}
	}
	if !result.Valid() {
		fieldErrors := make([]FieldError, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			fieldErrors = append(fieldErrors, FieldError{Field: re.Field(), Message: re.Description()})
		}
		return nil, &SchemaError{Errors: fieldErrors}
	}

	var envelope types.SummaryOptions
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, &SchemaError{Cause: err}
	}
	if len(envelope.Summaries) > MaxSummaryOptions {
		envelope.Summaries = envelope.Summaries[:MaxSummaryOptions]
	}
	return envelope.Summaries, nil
}
