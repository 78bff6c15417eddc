package api

import "github.com/afyawatch/outbreak-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1000: "invalid API key",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "invalid age range",
		1101: "age must not be negative",

		1200: "query risk areas error",
		1201: "query alerts error",

		1300: store.ErrAssessmentNotFound.Error(),
		1301: "create assessment error",
		1302: store.ErrDuplicateAssessment.Error(),

		1400: "enqueue ingestion error",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidAPIKey = errorJSON(1000)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidAgeRange = errorJSON(1100)
	errorNegativeAge     = errorJSON(1101)

	errorQueryRiskAreas = errorJSON(1200)
	errorQueryAlerts    = errorJSON(1201)

	errorAssessmentNotFound  = errorJSON(1300)
	errorCreateAssessment    = errorJSON(1301)
	errorDuplicateAssessment = errorJSON(1302)

	errorEnqueueIngestion = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
