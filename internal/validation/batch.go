package validation

import "fmt"

// MaxBatchSize caps how many entity IDs a single batch operation may touch.
const MaxBatchSize = 100

// AllowedBatchOperations is the closed set of batch operation names.
var AllowedBatchOperations = []string{"updateStatus", "maintenance", "delete"}

// ValidateBatchOperation checks a batch request: a non-empty ID list of at
// most MaxBatchSize entries and a recognized operation name.
func ValidateBatchOperation(ids []string, operation string) Errors {
	var errs Errors

	if len(ids) == 0 {
		errs.Add("at least one ID is required")
	}
	if len(ids) > MaxBatchSize {
		errs.Add(fmt.Sprintf("batch operation must not exceed %d IDs", MaxBatchSize))
	}

	allowed := false
	for _, op := range AllowedBatchOperations {
		if operation == op {
			allowed = true
			break
		}
	}
	if !allowed {
		errs.Add(fmt.Sprintf("unknown batch operation %q", operation))
	}

	return errs
}
