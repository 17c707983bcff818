package meshmcp

// Placeholder data types supported by DataGenerator.
const (
	DataMembers   = "members"
	DataPolicies  = "policies"
	DataClaims    = "claims"
	DataProviders = "providers"
)

// DataTypes returns the supported placeholder data types.
func DataTypes() []string {
	return []string{DataMembers, DataPolicies, DataClaims, DataProviders}
}

// DataGenerator produces realistic placeholder records for prototyping.
// Generation is a pure, stateless transform with no caching or concurrency
// concerns.
type DataGenerator interface {
	// Generate returns count records of the given data type.
	// Returns EINVALID for an unsupported data type or count.
	Generate(dataType string, count int) ([]map[string]any, error)
}
