package domain

// Collection names one of the independently persisted record sets.
type Collection string

const (
	CollectionVehicles  Collection = "vehicles"
	CollectionBlogPosts Collection = "blog_posts"
	CollectionDealers   Collection = "dealers"
)

// ValidCollections contains all persisted collections.
var ValidCollections = []Collection{CollectionVehicles, CollectionBlogPosts, CollectionDealers}

// IsValidCollection checks if a collection name is known.
func IsValidCollection(name string) bool {
	for _, c := range ValidCollections {
		if string(c) == name {
			return true
		}
	}
	return false
}

// FieldError describes why a single submitted field was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
