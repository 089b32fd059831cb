package types

const (
	// ModuleName is the name of the compute benchmark module.
	ModuleName = "compute"
)

var (
	// CallCountKey is the store key under which the number of completed
	// benchmark runs is kept.
	CallCountKey = []byte("call_count")
)
