package docs

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed data/javadocs.json
var rawDocs []byte

var (
	once  sync.Once
	index *Index
)

// Get returns the process-wide documentation index, decoding and indexing
// the embedded payload on first use. A corrupt payload yields an empty
// index; lookups simply miss.
func Get() *Index {
	once.Do(func() {
		var d Docs
		if err := json.Unmarshal(rawDocs, &d); err != nil {
			index = BuildIndex(Docs{})
			return
		}
		index = BuildIndex(d)
	})
	return index
}
