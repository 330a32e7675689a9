package driver

import (
	"fmt"

	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// LoadSources registers every path in fs before the front-end parses them.
// A failed read does not abort the batch: it becomes an IOLoadFileError
// diagnostic in bag and the path is skipped, so one unreadable file still
// surfaces through the same reporting pipeline as transform defects.
// Returns the IDs of the files that did load, in input order.
func LoadSources(fs *source.FileSet, paths []string, bag *diag.Bag) []source.FileID {
	ids := make([]source.FileID, 0, len(paths))
	for _, path := range paths {
		id, err := fs.Load(path)
		if err != nil {
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
				fmt.Sprintf("failed to load '%s': %v", path, err)))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
