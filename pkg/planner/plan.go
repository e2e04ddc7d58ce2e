package planner

import "github.com/raxod502/hyposchedule/pkg/catalog"

// Plan runs the whole pipeline over in-memory inputs: parse the catalog
// records, filter by the user's selected and blacklisted pattern lines, and
// group the survivors by meeting block. It has no side effects; the command
// layer only reads the input files and renders the result.
func Plan(records []catalog.Record, selectedLines, blacklistedLines []string) ([]BlockGroup, error) {
	sections, err := catalog.ParseRecords(records)
	if err != nil {
		return nil, err
	}
	surviving, err := Filter(sections, selectedLines, blacklistedLines)
	if err != nil {
		return nil, err
	}
	return GroupByBlock(surviving), nil
}
