package planner

import (
	"sort"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/schedule"
)

// Entry is one meeting of a surviving section, annotated with its position
// among that section's meetings so the report can print "[2/3]" style
// markers for multi-meeting sections.
type Entry struct {
	Index   int
	Total   int
	Section catalog.Section
	Meeting catalog.Meeting
}

// BlockGroup pairs a meeting block with the entries that meet during it.
type BlockGroup struct {
	Block   schedule.Block
	Entries []Entry
}

// GroupByBlock buckets the meetings of the given sections by their block.
// Groups come out in ascending block order and entries within a group in
// section order, so repeated runs over the same input produce identical
// output.
func GroupByBlock(sections []catalog.Section) []BlockGroup {
	ordered := make([]catalog.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Compare(ordered[j]) < 0
	})

	buckets := make(map[schedule.Block][]Entry)
	var blocks []schedule.Block

	for _, s := range ordered {
		total := len(s.Meetings)
		for i, m := range s.Meetings {
			if _, exists := buckets[m.Block]; !exists {
				blocks = append(blocks, m.Block)
			}
			buckets[m.Block] = append(buckets[m.Block], Entry{
				Index:   i,
				Total:   total,
				Section: s,
				Meeting: m,
			})
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Compare(blocks[j]) < 0
	})

	groups := make([]BlockGroup, 0, len(blocks))
	for _, b := range blocks {
		groups = append(groups, BlockGroup{Block: b, Entries: buckets[b]})
	}
	return groups
}
