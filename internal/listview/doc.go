// Package listview implements the list-view data pipeline shared by every table
// screen: filter, sort, paginate and select.
//
// The pipeline is generic over the record type. A Schema supplies the identifier
// accessor and an ordered list of column descriptors; the stages never look at
// record fields directly. The main entry points are:
//   - Filter / FilterFacets: case-insensitive substring search and exact facets
//   - Sort: stable ordering through a comparator Registry
//   - Paginate / NewPageMeta: windowing with clamping to the last valid page
//   - Selection: the set of selected record ids
//   - Pipeline.Query: composes the stages into a ViewResult
//   - Controller: owns one screen's QueryState and Selection and applies
//     user transitions (search edits, header clicks, page changes, bulk select)
//
// Query is synchronous and never mutates its inputs, except the Selection which
// is pruned against the unfiltered source set.
package listview
