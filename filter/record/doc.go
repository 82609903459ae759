// Package record provides a filter.Factory that records the graph it is
// asked to build instead of evaluating it.
//
// Every constructed node is appended to an arena of Ops and addressed by a
// stable Ref. Inputs are stored as Refs, so the recorded graph is a DAG of
// indices with no pointers between ops. The recording can be inspected with
// Lookup and Op, or printed with Dump.
//
// The package registers itself as "record":
//
//	import _ "github.com/gogpu/svgfilter/filter/record"
//
// Factory is safe for concurrent use.
package record
