// Package surveyd is the HTTP surface of the survey reduction service.
//
// It wires the reduction core (reducer), result formatting (formatter),
// plan-view rendering (render) and sqlite persistence (store) behind a small
// JSON API:
//
//	POST /api/reduce      reduce a shot list to station coordinates
//	POST /api/plan-view   render the reduction as an HTML plan view
//	POST /api/surveys     reduce and persist the result
//	GET  /api/surveys     list saved survey summaries
//	GET  /api/surveys/{id} fetch a saved survey document
//	GET  /api/health      service and database health
package surveyd
