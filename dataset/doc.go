// Package dataset loads, validates and filters the per-episode analytics
// that the charts are drawn from.
//
// A dataset file is YAML (JSON documents are accepted too, as YAML is a
// superset of JSON):
//
//	name: The Example Show
//	insights:
//	  completion: Completion dips when interviews run long.
//	episodes:
//	  - episode: 1
//	    title: Pilot
//	    completionRate: 0.71
//	    listenersTotal: 1200
//	    newListeners: 900
//	    returningListeners: 300
//	    subscribersGained: 85
//	    socialMediaShares: 140
//
// Documents are checked against an embedded JSON schema before decoding.
// Columns the source system derives (rolling completion average,
// cumulative subscribers, portfolio average) are computed when absent.
package dataset
